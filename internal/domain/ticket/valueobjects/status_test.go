package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketStatus_IsValid(t *testing.T) {
	tests := []struct {
		status TicketStatus
		valid  bool
	}{
		{StatusNew, true},
		{StatusInProgress, true},
		{StatusResolved, true},
		{TicketStatus("closed"), false},
		{TicketStatus("NEW"), false},
		{TicketStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
		})
	}
}

func TestNewTicketStatus(t *testing.T) {
	ts, err := NewTicketStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, ts)

	_, err = NewTicketStatus("reopened")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ticket status")
}

func TestTicketStatus_IsOpen(t *testing.T) {
	assert.True(t, StatusNew.IsOpen())
	assert.True(t, StatusInProgress.IsOpen())
	assert.False(t, StatusResolved.IsOpen())
}
