package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	tests := []struct {
		name          string
		ticketID      uint
		user          string
		message       string
		isAdmin       bool
		expectedError string
	}{
		{
			name:     "valid comment",
			ticketID: 1,
			user:     "alice",
			message:  "no sound on this episode",
		},
		{
			name:     "admin comment",
			ticketID: 1,
			user:     "Admin",
			message:  "looking into it",
			isAdmin:  true,
		},
		{
			name:          "missing ticket id",
			user:          "alice",
			message:       "hello",
			expectedError: "ticket ID is required",
		},
		{
			name:          "missing user",
			ticketID:      1,
			message:       "hello",
			expectedError: "user is required",
		},
		{
			name:          "empty message",
			ticketID:      1,
			user:          "alice",
			expectedError: "message cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.ticketID, tt.user, tt.message, tt.isAdmin)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.ticketID, c.TicketID())
			assert.Equal(t, tt.user, c.User())
			assert.Equal(t, tt.isAdmin, c.IsAdmin())
			assert.False(t, c.CreatedAt().IsZero())
		})
	}
}

func TestIsAdminUser(t *testing.T) {
	assert.True(t, IsAdminUser("Admin"))
	assert.False(t, IsAdminUser("admin"))
	assert.False(t, IsAdminUser("ADMIN"))
	assert.False(t, IsAdminUser("alice"))
	assert.False(t, IsAdminUser(""))
}

func TestNewInitialComment(t *testing.T) {
	tk, err := NewTicket("abc", "Movie X", "audio")
	require.NoError(t, err)

	_, err = NewInitialComment(tk, "alice", "no sound")
	require.Error(t, err, "initial comment needs a persisted ticket")

	require.NoError(t, tk.SetID(42))

	c, err := NewInitialComment(tk, "alice", "no sound")
	require.NoError(t, err)
	assert.Equal(t, uint(42), c.TicketID())
	assert.Equal(t, tk.CreatedAt(), c.CreatedAt(), "initial comment shares the ticket timestamp")
	assert.False(t, c.IsAdmin())

	adminComment, err := NewInitialComment(tk, "Admin", "self-report")
	require.NoError(t, err)
	assert.True(t, adminComment.IsAdmin())
}

func TestComment_SetID(t *testing.T) {
	c, err := NewComment(1, "alice", "hello", false)
	require.NoError(t, err)

	require.NoError(t, c.SetID(9))
	assert.Error(t, c.SetID(10))
	assert.Equal(t, uint(9), c.ID())
}
