package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusResolved:   true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

// IsOpen reports whether a ticket with this status still needs triage.
// Only resolved tickets count as closed.
func (ts TicketStatus) IsOpen() bool {
	return ts != StatusResolved
}

// NewTicketStatus validates a raw status string. There is no transition
// graph: any valid status may replace any other.
func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
