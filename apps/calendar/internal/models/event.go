package models

import "time"

type EventStatus string

const (
	StatusScheduled  EventStatus = "scheduled"
	StatusInProgress EventStatus = "in-progress"
	StatusDone       EventStatus = "done"
	StatusCancelled  EventStatus = "cancelled"
)

type StatusOption struct {
	Value EventStatus `json:"value"`
	Label string      `json:"label"`
}

//nolint:gochecknoglobals //ok
var StatusOptions = []StatusOption{
	{Value: StatusScheduled, Label: "Scheduled"},
	{Value: StatusInProgress, Label: "In-progress"},
	{Value: StatusDone, Label: "Done"},
	{Value: StatusCancelled, Label: "Cancelled"},
}

func (status EventStatus) IsValid() bool {
	switch status {
	case StatusScheduled, StatusInProgress, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// AllStatuses returns every known status value, in display order.
func AllStatuses() []EventStatus {
	statuses := make([]EventStatus, 0, len(StatusOptions))
	for _, option := range StatusOptions {
		statuses = append(statuses, option.Value)
	}
	return statuses
}

// Event is a scheduled technician assignment. Team, Location, JoinLink and
// Description are optional; the empty string means unset.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Technicians []string    `json:"technicians"`
	Team        string      `json:"team,omitempty"`
	Location    string      `json:"location,omitempty"`
	JoinLink    string      `json:"joinLink,omitempty"`
	Description string      `json:"description,omitempty"`
	Status      EventStatus `json:"status"`
}
