package models

import (
	"slices"
	"strings"
)

// FilterState is the combination of constraints the operator currently has
// applied. An empty Statuses slice hides every event; it is not shorthand
// for "no status filter".
type FilterState struct {
	Statuses   []EventStatus `json:"statuses"`
	Team       string        `json:"team,omitempty"`
	Technician string        `json:"technician,omitempty"`
	Search     string        `json:"search"`
}

// DefaultFilterState shows every status with no further constraints.
func DefaultFilterState() FilterState {
	return FilterState{
		Statuses: AllStatuses(),
		Search:   "",
	}
}

// Matches reports whether event passes every active constraint. It never
// mutates anything; filtering is re-evaluated fresh from the full event
// list on each render.
func (filter FilterState) Matches(event Event) bool {
	if !slices.Contains(filter.Statuses, event.Status) {
		return false
	}

	if filter.Team != "" && event.Team != filter.Team {
		return false
	}

	if filter.Technician != "" &&
		!slices.Contains(event.Technicians, filter.Technician) {
		return false
	}

	search := strings.TrimSpace(filter.Search)
	if search == "" {
		return true
	}

	target := strings.ToLower(strings.Join([]string{
		event.Title,
		event.Location,
		event.Team,
		strings.Join(event.Technicians, ","),
	}, " "))

	return strings.Contains(target, strings.ToLower(search))
}
