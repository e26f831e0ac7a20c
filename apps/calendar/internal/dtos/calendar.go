package dtos

import (
	"time"

	"techcal.asiaclass.dev/apps/calendar/internal/helper"
	"techcal.asiaclass.dev/apps/calendar/internal/models"
)

// FiltersDto replaces the whole filter state in one call; partial updates
// would force the client to track server state it already owns.
type FiltersDto struct {
	Statuses   []models.EventStatus `json:"statuses"`
	Team       string               `json:"team"`
	Technician string               `json:"technician"`
	Search     string               `json:"search"`
}

func (dto FiltersDto) FilterState() models.FilterState {
	statuses := dto.Statuses
	if statuses == nil {
		statuses = []models.EventStatus{}
	}

	return models.FilterState{
		Statuses:   statuses,
		Team:       dto.Team,
		Technician: dto.Technician,
		Search:     dto.Search,
	}
}

// SlotDto is a proposed time range: sent by the client on week-view slot
// clicks, returned by the server as the prefilled draft for day clicks.
type SlotDto struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DayCellDto is one cell of the rendered day grid with the flags the
// presentation layer dims and highlights by.
type DayCellDto struct {
	Date           time.Time `json:"date"`
	Key            string    `json:"key"`
	InCurrentMonth bool      `json:"inCurrentMonth"`
	IsToday        bool      `json:"isToday"`
}

// EventViewDto is an event plus its computed week-view geometry. Layout is
// nil in month mode, where events just stack in their day cell.
type EventViewDto struct {
	models.Event
	Layout *helper.Position `json:"layout,omitempty"`
}

// SnapshotDto is the full observable state of the calendar controller,
// recomputed per render and pushed to subscribers after every mutation.
type SnapshotDto struct {
	ViewMode      models.ViewMode           `json:"viewMode"`
	ReferenceDate time.Time                 `json:"referenceDate"`
	Filters       models.FilterState        `json:"filters"`
	Days          []DayCellDto              `json:"days"`
	EventsByDay   map[string][]EventViewDto `json:"eventsByDay"`
	Events        []EventViewDto            `json:"events"`
}

// ConfigDto is the static configuration the presentation layer needs to
// draw its chrome: rosters, the status enumeration with display labels,
// and the time axis bounds.
type ConfigDto struct {
	Technicians []string              `json:"technicians"`
	Teams       []string              `json:"teams"`
	Statuses    []models.StatusOption `json:"statuses"`
	Axis        helper.Axis           `json:"axis"`
}
