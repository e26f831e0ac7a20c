package dtos

import (
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/validate"
	"techcal.asiaclass.dev/apps/calendar/internal/models"
)

// EventDto is the create/edit payload: every mutable field of an event,
// without the id. The store revalidates the time range and status; the dto
// only rejects what can never be right regardless of store state.
type EventDto struct {
	Title       string             `json:"title"`
	Start       time.Time          `json:"start"`
	End         time.Time          `json:"end"`
	Technicians []string           `json:"technicians"`
	Team        string             `json:"team"`
	Location    string             `json:"location"`
	JoinLink    string             `json:"joinLink"`
	Description string             `json:"description"`
	Status      models.EventStatus `json:"status"`
}

func (dto *EventDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "title", dto.Title, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}

// Event converts the payload to a model without an id; the store assigns
// or preserves ids.
func (dto EventDto) Event() models.Event {
	technicians := dto.Technicians
	if technicians == nil {
		technicians = []string{}
	}

	//nolint:exhaustruct //id is assigned by the store
	return models.Event{
		Title:       dto.Title,
		Start:       dto.Start,
		End:         dto.End,
		Technicians: technicians,
		Team:        dto.Team,
		Location:    dto.Location,
		JoinLink:    dto.JoinLink,
		Description: dto.Description,
		Status:      dto.Status,
	}
}
