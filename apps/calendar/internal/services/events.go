package services

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/errortools"
	"techcal.asiaclass.dev/apps/calendar/internal/models"
)

// EventService owns the authoritative event list. Mutations are serialized
// behind the mutex so the at-most-one-writer contract holds under the HTTP
// server's goroutines; insertion order is preserved for List.
type EventService struct {
	logger   *slog.Logger
	mu       sync.Mutex
	events   []models.Event
	onChange func()
}

func NewEventService(logger *slog.Logger) *EventService {
	return &EventService{
		logger:   logger,
		mu:       sync.Mutex{},
		events:   []models.Event{},
		onChange: nil,
	}
}

// OnChange registers a callback invoked after every successful mutation,
// outside the lock.
func (service *EventService) OnChange(notify func()) {
	service.onChange = notify
}

// List returns a snapshot copy of all events in insertion order.
func (service *EventService) List() []models.Event {
	service.mu.Lock()
	defer service.mu.Unlock()

	return slices.Clone(service.events)
}

func (service *EventService) GetByID(id string) (models.Event, error) {
	service.mu.Lock()
	defer service.mu.Unlock()

	i := service.indexOf(id)
	if i < 0 {
		return models.Event{}, errortools.NewNotFoundError("event", id, "id")
	}
	return service.events[i], nil
}

// Create validates draft, assigns a fresh unique id and appends it. The
// form is expected to prevent invalid payloads, but the store does not
// silently accept them either.
func (service *EventService) Create(draft models.Event) (models.Event, error) {
	if err := validateEvent(draft); err != nil {
		return models.Event{}, err
	}

	event := draft
	event.ID = uuid.NewString()

	service.mu.Lock()
	service.events = append(service.events, event)
	service.mu.Unlock()

	service.logger.Info(
		"Created event",
		slog.String("id", event.ID),
		slog.String("title", event.Title),
	)
	service.changed()
	return event, nil
}

// Update replaces every mutable field of the event with the given id. The
// id and the event's position in the list are stable across updates.
func (service *EventService) Update(
	id string,
	draft models.Event,
) (models.Event, error) {
	if err := validateEvent(draft); err != nil {
		return models.Event{}, err
	}

	event := draft
	event.ID = id

	service.mu.Lock()
	i := service.indexOf(id)
	if i < 0 {
		service.mu.Unlock()
		return models.Event{}, errortools.NewNotFoundError("event", id, "id")
	}
	service.events[i] = event
	service.mu.Unlock()

	service.logger.Info("Updated event", slog.String("id", id))
	service.changed()
	return event, nil
}

// Delete removes the event with the given id. Deleting an unknown id is an
// error, not a no-op: a second delete of the same event must surface.
func (service *EventService) Delete(id string) error {
	service.mu.Lock()
	i := service.indexOf(id)
	if i < 0 {
		service.mu.Unlock()
		return errortools.NewNotFoundError("event", id, "id")
	}
	service.events = slices.Delete(service.events, i, i+1)
	service.mu.Unlock()

	service.logger.Info("Deleted event", slog.String("id", id))
	service.changed()
	return nil
}

// Seed replaces the store contents wholesale, keeping the given ids. Used
// for demo data outside production and by tests.
func (service *EventService) Seed(events []models.Event) {
	service.mu.Lock()
	service.events = slices.Clone(events)
	service.mu.Unlock()

	service.logger.Info("Seeded events", slog.Int("count", len(events)))
	service.changed()
}

func (service *EventService) indexOf(id string) int {
	return slices.IndexFunc(service.events, func(event models.Event) bool {
		return event.ID == id
	})
}

func (service *EventService) changed() {
	if service.onChange != nil {
		service.onChange()
	}
}

func validateEvent(event models.Event) error {
	switch {
	case strings.TrimSpace(event.Title) == "":
		return errortools.NewBadRequestError(
			errors.New("event title must not be empty"),
		)
	case !event.End.After(event.Start):
		return errortools.NewBadRequestError(
			errors.New("event end must be after its start"),
		)
	case !event.Status.IsValid():
		return errortools.NewBadRequestError(
			fmt.Errorf("unknown event status %q", event.Status),
		)
	default:
		return nil
	}
}
