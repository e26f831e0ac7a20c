package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/errortools"
	"techcal.asiaclass.dev/apps/calendar/internal/dtos"
	"techcal.asiaclass.dev/apps/calendar/internal/helper"
	"techcal.asiaclass.dev/apps/calendar/internal/models"
)

const (
	DirectionPrev = "prev"
	DirectionNext = "next"

	// defaultDayStartHour is where a day-cell click plants the draft slot.
	defaultDayStartHour = 9
)

// CalendarService orchestrates navigation, view-mode switching and the
// filter state, and assembles the windowed snapshot the presentation layer
// renders from. Session state only; a restart loses it by design.
type CalendarService struct {
	logger       *slog.Logger
	events       *EventService
	axis         helper.Axis
	slotDuration time.Duration
	now          func() time.Time
	onChange     func()

	mu            sync.Mutex
	viewMode      models.ViewMode
	referenceDate time.Time
	filters       models.FilterState
}

// NewCalendarService starts in month mode at the current date with every
// status visible. now is injectable for tests; nil means time.Now.
func NewCalendarService(
	logger *slog.Logger,
	axis helper.Axis,
	slotDuration time.Duration,
	events *EventService,
	now func() time.Time,
) *CalendarService {
	if now == nil {
		now = time.Now
	}

	return &CalendarService{
		logger:        logger,
		events:        events,
		axis:          axis,
		slotDuration:  slotDuration,
		now:           now,
		onChange:      nil,
		mu:            sync.Mutex{},
		viewMode:      models.ViewMonth,
		referenceDate: now(),
		filters:       models.DefaultFilterState(),
	}
}

// OnChange registers a callback invoked after every state change, outside
// the lock.
func (service *CalendarService) OnChange(notify func()) {
	service.onChange = notify
}

func (service *CalendarService) Axis() helper.Axis {
	return service.axis
}

// Navigate moves the reference date one month (month mode) or seven days
// (week mode) in the given direction.
func (service *CalendarService) Navigate(direction string) error {
	var amount int
	switch direction {
	case DirectionPrev:
		amount = -1
	case DirectionNext:
		amount = 1
	default:
		return errortools.NewBadRequestError(
			fmt.Errorf("unknown direction %q", direction),
		)
	}

	service.mu.Lock()
	if service.viewMode == models.ViewMonth {
		service.referenceDate = helper.AddMonths(service.referenceDate, amount)
	} else {
		service.referenceDate = helper.AddDays(service.referenceDate, amount*7) //nolint:mnd //one week
	}
	service.mu.Unlock()

	service.changed()
	return nil
}

// JumpToToday resets the reference date to the current instant.
func (service *CalendarService) JumpToToday() {
	service.mu.Lock()
	service.referenceDate = service.now()
	service.mu.Unlock()

	service.changed()
}

// SetViewMode switches grid generation without touching the reference date.
func (service *CalendarService) SetViewMode(mode models.ViewMode) error {
	if !mode.IsValid() {
		return errortools.NewBadRequestError(
			fmt.Errorf("unknown view mode %q", mode),
		)
	}

	service.mu.Lock()
	service.viewMode = mode
	service.mu.Unlock()

	service.changed()
	return nil
}

// SetFilters replaces the filter state. Unknown statuses are rejected; a
// filter combination yielding zero results is a valid empty state, not an
// error.
func (service *CalendarService) SetFilters(filters models.FilterState) error {
	for _, status := range filters.Statuses {
		if !status.IsValid() {
			return errortools.NewBadRequestError(
				fmt.Errorf("unknown event status %q", status),
			)
		}
	}

	service.mu.Lock()
	service.filters = filters
	service.mu.Unlock()

	service.changed()
	return nil
}

// SelectDay sets the reference date to the clicked day and returns the
// default creation draft for it, starting at 09:00.
func (service *CalendarService) SelectDay(day time.Time) dtos.SlotDto {
	start := time.Date(
		day.Year(), day.Month(), day.Day(),
		defaultDayStartHour, 0, 0, 0,
		day.Location(),
	)
	slot := dtos.SlotDto{Start: start, End: start.Add(service.slotDuration)}

	service.mu.Lock()
	service.referenceDate = day
	service.mu.Unlock()

	service.changed()
	return slot
}

// SelectSlot sets the reference date to the clicked slot's start and echoes
// the slot back as the creation draft.
func (service *CalendarService) SelectSlot(
	slot dtos.SlotDto,
) (dtos.SlotDto, error) {
	if !slot.End.After(slot.Start) {
		return dtos.SlotDto{}, errortools.NewBadRequestError(
			errors.New("slot end must be after its start"),
		)
	}

	service.mu.Lock()
	service.referenceDate = slot.Start
	service.mu.Unlock()

	service.changed()
	return slot, nil
}

// WindowedEvents filters the full event list, then restricts it to the
// current view's date range.
func (service *CalendarService) WindowedEvents() []models.Event {
	service.mu.Lock()
	defer service.mu.Unlock()

	return service.windowedLocked()
}

func (service *CalendarService) windowedLocked() []models.Event {
	var windowStart time.Time
	var windowEnd time.Time

	if service.viewMode == models.ViewMonth {
		first := time.Date(
			service.referenceDate.Year(), service.referenceDate.Month(), 1,
			0, 0, 0, 0,
			service.referenceDate.Location(),
		)
		windowStart = helper.StartOfWeek(first)
		windowEnd = windowStart.AddDate(0, 0, helper.MonthGridDays)
	} else {
		windowStart = helper.StartOfWeek(service.referenceDate)
		windowEnd = windowStart.AddDate(0, 0, 7) //nolint:mnd //one week
	}

	visible := []models.Event{}
	for _, event := range service.events.List() {
		if !service.filters.Matches(event) {
			continue
		}
		if event.Start.Before(windowStart) || !event.Start.Before(windowEnd) {
			continue
		}
		visible = append(visible, event)
	}
	return visible
}

// Snapshot assembles the full observable state: day grid with cell flags,
// windowed events with week-view geometry, and per-day buckets.
func (service *CalendarService) Snapshot() dtos.SnapshotDto {
	service.mu.Lock()
	mode := service.viewMode
	reference := service.referenceDate
	filters := service.filters
	windowed := service.windowedLocked()
	service.mu.Unlock()

	var days []time.Time
	if mode == models.ViewMonth {
		days = helper.MonthMatrix(reference)
	} else {
		days = helper.WeekDays(reference)
	}

	todayKey := helper.DateKey(service.now())
	cells := make([]dtos.DayCellDto, 0, len(days))
	for _, day := range days {
		key := helper.DateKey(day)
		cells = append(cells, dtos.DayCellDto{
			Date:           day,
			Key:            key,
			InCurrentMonth: day.Month() == reference.Month(),
			IsToday:        key == todayKey,
		})
	}

	view := func(event models.Event) dtos.EventViewDto {
		var layout *helper.Position
		if mode == models.ViewWeek {
			position := service.axis.Position(event)
			layout = &position
		}
		return dtos.EventViewDto{Event: event, Layout: layout}
	}

	events := make([]dtos.EventViewDto, 0, len(windowed))
	for _, event := range windowed {
		events = append(events, view(event))
	}

	byDay := make(map[string][]dtos.EventViewDto)
	for key, bucket := range helper.IndexByDay(windowed) {
		views := make([]dtos.EventViewDto, 0, len(bucket))
		for _, event := range bucket {
			views = append(views, view(event))
		}
		byDay[key] = views
	}

	return dtos.SnapshotDto{
		ViewMode:      mode,
		ReferenceDate: reference,
		Filters:       filters,
		Days:          cells,
		EventsByDay:   byDay,
		Events:        events,
	}
}

func (service *CalendarService) changed() {
	if service.onChange != nil {
		service.onChange()
	}
}
