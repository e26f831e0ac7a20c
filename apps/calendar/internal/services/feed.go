package services

import (
	ics "github.com/arran4/golang-ical"
	"techcal.asiaclass.dev/apps/calendar/internal/models"
)

// FeedICS serializes the currently visible (filtered + windowed) events as
// an iCalendar feed so the schedule can be subscribed to from any calendar
// client.
func (service *CalendarService) FeedICS() string {
	now := service.now()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Asia Class//techcal//EN")

	for _, event := range service.WindowedEvents() {
		vevent := cal.AddEvent(event.ID)
		vevent.SetDtStampTime(now)
		vevent.SetStartAt(event.Start)
		vevent.SetEndAt(event.End)
		vevent.SetSummary(event.Title)
		vevent.SetStatus(icsStatus(event.Status))
		if event.Location != "" {
			vevent.SetLocation(event.Location)
		}
		if event.Description != "" {
			vevent.SetDescription(event.Description)
		}
		if event.JoinLink != "" {
			vevent.SetURL(event.JoinLink)
		}
	}

	return cal.Serialize()
}

func icsStatus(status models.EventStatus) ics.ObjectStatus {
	switch status {
	case models.StatusCancelled:
		return ics.ObjectStatusCancelled
	case models.StatusScheduled:
		return ics.ObjectStatusTentative
	case models.StatusInProgress, models.StatusDone:
		return ics.ObjectStatusConfirmed
	default:
		return ics.ObjectStatusConfirmed
	}
}
