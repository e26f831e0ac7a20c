package helper

import "techcal.asiaclass.dev/apps/calendar/internal/models"

// IndexByDay groups events by the calendar day their start falls on,
// preserving input relative order within each bucket. Both views read from
// this index instead of scanning the event list once per cell; it is cheap
// enough at expected sizes (tens to low hundreds) to rebuild per render.
func IndexByDay(events []models.Event) map[string][]models.Event {
	byDay := make(map[string][]models.Event)
	for _, event := range events {
		key := DateKey(event.Start)
		byDay[key] = append(byDay[key], event)
	}
	return byDay
}
