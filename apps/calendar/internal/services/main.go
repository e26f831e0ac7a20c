package services

import (
	"log/slog"

	"techcal.asiaclass.dev/apps/calendar/internal/helper"
	"techcal.asiaclass.dev/internal/config"
)

type Services struct {
	Events    *EventService
	Calendar  *CalendarService
	WebSocket *WebSocketService
}

func New(logger *slog.Logger, cfg config.Config) *Services {
	axis := helper.Axis{
		StartHour:    cfg.AxisStartHour,
		EndHour:      cfg.AxisEndHour,
		MinHeightPct: cfg.MinHeightPct,
	}

	events := NewEventService(logger)
	calendar := NewCalendarService(logger, axis, cfg.SlotDuration, events, nil)
	webSocket := NewWebSocketService(
		logger,
		[]string{cfg.WebURL},
		calendar.Snapshot,
	)

	notify := func() { webSocket.Broadcast(calendar.Snapshot()) }
	events.OnChange(notify)
	calendar.OnChange(notify)

	return &Services{
		Events:    events,
		Calendar:  calendar,
		WebSocket: webSocket,
	}
}
