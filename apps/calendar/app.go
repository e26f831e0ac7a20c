package calendar

import (
	"log/slog"

	"techcal.asiaclass.dev/apps/calendar/internal/services"
	"techcal.asiaclass.dev/internal/config"
)

// Calendar is the technician scheduling app: an in-memory event store plus
// the month/week calendar controller, exposed over a JSON API, a snapshot
// WebSocket and an ICS feed.
type Calendar struct {
	logger   *slog.Logger
	config   config.Config
	roster   config.Roster
	Services *services.Services
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	roster config.Roster,
) *Calendar {
	return &Calendar{
		logger:   logger,
		config:   cfg,
		roster:   roster,
		Services: services.New(logger, cfg),
	}
}

func (app *Calendar) GetName() string {
	return "calendar"
}

// SeedDemo loads the built-in sample schedule into the store.
func (app *Calendar) SeedDemo() {
	app.Services.Events.Seed(services.DemoEvents())
}
