package main

import (
	"log/slog"
	"net/http"

	"techcal.asiaclass.dev/apps/calendar"
	"techcal.asiaclass.dev/internal/config"
)

type Apps struct {
	Calendar *calendar.Calendar

	apps []App
}

type App interface {
	Routes(prefix string, mux *http.ServeMux)
	GetName() string
}

func NewApps(
	logger *slog.Logger,
	cfg config.Config,
	roster config.Roster,
) *Apps {
	calendarApp := calendar.New(logger, cfg, roster)

	apps := &Apps{
		Calendar: calendarApp,
		apps:     []App{},
	}
	apps.addApp(calendarApp)

	return apps
}

func (apps *Apps) Routes(mux *http.ServeMux) http.Handler {
	for _, app := range apps.apps {
		app.Routes(app.GetName(), mux)
	}
	return mux
}

func (apps *Apps) addApp(app App) {
	apps.apps = append(apps.apps, app)
}
