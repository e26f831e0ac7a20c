package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	configtools "github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	"techcal.asiaclass.dev/internal/config"
)

type Application struct {
	logger *slog.Logger
	config config.Config
	apps   *Apps
}

func main() {
	cfg := config.New(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout, nil)))

	roster, err := config.LoadRoster(cfg.RosterPath)
	if err != nil {
		panic(err)
	}

	app := NewApplication(logger, cfg, roster)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,  //nolint:mnd //no magic number
		WriteTimeout: 10 * time.Second, //nolint:mnd //no magic number
	}
	err = httptools.Serve(logger, srv, cfg.Env)
	if err != nil {
		logger.Error("failed to serve server", logging.ErrAttr(err))
	}
}

func NewApplication(
	logger *slog.Logger,
	cfg config.Config,
	roster config.Roster,
) *Application {
	app := &Application{
		logger: logger,
		config: cfg,
		apps:   NewApps(logger, cfg, roster),
	}

	// The store is session-scoped; outside production it starts with the
	// demo schedule instead of an empty calendar.
	if cfg.Env != configtools.ProdEnv {
		app.apps.Calendar.SeedDemo()
	}

	return app
}
