//nolint:mnd //no magic number
package config

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xhit/go-str2duration/v2"
)

type Config struct {
	Env           string
	Port          int
	Throttle      bool
	WebURL        string
	SentryDsn     string
	SampleRate    float64
	Release       string
	RosterPath    string
	AxisStartHour int
	AxisEndHour   int
	MinHeightPct  float64
	SlotDuration  time.Duration
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.Throttle = parser.EnvBool("THROTTLE", true)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.RosterPath = parser.EnvStr("ROSTER_PATH", "")
	cfg.AxisStartHour = parser.EnvInt("AXIS_START_HOUR", 7)
	cfg.AxisEndHour = parser.EnvInt("AXIS_END_HOUR", 20)
	cfg.MinHeightPct = parser.EnvFloat("MIN_EVENT_HEIGHT_PCT", 8.0)

	slotDuration, err := str2duration.ParseDuration(
		parser.EnvStr("SLOT_DURATION", "1h"),
	)
	if err != nil {
		logger.Warn(
			"Failed to parse SLOT_DURATION, falling back to 1h",
			logging.ErrAttr(err),
		)
		slotDuration = time.Hour
	}
	cfg.SlotDuration = slotDuration

	return cfg
}
