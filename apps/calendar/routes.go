package calendar

import (
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

func (app *Calendar) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("/%s/api", prefix)

	app.calendarRoutes(apiPrefix, mux)
	app.eventsRoutes(apiPrefix, mux)
}

func (app *Calendar) Routes(prefix string, mux *http.ServeMux) {
	app.apiRoutes(prefix, mux)

	mux.HandleFunc(fmt.Sprintf("GET /%s/feed.ics", prefix), app.feedHandler)
}

func (app *Calendar) feedHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")

	_, err := w.Write([]byte(app.Services.Calendar.FeedICS()))
	if err != nil {
		app.logger.Error("Failed to write calendar feed", logging.ErrAttr(err))
	}
}
