package calendar

import (
	"fmt"
	"net/http"
	"time"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/errortools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"techcal.asiaclass.dev/apps/calendar/internal/dtos"
	"techcal.asiaclass.dev/apps/calendar/internal/models"
)

func (app *Calendar) calendarRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/state", prefix),
		app.stateHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/config", prefix),
		app.configHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/navigate/{direction}", prefix),
		app.navigateHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/today", prefix),
		app.todayHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/view/{mode}", prefix),
		app.viewModeHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/filters", prefix),
		app.filtersHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/days/{date}/select", prefix),
		app.selectDayHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/slots/select", prefix),
		app.selectSlotHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/updates", prefix),
		app.Services.WebSocket.Handler(),
	)
}

func (app *Calendar) stateHandler(w http.ResponseWriter, r *http.Request) {
	app.writeSnapshot(w, r)
}

func (app *Calendar) configHandler(w http.ResponseWriter, r *http.Request) {
	configDto := dtos.ConfigDto{
		Technicians: app.roster.Technicians,
		Teams:       app.roster.Teams,
		Statuses:    models.StatusOptions,
		Axis:        app.Services.Calendar.Axis(),
	}

	err := httptools.WriteJSON(w, http.StatusOK, configDto, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Calendar) navigateHandler(w http.ResponseWriter, r *http.Request) {
	direction, err := parse.URLParam[string](r, "direction", nil)
	if err != nil {
		panic(err)
	}

	if err = app.Services.Calendar.Navigate(direction); err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeSnapshot(w, r)
}

func (app *Calendar) todayHandler(w http.ResponseWriter, r *http.Request) {
	app.Services.Calendar.JumpToToday()
	app.writeSnapshot(w, r)
}

func (app *Calendar) viewModeHandler(w http.ResponseWriter, r *http.Request) {
	mode, err := parse.URLParam[string](r, "mode", nil)
	if err != nil {
		panic(err)
	}

	if err = app.Services.Calendar.SetViewMode(models.ViewMode(mode)); err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeSnapshot(w, r)
}

func (app *Calendar) filtersHandler(w http.ResponseWriter, r *http.Request) {
	var filtersDto dtos.FiltersDto

	err := httptools.ReadJSON(r.Body, &filtersDto)
	if err != nil {
		httptools.HandleError(w, r, errortools.NewBadRequestError(err))
		return
	}

	if err = app.Services.Calendar.SetFilters(filtersDto.FilterState()); err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	app.writeSnapshot(w, r)
}

func (app *Calendar) selectDayHandler(w http.ResponseWriter, r *http.Request) {
	date, err := parse.URLParam[string](r, "date", nil)
	if err != nil {
		panic(err)
	}

	day, err := time.ParseInLocation(time.DateOnly, date, time.Local)
	if err != nil {
		httptools.HandleError(w, r, errortools.NewBadRequestError(err))
		return
	}

	slot := app.Services.Calendar.SelectDay(day)

	err = httptools.WriteJSON(w, http.StatusOK, slot, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Calendar) selectSlotHandler(w http.ResponseWriter, r *http.Request) {
	var slotDto dtos.SlotDto

	err := httptools.ReadJSON(r.Body, &slotDto)
	if err != nil {
		httptools.HandleError(w, r, errortools.NewBadRequestError(err))
		return
	}

	slot, err := app.Services.Calendar.SelectSlot(slotDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, slot, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Calendar) writeSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot := app.Services.Calendar.Snapshot()

	err := httptools.WriteJSON(w, http.StatusOK, snapshot, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}
