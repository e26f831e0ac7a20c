package calendar

import (
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/errortools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"techcal.asiaclass.dev/apps/calendar/internal/dtos"
)

func (app *Calendar) eventsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events", prefix),
		app.listEventsHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/{id}", prefix),
		app.getEventHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events", prefix),
		app.createEventHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("PUT %s/events/{id}", prefix),
		app.updateEventHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("DELETE %s/events/{id}", prefix),
		app.deleteEventHandler,
	)
}

func (app *Calendar) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	err := httptools.WriteJSON(w, http.StatusOK, app.Services.Events.List(), nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Calendar) getEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	event, err := app.Services.Events.GetByID(id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, event, nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

// Event mutations respond with the updated authoritative list so the
// caller can re-render without a second round trip.
func (app *Calendar) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var eventDto dtos.EventDto

	err := httptools.ReadJSON(r.Body, &eventDto)
	if err != nil {
		httptools.HandleError(w, r, errortools.NewBadRequestError(err))
		return
	}

	if ok, errs := eventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	_, err = app.Services.Events.Create(eventDto.Event())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(
		w,
		http.StatusCreated,
		app.Services.Events.List(),
		nil,
	)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Calendar) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var eventDto dtos.EventDto

	err = httptools.ReadJSON(r.Body, &eventDto)
	if err != nil {
		httptools.HandleError(w, r, errortools.NewBadRequestError(err))
		return
	}

	if ok, errs := eventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	_, err = app.Services.Events.Update(id, eventDto.Event())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, app.Services.Events.List(), nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}

func (app *Calendar) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	err = app.Services.Events.Delete(id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, app.Services.Events.List(), nil)
	if err != nil {
		httptools.ServerErrorResponse(w, r, err)
	}
}
