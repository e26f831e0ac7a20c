package calendar_test

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"techcal.asiaclass.dev/apps/calendar/internal/dtos"
	"techcal.asiaclass.dev/apps/calendar/internal/helper"
	"techcal.asiaclass.dev/apps/calendar/internal/models"
)

func fetchSnapshot(
	t *testing.T,
	method string,
	path string,
	data any,
) dtos.SnapshotDto {
	t.Helper()

	tReq := test.CreateRequestTester(getRoutes(), method, path)
	if data != nil {
		tReq.SetData(data)
	}

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	var snapshot dtos.SnapshotDto
	err := httptools.ReadJSON(rs.Body, &snapshot)
	require.NoError(t, err)

	return snapshot
}

func TestStateHandler(t *testing.T) {
	resetState(t)

	snapshot := fetchSnapshot(t, http.MethodGet, "/calendar/api/state", nil)

	assert.Equal(t, models.ViewMonth, snapshot.ViewMode)
	require.Len(t, snapshot.Days, helper.MonthGridDays)
	assert.Equal(t, "2024-04-28", snapshot.Days[0].Key)
	assert.Len(t, snapshot.Events, 6)
	require.Len(t, snapshot.EventsByDay["2024-05-27"], 1)
}

func TestConfigHandler(t *testing.T) {
	resetState(t)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		"/calendar/api/config",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var configDto dtos.ConfigDto
	err := httptools.ReadJSON(rs.Body, &configDto)
	require.NoError(t, err)

	assert.Len(t, configDto.Technicians, 6)
	assert.Len(t, configDto.Teams, 3)
	assert.Len(t, configDto.Statuses, 4)
	assert.Equal(t, 7, configDto.Axis.StartHour)
	assert.Equal(t, 20, configDto.Axis.EndHour)
}

func TestNavigateHandler(t *testing.T) {
	resetState(t)

	snapshot := fetchSnapshot(
		t,
		http.MethodPost,
		"/calendar/api/navigate/next",
		nil,
	)

	assert.Equal(t, time.June, snapshot.ReferenceDate.Month())
	// June 1st 2024 is a Saturday, so June's grid opens on May 26 and the
	// demo week is still inside the window.
	assert.Equal(t, "2024-05-26", snapshot.Days[0].Key)
	assert.Len(t, snapshot.Events, 6)
	assert.False(t, snapshot.Days[0].InCurrentMonth)
}

func TestNavigateHandlerUnknownDirection(t *testing.T) {
	resetState(t)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		"/calendar/api/navigate/sideways",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)
}

func TestTodayHandler(t *testing.T) {
	resetState(t)

	snapshot := fetchSnapshot(t, http.MethodPost, "/calendar/api/today", nil)

	now := time.Now()
	assert.Equal(t, now.Year(), snapshot.ReferenceDate.Year())
	assert.Equal(t, now.Month(), snapshot.ReferenceDate.Month())
	assert.Equal(t, now.Day(), snapshot.ReferenceDate.Day())
}

func TestViewModeHandler(t *testing.T) {
	resetState(t)

	snapshot := fetchSnapshot(t, http.MethodPost, "/calendar/api/view/week", nil)

	assert.Equal(t, models.ViewWeek, snapshot.ViewMode)
	require.Len(t, snapshot.Days, 7)
	assert.Equal(t, "2024-05-26", snapshot.Days[0].Key)

	// Week mode carries per-event geometry.
	require.Len(t, snapshot.EventsByDay["2024-05-27"], 1)
	assert.NotNil(t, snapshot.EventsByDay["2024-05-27"][0].Layout)
}

func TestViewModeHandlerUnknownMode(t *testing.T) {
	resetState(t)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		"/calendar/api/view/quarter",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)
}

func TestFiltersHandler(t *testing.T) {
	resetState(t)

	//nolint:exhaustruct //other filters stay inactive
	snapshot := fetchSnapshot(
		t,
		http.MethodPost,
		"/calendar/api/filters",
		dtos.FiltersDto{
			Statuses: []models.EventStatus{models.StatusScheduled},
			Team:     "Electrical team",
		},
	)

	require.Len(t, snapshot.Events, 1)
	assert.Equal(t, "Discovery Call: Joseph Gordon", snapshot.Events[0].Title)
}

func TestFiltersHandlerUnknownStatus(t *testing.T) {
	resetState(t)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		"/calendar/api/filters",
	)
	//nolint:exhaustruct //other filters stay inactive
	tReq.SetData(dtos.FiltersDto{
		Statuses: []models.EventStatus{models.EventStatus("archived")},
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)
}

func TestSelectDayHandler(t *testing.T) {
	resetState(t)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		"/calendar/api/days/2024-06-14/select",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var slot dtos.SlotDto
	err := httptools.ReadJSON(rs.Body, &slot)
	require.NoError(t, err)

	assert.Equal(t, 2024, slot.Start.Year())
	assert.Equal(t, time.June, slot.Start.Month())
	assert.Equal(t, 14, slot.Start.Day())
	assert.Equal(t, 9, slot.Start.Hour())
	assert.Equal(t, time.Hour, slot.End.Sub(slot.Start))
}

func TestSelectDayHandlerBadDate(t *testing.T) {
	resetState(t)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		"/calendar/api/days/yesterday/select",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)
}

func TestSelectSlotHandler(t *testing.T) {
	resetState(t)

	start := time.Date(2024, time.May, 28, 14, 0, 0, 0, time.Local)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		"/calendar/api/slots/select",
	)
	tReq.SetData(dtos.SlotDto{Start: start, End: start.Add(time.Hour)})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var slot dtos.SlotDto
	err := httptools.ReadJSON(rs.Body, &slot)
	require.NoError(t, err)
	assert.True(t, slot.Start.Equal(start))
}

func TestSelectSlotHandlerInvertedRange(t *testing.T) {
	resetState(t)

	start := time.Date(2024, time.May, 28, 14, 0, 0, 0, time.Local)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		"/calendar/api/slots/select",
	)
	tReq.SetData(dtos.SlotDto{Start: start, End: start})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusBadRequest, rs.StatusCode)
}

func TestFeedHandler(t *testing.T) {
	resetState(t)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		"/calendar/feed.ics",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(
		t,
		"text/calendar; charset=utf-8",
		rs.Header.Get("Content-Type"),
	)

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "BEGIN:VCALENDAR")
	assert.Contains(t, string(body), "UID:evt-1")
}
