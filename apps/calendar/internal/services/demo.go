package services

import (
	"time"

	"techcal.asiaclass.dev/apps/calendar/internal/models"
)

// DemoEvents is the sample schedule seeded outside production: one dry-dock
// week late May 2024, covering every status and team.
//
//nolint:mnd,exhaustruct //fixture data, optional fields omitted
func DemoEvents() []models.Event {
	day := func(d, hour, minute int) time.Time {
		return time.Date(2024, time.May, d, hour, minute, 0, 0, time.Local)
	}

	return []models.Event{
		{
			ID:          "evt-1",
			Title:       "Discovery Call: Joseph Gordon",
			Start:       day(26, 9, 0),
			End:         day(26, 10, 0),
			Technicians: []string{"Joseph Gordon", "Ari Tan"},
			Team:        "Electrical team",
			Location:    "Dry dock control room",
			JoinLink:    "https://zoom.us/j/123456789",
			Description: "Brief the technicians before deploying to the Azura hull.",
			Status:      models.StatusScheduled,
		},
		{
			ID:          "evt-2",
			Title:       "Hull ultrasound sweep",
			Start:       day(27, 13, 0),
			End:         day(27, 15, 30),
			Technicians: []string{"Jasper Estrada", "Nora Ahmed"},
			Team:        "Hull inspection team",
			Location:    "Pier 4 - MV Blue Current",
			JoinLink:    "https://meet.asia-class/internal",
			Description: "Full exterior sweep following dry-dock ballast repairs.",
			Status:      models.StatusInProgress,
		},
		{
			ID:          "evt-3",
			Title:       "Generator recalibration",
			Start:       day(28, 8, 0),
			End:         day(28, 11, 0),
			Technicians: []string{"Ari Tan", "Luca Pereira"},
			Team:        "Electrical team",
			Location:    "Engine room A",
			Description: "Calibrate fuel sensors prior to cargo loading.",
			Status:      models.StatusDone,
		},
		{
			ID:          "evt-4",
			Title:       "CO2 suppression drill",
			Start:       day(29, 16, 0),
			End:         day(29, 17, 30),
			Technicians: []string{"Karen Samuels"},
			Team:        "Engine room team",
			Location:    "Simulation Bay",
			Description: "Refresher for new hire watch keepers.",
			Status:      models.StatusScheduled,
		},
		{
			ID:          "evt-5",
			Title:       "Emergency pump retrofit",
			Start:       day(30, 10, 30),
			End:         day(30, 13, 30),
			Technicians: []string{"Joseph Gordon", "Nora Ahmed"},
			Team:        "Engine room team",
			Location:    "Harbor West - Tug 9",
			Description: "Swap faulty impellers discovered overnight.",
			Status:      models.StatusInProgress,
		},
		{
			ID:          "evt-6",
			Title:       "Thermal imaging walk-through",
			Start:       day(31, 18, 0),
			End:         day(31, 19, 30),
			Technicians: []string{"Jasper Estrada"},
			Team:        "Hull inspection team",
			Location:    "Bulkhead deck B",
			Description: "Focus on starboard gaskets.",
			Status:      models.StatusCancelled,
		},
	}
}
