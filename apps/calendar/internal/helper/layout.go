package helper

import (
	"math"

	"techcal.asiaclass.dev/apps/calendar/internal/models"
)

const minutesPerHour = 60

// Axis is the fixed visible hour range used to vertically position
// week-view events. It is a visual guide, not a hard clip: events may
// extend past EndHour.
type Axis struct {
	StartHour    int     `json:"startHour"`
	EndHour      int     `json:"endHour"`
	MinHeightPct float64 `json:"minHeightPct"`
}

//nolint:mnd //default working hours
func DefaultAxis() Axis {
	return Axis{StartHour: 7, EndHour: 20, MinHeightPct: 8.0}
}

// Position is an event's vertical placement within a day column, as
// percentages of the axis height.
type Position struct {
	TopPct    float64 `json:"topPct"`
	HeightPct float64 `json:"heightPct"`
}

func (axis Axis) TotalMinutes() int {
	return (axis.EndHour - axis.StartHour) * minutesPerHour
}

// Position maps an event's start/end onto the axis. Top clamps at 0 so
// events starting before StartHour pin to the top; height is floored at
// MinHeightPct so very short events stay clickable. Height is deliberately
// not clamped at the bottom, and overlapping events are not packed into
// columns; simultaneous events may visually collide.
func (axis Axis) Position(event models.Event) Position {
	total := float64(axis.TotalMinutes())

	startMinutes := float64(
		event.Start.Hour()*minutesPerHour + event.Start.Minute() -
			axis.StartHour*minutesPerHour,
	)
	duration := event.End.Sub(event.Start).Minutes()

	return Position{
		TopPct:    math.Max(0, startMinutes/total*100), //nolint:mnd //percent
		HeightPct: math.Max(axis.MinHeightPct, duration/total*100), //nolint:mnd //percent
	}
}

// Hours lists the axis hour marks, one per visible hour row.
func (axis Axis) Hours() []int {
	hours := make([]int, 0, axis.EndHour-axis.StartHour)
	for hour := axis.StartHour; hour < axis.EndHour; hour++ {
		hours = append(hours, hour)
	}
	return hours
}
