package helper

import "time"

// MonthGridDays is the fixed size of the month matrix: six full
// Sunday-anchored weeks, so adjacent-month spill days always render.
const MonthGridDays = 42

const daysPerWeek = 7

// StartOfWeek returns the Sunday at 00:00 of the week containing date,
// in date's location.
func StartOfWeek(date time.Time) time.Time {
	day := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// EndOfWeek returns the Saturday (at 00:00) ending the week containing date.
func EndOfWeek(date time.Time) time.Time {
	return StartOfWeek(date).AddDate(0, 0, daysPerWeek-1)
}

func AddDays(date time.Time, amount int) time.Time {
	return date.AddDate(0, 0, amount)
}

// AddMonths shifts date by whole calendar months, normalizing overflow the
// way time.AddDate does (Jan 31 + 1 month lands in early March).
func AddMonths(date time.Time, amount int) time.Time {
	return date.AddDate(0, amount, 0)
}

// MonthMatrix returns the 42 consecutive days shown for reference's month,
// starting at the Sunday on or before the first of the month.
func MonthMatrix(reference time.Time) []time.Time {
	first := time.Date(
		reference.Year(), reference.Month(), 1,
		0, 0, 0, 0,
		reference.Location(),
	)
	start := StartOfWeek(first)

	days := make([]time.Time, MonthGridDays)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekDays returns the Sunday-anchored 7-day span containing reference.
func WeekDays(reference time.Time) []time.Time {
	start := StartOfWeek(reference)

	days := make([]time.Time, daysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// DateKey canonicalizes a date to its local calendar day, e.g. "2024-05-26".
// Local wall clock on purpose: keying on UTC shifts evening events to the
// wrong cell for anyone east of Greenwich.
func DateKey(date time.Time) string {
	return date.Format(time.DateOnly)
}
