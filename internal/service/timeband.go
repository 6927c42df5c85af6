package service

import "time"

// Shift display statuses relative to "now".
const (
	ShiftStatusUpcoming   = "upcoming"
	ShiftStatusInProgress = "in-progress"
	ShiftStatusCompleted  = "completed"
)

// lookbackDays is the compliance window length: four whole calendar weeks
// ending the day before the current week's Monday, so the still-in-progress
// week never skews the counts.
const lookbackDays = 28

// WeekStartOf returns Monday 00:00:00.000 of ref's calendar week, in ref's
// location. A Sunday reference belongs to the week that started six days
// earlier, not the week starting the next day.
func WeekStartOf(ref time.Time) time.Time {
	offset := (int(ref.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return day.AddDate(0, 0, -offset)
}

// CurrentWeekBounds returns the Monday 00:00:00.000 and Sunday 23:59:59.999
// bounding ref's calendar week.
func CurrentWeekBounds(ref time.Time) (start, end time.Time) {
	start = WeekStartOf(ref)
	end = start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

// ComplianceLookback returns the closed 28-day window ending at 23:59:59.999
// of the day before ref's week Monday.
func ComplianceLookback(ref time.Time) (start, end time.Time) {
	weekStart := WeekStartOf(ref)
	end = weekStart.Add(-time.Millisecond)
	endDay := weekStart.AddDate(0, 0, -1)
	start = endDay.AddDate(0, 0, -(lookbackDays - 1))
	return start, end
}

// SameWeek reports whether a and b fall in the same Monday-start week.
// Both are evaluated in a's location so a cached week marker and "now"
// agree on where the week boundary lies.
func SameWeek(a, b time.Time) bool {
	return WeekStartOf(a).Equal(WeekStartOf(b.In(a.Location())))
}

// ShiftStatus classifies a shift relative to now.
// start == now and end == now both classify as in-progress (closed interval);
// a zero start or end classifies as completed, the fail-safe default that
// keeps bad rows from sticking in "upcoming" forever.
func ShiftStatus(now, start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return ShiftStatusCompleted
	}
	if now.Before(start) {
		return ShiftStatusUpcoming
	}
	if !now.After(end) {
		return ShiftStatusInProgress
	}
	return ShiftStatusCompleted
}
