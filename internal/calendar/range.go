package calendar

import (
	"fmt"
	"time"
)

type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

type Direction string

const (
	DirectionPrev  Direction = "PREV"
	DirectionNext  Direction = "NEXT"
	DirectionToday Direction = "TODAY"
)

// Range is the display window for a view. Start is inclusive, End
// exclusive: a week window runs from Sunday 00:00 to the next Sunday
// 00:00. Label is the human-readable header for the window.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls inside the window.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// timeNow is swapped in tests.
var timeNow = time.Now

// ComputeRange returns the display window containing date for the given
// view. Weeks start on Sunday.
func ComputeRange(date time.Time, view View) Range {
	switch view {
	case ViewDay:
		start := startOfDay(date)
		return Range{
			Start: start,
			End:   start.AddDate(0, 0, 1),
			Label: start.Format("Jan 2, 2006"),
		}
	case ViewMonth:
		start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		return Range{
			Start: start,
			End:   start.AddDate(0, 1, 0),
			Label: start.Format("January 2006"),
		}
	default: // week
		start := StartOfWeek(date)
		last := start.AddDate(0, 0, 6)
		return Range{
			Start: start,
			End:   start.AddDate(0, 0, 7),
			Label: fmt.Sprintf("%s - %s", start.Format("Jan 2"), last.Format("Jan 2, 2006")),
		}
	}
}

// Navigate shifts date by one unit of the view's granularity, or resets
// to the current instant for DirectionToday. Month steps clamp the
// day-of-month (Jan 31 → Feb 28) so that NEXT followed by PREV always
// lands back in the original view window.
func Navigate(date time.Time, view View, dir Direction) time.Time {
	step := 0
	switch dir {
	case DirectionPrev:
		step = -1
	case DirectionNext:
		step = 1
	default:
		return timeNow()
	}

	switch view {
	case ViewDay:
		return date.AddDate(0, 0, step)
	case ViewMonth:
		return addMonths(date, step)
	default:
		return date.AddDate(0, 0, 7*step)
	}
}

// StartOfWeek returns midnight of the Sunday on or before date.
func StartOfWeek(date time.Time) time.Time {
	d := startOfDay(date)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	shifted := first.AddDate(0, months, 0)

	day := t.Day()
	if last := daysIn(shifted.Year(), shifted.Month()); day > last {
		day = last
	}

	return time.Date(shifted.Year(), shifted.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
