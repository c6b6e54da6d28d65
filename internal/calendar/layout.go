package calendar

import "time"

const (
	// DefaultStartHour and DefaultEndHour bound the visible time grid
	// (07:00–19:00); events entirely outside are not laid out.
	DefaultStartHour = 7
	DefaultEndHour   = 19

	DefaultSlotHeight      = 40
	DefaultTimeGutterWidth = 60
	WeekColumns            = 7

	// MinEventHeightPx guarantees a visible box for very short
	// appointments.
	MinEventHeightPx = 20

	slotMinutes = 30
	eventGapPx  = 4
)

// HourRange is the visible clock-time window of the grid, in whole
// hours.
type HourRange struct {
	StartHour int
	EndHour   int
}

// DefaultHourRange is the grid's fixed 07:00–19:00 window.
var DefaultHourRange = HourRange{StartHour: DefaultStartHour, EndHour: DefaultEndHour}

// Minutes returns the vertical extent of the range in minutes.
func (h HourRange) Minutes() int {
	return (h.EndHour - h.StartHour) * 60
}

// Slots returns the number of 30-minute rows the grid renders. The end
// hour gets a full row pair, matching the rendered 7:00–19:30 gutter.
func (h HourRange) Slots() int {
	return (h.EndHour - h.StartHour + 1) * 2
}

// GridDimensions is the pixel geometry of the time grid.
type GridDimensions struct {
	SlotHeight      int
	TimeGutterWidth int
	TotalWidth      int
	Columns         int
}

// DefaultGridDimensions returns the standard week-view geometry for a
// grid of the given total width.
func DefaultGridDimensions(totalWidth int) GridDimensions {
	return GridDimensions{
		SlotHeight:      DefaultSlotHeight,
		TimeGutterWidth: DefaultTimeGutterWidth,
		TotalWidth:      totalWidth,
		Columns:         WeekColumns,
	}
}

// DayWidth is the pixel width of one day column.
func (d GridDimensions) DayWidth() int {
	return (d.TotalWidth - d.TimeGutterWidth) / d.Columns
}

// TotalHeight is the pixel height of the scrollable grid body.
func (d GridDimensions) TotalHeight(hours HourRange) int {
	return hours.Slots() * d.SlotHeight
}

// Position is the derived pixel placement of one event box. It is never
// a source of truth: recomputing Layout with the same inputs yields the
// same positions.
type Position struct {
	Top    int
	Left   int
	Width  int
	Height int

	DayIndex        int
	StartMinutes    int // from the top of the visible hour range, after clamping
	DurationMinutes int // after clamping to the visible hour range
}

// Layout places events on the day-column/time-row grid of the window
// starting at windowStart (midnight of the first visible day). Events
// outside the window or entirely outside the visible hours are omitted;
// events partially overlapping the hours are clamped. Pure function of
// its inputs.
func Layout(events []Event, windowStart time.Time, dims GridDimensions, hours HourRange) map[string]Position {
	positions := make(map[string]Position, len(events))

	start := startOfDay(windowStart)
	dayWidth := dims.DayWidth()

	for _, e := range events {
		dayIndex := daysBetween(start, startOfDay(e.Start))
		if dayIndex < 0 || dayIndex >= dims.Columns {
			continue
		}

		startMin := e.Start.Hour()*60 + e.Start.Minute()
		endMin := e.End.Hour()*60 + e.End.Minute()

		rangeStart := hours.StartHour * 60
		rangeEnd := hours.EndHour * 60

		if endMin <= rangeStart || startMin >= rangeEnd {
			continue
		}

		clampedStart := max(startMin, rangeStart)
		clampedEnd := min(endMin, rangeEnd)

		startMinutes := clampedStart - rangeStart
		durationMinutes := clampedEnd - clampedStart

		top := startMinutes / slotMinutes * dims.SlotHeight
		height := durationMinutes / slotMinutes * dims.SlotHeight
		if height < MinEventHeightPx {
			height = MinEventHeightPx
		}

		positions[e.ID] = Position{
			Top:             top,
			Left:            dims.TimeGutterWidth + dayIndex*dayWidth,
			Width:           dayWidth - eventGapPx,
			Height:          height,
			DayIndex:        dayIndex,
			StartMinutes:    startMinutes,
			DurationMinutes: durationMinutes,
		}
	}

	return positions
}

func daysBetween(from, to time.Time) int {
	// Rounding keeps the count stable across DST transitions, where a
	// calendar day is 23 or 25 hours long.
	hours := to.Sub(from).Hours()
	if hours < 0 {
		return int((hours - 12) / 24)
	}
	return int((hours + 12) / 24)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
