package calendar

import "time"

const (
	// SnapQuantumMinutes is the time granularity drag-computed start
	// times are rounded down to.
	SnapQuantumMinutes = 10

	// DragThresholdPx separates a click from a drag: the pointer must
	// move further than this on either axis before a drag begins.
	DragThresholdPx = 3
)

type DragPhase int

const (
	DragIdle DragPhase = iota
	DragActive
)

// Geometry fixes the grid a drag is inverse-mapped through: the pixel
// dimensions, visible hours and the first visible day of the window.
type Geometry struct {
	Dims        GridDimensions
	Hours       HourRange
	WindowStart time.Time
}

// DragController runs the Idle → Dragging → Idle state machine for a
// single pointer. Press captures the event and its pre-drag position,
// Move updates a snapped live preview once the motion threshold is
// exceeded, Release commits (or reports a plain click) and Cancel
// discards the gesture. Single-pointer by construction: a Press while
// another drag is active replaces it.
type DragController struct {
	geom  Geometry
	phase DragPhase

	event  Event
	origin Position

	candDay     int
	candMinutes int // candidate start offset from the top of the visible range
}

func NewDragController(geom Geometry) *DragController {
	return &DragController{geom: geom}
}

func (c *DragController) Phase() DragPhase {
	return c.phase
}

// Press begins tracking a pointer that went down on an event box.
func (c *DragController) Press(ev Event, pos Position) {
	c.phase = DragIdle
	c.event = ev
	c.origin = pos
	c.candDay = pos.DayIndex
	c.candMinutes = pos.StartMinutes
}

// Move handles a pointer move with cumulative pixel offsets from the
// press point. It returns the snapped preview position and whether a
// drag is in progress; below the motion threshold the gesture is still
// a potential click and the preview is not meaningful.
func (c *DragController) Move(dx, dy int) (Position, bool) {
	if c.phase == DragIdle {
		if abs(dx) <= DragThresholdPx && abs(dy) <= DragThresholdPx {
			return Position{}, false
		}
		c.phase = DragActive
	}

	dims := c.geom.Dims
	dayWidth := dims.DayWidth()

	newLeft := c.origin.Left + dx
	rawDay := (newLeft - dims.TimeGutterWidth) / dayWidth
	c.candDay = clamp(rawDay, 0, dims.Columns-1)

	newTop := max(c.origin.Top+dy, 0)
	minutes := newTop * slotMinutes / dims.SlotHeight
	snapped := minutes / SnapQuantumMinutes * SnapQuantumMinutes

	// The latest start is one slot short of the bottom of the range.
	maxStart := c.geom.Hours.Minutes() - slotMinutes
	c.candMinutes = min(snapped, maxStart)

	return c.previewPosition(), true
}

// Preview returns the current candidate position while dragging.
func (c *DragController) Preview() (Position, bool) {
	if c.phase != DragActive {
		return Position{}, false
	}
	return c.previewPosition(), true
}

// Release finishes the gesture. If the threshold was never exceeded it
// reports ok=false and the gesture should be treated as a click. On a
// drag it returns the rescheduled event, built from the last candidate
// day/time: the original duration is preserved exactly, and if the new
// end would pass the bottom of the visible range it is clamped there
// (shrinking the duration).
func (c *DragController) Release() (Event, Position, bool) {
	if c.phase != DragActive {
		return Event{}, Position{}, false
	}
	c.phase = DragIdle

	day := startOfDay(c.geom.WindowStart).AddDate(0, 0, c.candDay)
	start := day.Add(time.Duration(c.geom.Hours.StartHour*60+c.candMinutes) * time.Minute)

	end := start.Add(c.event.Duration())
	upper := day.Add(time.Duration(c.geom.Hours.EndHour) * time.Hour)
	if end.After(upper) {
		end = upper
	}

	updated := c.event
	updated.Start = start
	updated.End = end
	updated.Date = day
	updated.StartTime = start.Format("15:04")
	updated.EndTime = end.Format("15:04")

	pos := c.committedPosition(start, end)
	return updated, pos, true
}

// Cancel abandons the gesture without rescheduling.
func (c *DragController) Cancel() {
	c.phase = DragIdle
}

func (c *DragController) previewPosition() Position {
	dims := c.geom.Dims
	dayWidth := dims.DayWidth()

	height := c.origin.DurationMinutes / slotMinutes * dims.SlotHeight
	if height < MinEventHeightPx {
		height = MinEventHeightPx
	}

	return Position{
		Top:             c.candMinutes / slotMinutes * dims.SlotHeight,
		Left:            dims.TimeGutterWidth + c.candDay*dayWidth,
		Width:           dayWidth - eventGapPx,
		Height:          height,
		DayIndex:        c.candDay,
		StartMinutes:    c.candMinutes,
		DurationMinutes: c.origin.DurationMinutes,
	}
}

func (c *DragController) committedPosition(start, end time.Time) Position {
	dims := c.geom.Dims
	dayWidth := dims.DayWidth()

	startMinutes := start.Hour()*60 + start.Minute() - c.geom.Hours.StartHour*60
	duration := int(end.Sub(start) / time.Minute)

	height := duration / slotMinutes * dims.SlotHeight
	if height < MinEventHeightPx {
		height = MinEventHeightPx
	}

	return Position{
		Top:             startMinutes / slotMinutes * dims.SlotHeight,
		Left:            dims.TimeGutterWidth + c.candDay*dayWidth,
		Width:           dayWidth - eventGapPx,
		Height:          height,
		DayIndex:        c.candDay,
		StartMinutes:    startMinutes,
		DurationMinutes: duration,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
