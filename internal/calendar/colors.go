package calendar

import (
	"fmt"
	"hash/fnv"

	"github.com/careviah/care-scheduler/internal/model"
	"github.com/gerow/go-color"
)

// DefaultColor is the fallback for unrecognized appointment types.
const DefaultColor = "#6b7280"

var typeColors = map[model.ScheduleType]string{
	model.ScheduleTypeAppointment:   "#4f46e5",
	model.ScheduleTypeWeeklyCheckup: "#10b981",
	model.ScheduleTypeCheckup:       "#10b981",
	model.ScheduleTypeEmergency:     "#ef4444",
	model.ScheduleTypeRoutine:       "#8b5cf6",
	model.ScheduleTypeHomeVisit:     "#059669",
}

// ColorFor maps an appointment type to its display color. Total: any
// unknown type yields DefaultColor.
func ColorFor(t model.ScheduleType) string {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return DefaultColor
}

// StableColor derives a display color from an opaque id. The same id
// always yields the same color; the hue is hashed, saturation and
// lightness are fixed so every assignment stays legible on white.
func StableColor(id string) string {
	h := fnv.New32a()
	h.Write([]byte(id))

	hsl := color.HSL{
		H: float64(h.Sum32()%360) / 360,
		S: 0.65,
		L: 0.55,
	}

	return fmt.Sprintf("#%s", hsl.ToRGB().ToHTML())
}
