// Package calendar holds the pure core of the scheduling dashboard:
// view-range arithmetic, event filtering, color assignment, grid layout
// and drag rescheduling. Nothing in this package does I/O; state and
// network synchronization live in the store and sync subpackages.
package calendar

import (
	"time"

	"github.com/careviah/care-scheduler/internal/model"
)

// Event is a normalized appointment as the calendar renders it. It is
// produced from a wire schedule record by the apiclient adapter; Start
// and End always fall on Date, and StartTime/EndTime are the wall-clock
// "HH:MM" strings authoritative for display and editing.
type Event struct {
	ID    string
	Title string

	Start time.Time
	End   time.Time
	Date  time.Time

	StartTime string
	EndTime   string

	ResourceID string // assigned care worker or office staff member
	ClientID   string

	Type   model.ScheduleType
	Status model.ScheduleStatus

	Notes      string
	ChargeRate float64
	Color      string
}

// Duration is End − Start, the display duration of the appointment.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Actor is a selectable staff member or client in the sidebar. Selected
// controls whether the actor's events pass the visibility filter; it is
// purely client-side state and never persisted.
type Actor struct {
	ID        string
	FirstName string
	LastName  string
	Role      string
	Color     string
	Avatar    string
	Selected  bool
}

func (a Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}

// ActorLists is the partitioned population returned by the user API.
type ActorLists struct {
	CareWorkers []Actor
	OfficeStaff []Actor
	Clients     []Actor
}

// ParseInstant parses a serialized instant, falling back to the current
// time when the value is missing or malformed. The boolean is false on
// fallback so callers can log the substitution; it is never an error.
func ParseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Now(), false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now(), false
	}
	return t, true
}
