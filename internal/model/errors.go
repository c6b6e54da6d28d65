package model

import (
	"errors"
	"fmt"
)

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")

// ErrDoseNotScheduled rejects an administration recorded for a time
// that is not on the medication's schedule.
var ErrDoseNotScheduled = errors.New("dose is not on the medication schedule")

// ScheduleConflictError reports a double booking and names the party
// (care worker or client) that is already booked in the requested window.
type ScheduleConflictError struct {
	Party string
	Role  string
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("%s %s is already booked for this time", e.Role, e.Party)
}
