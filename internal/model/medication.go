package model

import "time"

// AdministrationStatus records the outcome of one scheduled dose.
// Pending is the derived state of a dose nobody has reported on yet;
// it is never stored.
type AdministrationStatus string

const (
	AdministrationStatusGiven    AdministrationStatus = "given"
	AdministrationStatusNotGiven AdministrationStatus = "not_given"
	AdministrationStatusRefused  AdministrationStatus = "refused"
	AdministrationStatusPending  AdministrationStatus = "pending"
)

// KnownAdministrationStatus reports whether the status is one a care
// worker can record.
func KnownAdministrationStatus(s AdministrationStatus) bool {
	switch s {
	case AdministrationStatusGiven, AdministrationStatusNotGiven, AdministrationStatusRefused:
		return true
	}
	return false
}

// MedicationDayStatus summarizes one medication over one calendar day.
type MedicationDayStatus string

const (
	MedicationDayTaken        MedicationDayStatus = "taken"
	MedicationDayNotTaken     MedicationDayStatus = "not_taken"
	MedicationDayNotReported  MedicationDayStatus = "not_reported"
	MedicationDayNotScheduled MedicationDayStatus = "not_scheduled"
)

type MedicationCreate struct {
	AgencyID     string
	ClientID     string
	Name         string
	Dosage       string
	Instructions string

	// PRN medications are taken as needed and carry no fixed times.
	PRN   bool
	Times []string // "HH:MM", kept sorted
}

type Medication struct {
	ID string
	MedicationCreate
}

type AdministrationCreate struct {
	MedicationID  string
	ScheduledTime time.Time
	Status        AdministrationStatus
	Notes         string
}

type Administration struct {
	ID string
	AdministrationCreate
}

// ScheduledDose is one row of a client's daily medication run sheet.
type ScheduledDose struct {
	MedicationID string
	Name         string
	Dosage       string
	Instructions string
	Time         string // "HH:MM"
	ScheduledAt  time.Time
	Status       AdministrationStatus
}

// MedicationCalendar is the month view of one medication: a status per
// day of month.
type MedicationCalendar struct {
	MedicationID string
	Name         string
	Dosage       string
	Times        []string
	Days         map[int]MedicationDayStatus
}
