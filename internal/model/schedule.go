package model

import "time"

type ScheduleType string

const (
	ScheduleTypeAppointment   ScheduleType = "APPOINTMENT"
	ScheduleTypeHomeVisit     ScheduleType = "HOME_VISIT"
	ScheduleTypeWeeklyCheckup ScheduleType = "WEEKLY_CHECKUP"
	ScheduleTypeCheckup       ScheduleType = "CHECKUP"
	ScheduleTypeEmergency     ScheduleType = "EMERGENCY"
	ScheduleTypeRoutine       ScheduleType = "ROUTINE"
	ScheduleTypeOther         ScheduleType = "OTHER"
)

type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "PENDING"
	ScheduleStatusConfirmed ScheduleStatus = "CONFIRMED"
	ScheduleStatusCompleted ScheduleStatus = "COMPLETED"
	ScheduleStatusCanceled  ScheduleStatus = "CANCELED"
)

// KnownScheduleType reports membership in the closed set of schedule types.
func KnownScheduleType(t ScheduleType) bool {
	switch t {
	case ScheduleTypeAppointment, ScheduleTypeHomeVisit, ScheduleTypeWeeklyCheckup,
		ScheduleTypeCheckup, ScheduleTypeEmergency, ScheduleTypeRoutine, ScheduleTypeOther:
		return true
	}
	return false
}

func KnownScheduleStatus(s ScheduleStatus) bool {
	switch s {
	case ScheduleStatusPending, ScheduleStatusConfirmed, ScheduleStatusCompleted, ScheduleStatusCanceled:
		return true
	}
	return false
}

type ScheduleCreate struct {
	AgencyID   string
	ClientID   string
	UserID     string
	Date       time.Time
	StartTime  string // wall clock "HH:MM", authoritative for display and editing
	EndTime    string
	Type       ScheduleType
	Status     ScheduleStatus
	Notes      string
	ChargeRate float64
	Color      string
}

type Schedule struct {
	ID string
	ScheduleCreate

	ClientFirstName     string
	ClientLastName      string
	CareWorkerFirstName string
	CareWorkerLastName  string
}

// DisplayTitle is the calendar label, "<client first name> with
// <care worker first name>".
func (s *Schedule) DisplayTitle() string {
	return s.ClientFirstName + " with " + s.CareWorkerFirstName
}

type SchedulesFilter struct {
	AgencyID string
	From     time.Time
	To       time.Time
}
