package api

import (
	"time"

	"github.com/careviah/care-scheduler/internal/model"
)

type userResp struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role"`
	Color       string `json:"color,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

func mapToUserResp(user *model.User) (*userResp, error) {
	return &userResp{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
		Color:       user.Color,
		Photo:       user.Photo,
	}, nil
}

type scheduleResp struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	ClientID            string  `json:"client_id"`
	UserID              string  `json:"user_id"`
	Date                string  `json:"date"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	Type                string  `json:"type"`
	Status              string  `json:"status"`
	Notes               string  `json:"notes,omitempty"`
	ChargeRate          float64 `json:"charge_rate,omitempty"`
	Color               string  `json:"color,omitempty"`
	ClientFirstName     string  `json:"client_first_name,omitempty"`
	ClientLastName      string  `json:"client_last_name,omitempty"`
	CareWorkerFirstName string  `json:"care_worker_first_name,omitempty"`
	CareWorkerLastName  string  `json:"care_worker_last_name,omitempty"`
}

func mapToScheduleResp(schedule *model.Schedule) (*scheduleResp, error) {
	return &scheduleResp{
		ID:                  schedule.ID,
		Title:               schedule.DisplayTitle(),
		ClientID:            schedule.ClientID,
		UserID:              schedule.UserID,
		Date:                schedule.Date.Format(dateFormat),
		StartTime:           schedule.StartTime,
		EndTime:             schedule.EndTime,
		Type:                string(schedule.Type),
		Status:              string(schedule.Status),
		Notes:               schedule.Notes,
		ChargeRate:          schedule.ChargeRate,
		Color:               schedule.Color,
		ClientFirstName:     schedule.ClientFirstName,
		ClientLastName:      schedule.ClientLastName,
		CareWorkerFirstName: schedule.CareWorkerFirstName,
		CareWorkerLastName:  schedule.CareWorkerLastName,
	}, nil
}

type medicationResp struct {
	ID           string   `json:"id"`
	ClientID     string   `json:"client_id"`
	Name         string   `json:"name"`
	Dosage       string   `json:"dosage,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	PRN          bool     `json:"prn"`
	Times        []string `json:"times"`
}

func mapToMedicationResp(medication *model.Medication) (*medicationResp, error) {
	return &medicationResp{
		ID:           medication.ID,
		ClientID:     medication.ClientID,
		Name:         medication.Name,
		Dosage:       medication.Dosage,
		Instructions: medication.Instructions,
		PRN:          medication.PRN,
		Times:        medication.Times,
	}, nil
}

type doseResp struct {
	MedicationID string `json:"medication_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Time         string `json:"time"`
	ScheduledAt  string `json:"scheduled_at"`
	Status       string `json:"status"`
}

func mapToDoseResp(dose *model.ScheduledDose) (*doseResp, error) {
	return &doseResp{
		MedicationID: dose.MedicationID,
		Name:         dose.Name,
		Dosage:       dose.Dosage,
		Instructions: dose.Instructions,
		Time:         dose.Time,
		ScheduledAt:  dose.ScheduledAt.Format(time.RFC3339),
		Status:       string(dose.Status),
	}, nil
}

type medicationCalendarResp struct {
	MedicationID string         `json:"medication_id"`
	Name         string         `json:"name"`
	Dosage       string         `json:"dosage,omitempty"`
	Times        []string       `json:"times"`
	Days         map[int]string `json:"days"`
}

func mapToMedicationCalendarResp(calendar *model.MedicationCalendar) (*medicationCalendarResp, error) {
	days := make(map[int]string, len(calendar.Days))
	for d, status := range calendar.Days {
		days[d] = string(status)
	}

	return &medicationCalendarResp{
		MedicationID: calendar.MedicationID,
		Name:         calendar.Name,
		Dosage:       calendar.Dosage,
		Times:        calendar.Times,
		Days:         days,
	}, nil
}

type administrationResp struct {
	ID            string `json:"id"`
	MedicationID  string `json:"medication_id"`
	ScheduledTime string `json:"scheduled_time"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
}

func mapToAdministrationResp(administration *model.Administration) (*administrationResp, error) {
	return &administrationResp{
		ID:            administration.ID,
		MedicationID:  administration.MedicationID,
		ScheduledTime: administration.ScheduledTime.Format(time.RFC3339),
		Status:        string(administration.Status),
		Notes:         administration.Notes,
	}, nil
}

type locationResp struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func mapToLocationResp(location *model.Location) (*locationResp, error) {
	return &locationResp{
		ID:      location.ID,
		Name:    location.Name,
		Address: location.Address,
	}, nil
}
