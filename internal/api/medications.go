package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/careviah/care-scheduler/internal/model"
	"github.com/careviah/care-scheduler/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type medicationReq struct {
	ClientID     string   `json:"client_id"`
	Name         string   `json:"name"`
	Dosage       string   `json:"dosage"`
	Instructions string   `json:"instructions"`
	PRN          bool     `json:"prn"`
	Times        []string `json:"times"`
}

func (req *medicationReq) validate() *validator.Validator {
	v := validator.New()

	v.Check(req.ClientID != "", "client_id", "client must be provided")
	v.Check(req.Name != "", "name", "name must be provided")
	v.Check(req.PRN || len(req.Times) > 0, "times", "at least one dose time must be provided")

	for _, t := range req.Times {
		if !validator.TimeRX.MatchString(t) {
			v.AddError("times", "every dose time must be a valid HH:MM time")
			break
		}
	}

	return v
}

func (req *medicationReq) toCreate(agencyID string) *model.MedicationCreate {
	return &model.MedicationCreate{
		AgencyID:     agencyID,
		ClientID:     req.ClientID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
		PRN:          req.PRN,
		Times:        req.Times,
	}
}

type administrationReq struct {
	ScheduledTime string `json:"scheduled_time"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

func (req *administrationReq) validate() (*validator.Validator, time.Time) {
	v := validator.New()

	v.Check(req.ScheduledTime != "", "scheduled_time", "scheduled time must be provided")
	v.Check(model.KnownAdministrationStatus(model.AdministrationStatus(req.Status)), "status", "unknown administration status")

	at, err := time.Parse(time.RFC3339, req.ScheduledTime)
	if req.ScheduledTime != "" && err != nil {
		v.AddError("scheduled_time", "must be a valid RFC3339 timestamp")
	}

	return v, at
}

func (a *Api) getMedicationsHandler(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		a.badRequestResponse(w, r, errors.New("clientId must be provided"))
		return
	}

	medications, err := a.medications.GetClientMedications(r.Context(), clientID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get medications: %w", err))
		return
	}

	resp, _ := mapSlice(medications, mapToMedicationResp)

	if err := a.writeJSON(w, http.StatusOK, map[string]interface{}{"data": resp}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createMedicationHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	req := &medicationReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if v := req.validate(); !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	medication, err := a.medications.CreateMedication(r.Context(), req.toCreate(user.AgencyID))
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create medication: %w", err))
		return
	}

	resp, _ := mapToMedicationResp(medication)

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateMedicationHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	id := chi.URLParam(r, "medicationID")

	req := &medicationReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if v := req.validate(); !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	medication, err := a.medications.UpdateMedication(r.Context(), &model.Medication{
		ID:               id,
		MedicationCreate: *req.toCreate(user.AgencyID),
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("update medication: %w", err))
		}
		return
	}

	resp, _ := mapToMedicationResp(medication)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteMedicationHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "medicationID")

	if err := a.medications.DeleteMedication(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("delete medication: %w", err))
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// getMedicationScheduleHandler returns the daily run sheet: one entry
// per scheduled dose with its recorded or pending status.
func (a *Api) getMedicationScheduleHandler(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		a.badRequestResponse(w, r, errors.New("clientId must be provided"))
		return
	}

	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		var err error
		date, err = parseDate(v)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid date: %w", err))
			return
		}
	}

	doses, err := a.medications.DailySchedule(r.Context(), clientID, date)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("daily schedule: %w", err))
		return
	}

	resp, _ := mapSlice(doses, mapToDoseResp)

	if err := a.writeJSON(w, http.StatusOK, map[string]interface{}{"data": resp}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getMedicationCalendarHandler(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		a.badRequestResponse(w, r, errors.New("clientId must be provided"))
		return
	}

	month := time.Now()
	if v := r.URL.Query().Get("month"); v != "" {
		var err error
		month, err = time.Parse("2006-01", v)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid month: %w", err))
			return
		}
	}

	calendars, err := a.medications.MonthCalendar(r.Context(), clientID, month)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("month calendar: %w", err))
		return
	}

	resp, _ := mapSlice(calendars, mapToMedicationCalendarResp)

	if err := a.writeJSON(w, http.StatusOK, map[string]interface{}{"data": resp}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) recordAdministrationHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "medicationID")

	req := &administrationReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v, at := req.validate()
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	administration, err := a.medications.RecordAdministration(r.Context(), &model.AdministrationCreate{
		MedicationID:  id,
		ScheduledTime: at,
		Status:        model.AdministrationStatus(req.Status),
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		case errors.Is(err, model.ErrDoseNotScheduled):
			a.badRequestResponse(w, r, err)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("record administration: %w", err))
		}
		return
	}

	resp, _ := mapToAdministrationResp(administration)

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
