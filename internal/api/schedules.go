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

var errCantRetrieveUser = errors.New("can't retrieve user from context")

type scheduleReq struct {
	ClientID   string  `json:"client_id"`
	UserID     string  `json:"user_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
	ChargeRate float64 `json:"charge_rate"`
	Color      string  `json:"color"`
}

func (req *scheduleReq) validate() (*validator.Validator, time.Time) {
	v := validator.New()

	v.Check(req.ClientID != "", "client_id", "client must be provided")
	v.Check(req.UserID != "", "user_id", "care worker must be provided")
	v.Check(req.Date != "", "date", "date must be provided")
	v.Check(validator.TimeRX.MatchString(req.StartTime), "start_time", "must be a valid HH:MM time")
	v.Check(validator.TimeRX.MatchString(req.EndTime), "end_time", "must be a valid HH:MM time")
	v.Check(req.StartTime < req.EndTime, "end_time", "must be after start time")

	if req.Type != "" {
		v.Check(model.KnownScheduleType(model.ScheduleType(req.Type)), "type", "unknown schedule type")
	}
	if req.Status != "" {
		v.Check(model.KnownScheduleStatus(model.ScheduleStatus(req.Status)), "status", "unknown schedule status")
	}

	date, err := parseDate(req.Date)
	if req.Date != "" && err != nil {
		v.AddError("date", "must be a valid YYYY-MM-DD date")
	}

	return v, date
}

func (req *scheduleReq) toCreate(agencyID string, date time.Time) *model.ScheduleCreate {
	return &model.ScheduleCreate{
		AgencyID:   agencyID,
		ClientID:   req.ClientID,
		UserID:     req.UserID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Type:       model.ScheduleType(req.Type),
		Status:     model.ScheduleStatus(req.Status),
		Notes:      req.Notes,
		ChargeRate: req.ChargeRate,
		Color:      req.Color,
	}
}

func (a *Api) getSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	filter, err := parseSchedulesQuery(r, user.AgencyID)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	schedules, err := a.schedules.GetSchedules(r.Context(), *filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get schedules: %w", err))
		return
	}

	resp, _ := mapSlice(schedules, mapToScheduleResp)

	if err := a.writeJSON(w, http.StatusOK, map[string]interface{}{"data": resp}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createScheduleHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	req := &scheduleReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v, date := req.validate()
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	schedule, err := a.schedules.CreateSchedule(r.Context(), req.toCreate(user.AgencyID, date))
	if err != nil {
		conflict := &model.ScheduleConflictError{}
		switch {
		case errors.As(err, &conflict):
			a.conflictResponse(w, r, conflict)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("create schedule: %w", err))
		}
		return
	}

	resp, _ := mapToScheduleResp(schedule)

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	id := chi.URLParam(r, "scheduleID")

	req := &scheduleReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v, date := req.validate()
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	schedule, err := a.schedules.UpdateSchedule(r.Context(), &model.Schedule{
		ID:             id,
		ScheduleCreate: *req.toCreate(user.AgencyID, date),
	})
	if err != nil {
		conflict := &model.ScheduleConflictError{}
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		case errors.As(err, &conflict):
			a.conflictResponse(w, r, conflict)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("update schedule: %w", err))
		}
		return
	}

	resp, _ := mapToScheduleResp(schedule)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "scheduleID")

	if err := a.schedules.DeleteSchedule(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("delete schedule: %w", err))
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func parseSchedulesQuery(r *http.Request, agencyID string) (*model.SchedulesFilter, error) {
	var err error

	res := &model.SchedulesFilter{AgencyID: agencyID}

	if v := r.URL.Query().Get("startDate"); v != "" {
		res.From, err = parseDate(v)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
	}

	if v := r.URL.Query().Get("endDate"); v != "" {
		res.To, err = parseDate(v)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
	}

	return res, nil
}
