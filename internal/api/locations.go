package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/careviah/care-scheduler/internal/model"
	"github.com/careviah/care-scheduler/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type locationReq struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (req *locationReq) validate() *validator.Validator {
	v := validator.New()

	v.Check(req.Name != "", "name", "name must be provided")
	v.Check(req.Address != "", "address", "address must be provided")

	return v
}

func (a *Api) getLocationsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	locations, err := a.locations.GetAgencyLocations(r.Context(), a.db, user.AgencyID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get locations: %w", err))
		return
	}

	resp, _ := mapSlice(locations, mapToLocationResp)

	if err := a.writeJSON(w, http.StatusOK, map[string]interface{}{"data": resp}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createLocationHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	req := &locationReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if v := req.validate(); !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	id, err := a.locations.CreateLocation(r.Context(), a.db, &model.LocationCreate{
		AgencyID: user.AgencyID,
		Name:     req.Name,
		Address:  req.Address,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create location: %w", err))
		return
	}

	location, err := a.locations.GetLocationByID(r.Context(), a.db, id)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get location: %w", err))
		return
	}

	resp, _ := mapToLocationResp(location)

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateLocationHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	id := chi.URLParam(r, "locationID")

	req := &locationReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if v := req.validate(); !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	err := a.locations.UpdateLocation(r.Context(), a.db, &model.Location{
		ID: id,
		LocationCreate: model.LocationCreate{
			AgencyID: user.AgencyID,
			Name:     req.Name,
			Address:  req.Address,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("update location: %w", err))
		}
		return
	}

	location, err := a.locations.GetLocationByID(r.Context(), a.db, id)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get location: %w", err))
		return
	}

	resp, _ := mapToLocationResp(location)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteLocationHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "locationID")

	if err := a.locations.DeleteLocation(r.Context(), a.db, id); err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		default:
			a.serverErrorResponse(w, r, fmt.Errorf("delete location: %w", err))
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
