package api

import (
	"fmt"
	"net/http"

	"github.com/careviah/care-scheduler/internal/model"
)

func (a *Api) getUserHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	resp, _ := mapToUserResp(user)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// getFilteredUsersHandler returns the agency's accounts partitioned by
// role, the shape the sidebar consumes directly.
func (a *Api) getFilteredUsersHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUser)
		return
	}

	users, err := a.users.GetAgencyUsers(r.Context(), a.db, user.AgencyID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get agency users: %w", err))
		return
	}

	resp := &struct {
		CareWorkers []*userResp `json:"careWorkers"`
		OfficeStaff []*userResp `json:"officeStaff"`
		Clients     []*userResp `json:"clients"`
	}{
		CareWorkers: []*userResp{},
		OfficeStaff: []*userResp{},
		Clients:     []*userResp{},
	}

	for _, u := range users {
		mapped, _ := mapToUserResp(u)
		switch u.Role {
		case model.UserRoleCareWorker:
			resp.CareWorkers = append(resp.CareWorkers, mapped)
		case model.UserRoleOfficeStaff:
			resp.OfficeStaff = append(resp.OfficeStaff, mapped)
		case model.UserRoleClient:
			resp.Clients = append(resp.Clients, mapped)
		}
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
