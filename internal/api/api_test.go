package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
	"github.com/careviah/care-scheduler/internal/pkg/oauth"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubDB struct{}

func (stubDB) Exec(ctx context.Context, sqlizer database.Sqlizer) (pgconn.CommandTag, error) {
	return nil, nil
}

func (stubDB) Get(ctx context.Context, dst interface{}, sqlizer database.Sqlizer) error {
	return nil
}

func (stubDB) Select(ctx context.Context, dst interface{}, sqlizer database.Sqlizer) error {
	return nil
}

func (stubDB) ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}

func (stubDB) GetPool(ctx context.Context) *pgxpool.Pool { return nil }

func (stubDB) BeginTx(ctx context.Context, txOptions *pgx.TxOptions) (database.Tx, error) {
	return nil, nil
}

type fakeJWT struct{}

func (fakeJWT) CreateToken(id string) (string, error)   { return "token-" + id, nil }
func (fakeJWT) GetIdFromToken(token string) (string, error) {
	return "user-1", nil
}

type fakeTokenParser struct{}

func (fakeTokenParser) GetInfoGoogle(ctx context.Context, authCode string) (*oauth.GoogleInfo, error) {
	return &oauth.GoogleInfo{Name: "Carol Smith", Email: "carol@example.com"}, nil
}

type fakeRefreshTokens struct{}

func (fakeRefreshTokens) Add(ctx context.Context, session string, id string) error { return nil }
func (fakeRefreshTokens) Get(ctx context.Context, session string) (string, error) {
	return "user-1", nil
}
func (fakeRefreshTokens) Refresh(ctx context.Context, old, new string) error { return nil }
func (fakeRefreshTokens) Delete(ctx context.Context, session string) error   { return nil }

type fakeUsers struct {
	agencyUsers []*model.User
}

func (f *fakeUsers) CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (string, error) {
	return "new-user", nil
}

func (f *fakeUsers) GetUserByEmail(ctx context.Context, q database.Queryable, email string) (*model.User, error) {
	return nil, model.ErrNoRecord
}

func (f *fakeUsers) GetUserByID(ctx context.Context, q database.Queryable, id string) (*model.User, error) {
	return &model.User{
		ID: id,
		UserCreate: model.UserCreate{
			AgencyID:  "agency-1",
			FirstName: "Olive",
			LastName:  "Office",
			Role:      model.UserRoleOfficeStaff,
		},
	}, nil
}

func (f *fakeUsers) GetAgencyUsers(ctx context.Context, q database.Queryable, agencyID string) ([]*model.User, error) {
	return f.agencyUsers, nil
}

type fakeSchedules struct {
	schedules []*model.Schedule
	createErr error
	updateErr error
	deleteErr error

	lastCreate *model.ScheduleCreate
}

func (f *fakeSchedules) CreateSchedule(ctx context.Context, info *model.ScheduleCreate) (*model.Schedule, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastCreate = info
	return &model.Schedule{
		ID:                  "created",
		ScheduleCreate:      *info,
		ClientFirstName:     "Alice",
		CareWorkerFirstName: "Bob",
	}, nil
}

func (f *fakeSchedules) GetScheduleByID(ctx context.Context, id string) (*model.Schedule, error) {
	return nil, model.ErrNoRecord
}

func (f *fakeSchedules) GetSchedules(ctx context.Context, filter model.SchedulesFilter) ([]*model.Schedule, error) {
	return f.schedules, nil
}

func (f *fakeSchedules) UpdateSchedule(ctx context.Context, schedule *model.Schedule) (*model.Schedule, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return schedule, nil
}

func (f *fakeSchedules) DeleteSchedule(ctx context.Context, id string) error {
	return f.deleteErr
}

type fakeMedications struct {
	medications []*model.Medication
	doses       []*model.ScheduledDose
	calendars   []*model.MedicationCalendar
	recordErr   error

	lastCreate *model.MedicationCreate
	lastRecord *model.AdministrationCreate
}

func (f *fakeMedications) CreateMedication(ctx context.Context, info *model.MedicationCreate) (*model.Medication, error) {
	f.lastCreate = info
	return &model.Medication{ID: "created-med", MedicationCreate: *info}, nil
}

func (f *fakeMedications) GetClientMedications(ctx context.Context, clientID string) ([]*model.Medication, error) {
	return f.medications, nil
}

func (f *fakeMedications) UpdateMedication(ctx context.Context, medication *model.Medication) (*model.Medication, error) {
	return medication, nil
}

func (f *fakeMedications) DeleteMedication(ctx context.Context, id string) error {
	return nil
}

func (f *fakeMedications) DailySchedule(ctx context.Context, clientID string, date time.Time) ([]*model.ScheduledDose, error) {
	return f.doses, nil
}

func (f *fakeMedications) MonthCalendar(ctx context.Context, clientID string, month time.Time) ([]*model.MedicationCalendar, error) {
	return f.calendars, nil
}

func (f *fakeMedications) RecordAdministration(ctx context.Context, rec *model.AdministrationCreate) (*model.Administration, error) {
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	f.lastRecord = rec
	return &model.Administration{ID: "rec-1", AdministrationCreate: *rec}, nil
}

type fakeLocations struct {
	locations []*model.Location
	updateErr error

	lastCreate *model.LocationCreate
}

func (f *fakeLocations) CreateLocation(ctx context.Context, q database.Queryable, location *model.LocationCreate) (string, error) {
	f.lastCreate = location
	return "created-loc", nil
}

func (f *fakeLocations) GetLocationByID(ctx context.Context, q database.Queryable, id string) (*model.Location, error) {
	for _, l := range f.locations {
		if l.ID == id {
			return l, nil
		}
	}
	if f.lastCreate != nil && id == "created-loc" {
		return &model.Location{ID: id, LocationCreate: *f.lastCreate}, nil
	}
	return nil, model.ErrNoRecord
}

func (f *fakeLocations) GetAgencyLocations(ctx context.Context, q database.Queryable, agencyID string) ([]*model.Location, error) {
	return f.locations, nil
}

func (f *fakeLocations) UpdateLocation(ctx context.Context, q database.Queryable, location *model.Location) error {
	return f.updateErr
}

func (f *fakeLocations) DeleteLocation(ctx context.Context, q database.Queryable, id string) error {
	return nil
}

func newTestApi(t *testing.T, schedules *fakeSchedules, users *fakeUsers) *Api {
	return newFullTestApi(t, schedules, users, &fakeMedications{}, &fakeLocations{})
}

func newFullTestApi(t *testing.T, schedules *fakeSchedules, users *fakeUsers, medications *fakeMedications, locations *fakeLocations) *Api {
	t.Helper()

	a, err := NewApi(
		zap.NewNop().Sugar(),
		rand.Reader,
		fakeJWT{},
		fakeTokenParser{},
		fakeRefreshTokens{},
		stubDB{},
		users,
		schedules,
		medications,
		locations,
	)
	assert.NoError(t, err)
	return a
}

func authedRequest(method, target string, body []byte) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	r.Header.Set("Authorization", "Bearer some-token")
	return r
}

func testSchedule() *model.Schedule {
	return &model.Schedule{
		ID: "s1",
		ScheduleCreate: model.ScheduleCreate{
			AgencyID:  "agency-1",
			ClientID:  "c1",
			UserID:    "w1",
			Date:      time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00",
			EndTime:   "09:45",
			Type:      model.ScheduleTypeAppointment,
			Status:    model.ScheduleStatusPending,
		},
		ClientFirstName:     "Alice",
		CareWorkerFirstName: "Bob",
	}
}

func TestHealthcheck(t *testing.T) {
	a := newTestApi(t, &fakeSchedules{}, &fakeUsers{})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSchedules_RequiresAuth(t *testing.T) {
	a := newTestApi(t, &fakeSchedules{}, &fakeUsers{})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedules", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSchedules_Envelope(t *testing.T) {
	schedules := &fakeSchedules{schedules: []*model.Schedule{testSchedule()}}
	a := newTestApi(t, schedules, &fakeUsers{})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodGet, "/schedules?startDate=2024-06-09&endDate=2024-06-16", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "s1", resp.Data[0]["id"])
	assert.Equal(t, "Alice with Bob", resp.Data[0]["title"])
	assert.Equal(t, "2024-06-12", resp.Data[0]["date"])
}

func TestCreateSchedule_AgencyFromAuthedUser(t *testing.T) {
	schedules := &fakeSchedules{}
	a := newTestApi(t, schedules, &fakeUsers{})

	body, _ := json.Marshal(map[string]interface{}{
		"client_id":  "c1",
		"user_id":    "w1",
		"date":       "2024-06-12",
		"start_time": "09:00",
		"end_time":   "09:45",
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/schedules", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "agency-1", schedules.lastCreate.AgencyID)
}

func TestCreateSchedule_ValidationErrors(t *testing.T) {
	a := newTestApi(t, &fakeSchedules{}, &fakeUsers{})

	body, _ := json.Marshal(map[string]interface{}{
		"client_id":  "",
		"user_id":    "w1",
		"date":       "2024-06-12",
		"start_time": "9:00",
		"end_time":   "08:00",
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/schedules", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error map[string]string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "client_id")
	assert.Contains(t, resp.Error, "start_time")
}

func TestCreateSchedule_Conflict(t *testing.T) {
	schedules := &fakeSchedules{createErr: &model.ScheduleConflictError{
		Party: "Bob Barnes",
		Role:  "care worker",
	}}
	a := newTestApi(t, schedules, &fakeUsers{})

	body, _ := json.Marshal(map[string]interface{}{
		"client_id":  "c1",
		"user_id":    "w1",
		"date":       "2024-06-12",
		"start_time": "09:00",
		"end_time":   "09:45",
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/schedules", body))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "care worker Bob Barnes is already booked for this time")
}

func TestUpdateSchedule_NotFound(t *testing.T) {
	schedules := &fakeSchedules{updateErr: model.ErrNoRecord}
	a := newTestApi(t, schedules, &fakeUsers{})

	body, _ := json.Marshal(map[string]interface{}{
		"client_id":  "c1",
		"user_id":    "w1",
		"date":       "2024-06-12",
		"start_time": "09:00",
		"end_time":   "09:45",
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPut, "/schedules/ghost", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSchedule(t *testing.T) {
	a := newTestApi(t, &fakeSchedules{}, &fakeUsers{})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodDelete, "/schedules/s1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetFilteredUsers_PartitionedByRole(t *testing.T) {
	users := &fakeUsers{agencyUsers: []*model.User{
		{ID: "w1", UserCreate: model.UserCreate{Role: model.UserRoleCareWorker, FirstName: "Bob"}},
		{ID: "o1", UserCreate: model.UserCreate{Role: model.UserRoleOfficeStaff, FirstName: "Olive"}},
		{ID: "c1", UserCreate: model.UserCreate{Role: model.UserRoleClient, FirstName: "Alice"}},
	}}
	a := newTestApi(t, &fakeSchedules{}, users)

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodGet, "/users/filtered", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CareWorkers []map[string]interface{} `json:"careWorkers"`
		OfficeStaff []map[string]interface{} `json:"officeStaff"`
		Clients     []map[string]interface{} `json:"clients"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.CareWorkers, 1)
	assert.Len(t, resp.OfficeStaff, 1)
	assert.Len(t, resp.Clients, 1)
	assert.Equal(t, "Bob", resp.CareWorkers[0]["first_name"])
}

func TestGetUser(t *testing.T) {
	a := newTestApi(t, &fakeSchedules{}, &fakeUsers{})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodGet, "/user", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Olive")
}

func TestGetMedications_RequiresClientID(t *testing.T) {
	a := newTestApi(t, &fakeSchedules{}, &fakeUsers{})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodGet, "/medications", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMedications_Envelope(t *testing.T) {
	medications := &fakeMedications{medications: []*model.Medication{{
		ID: "m1",
		MedicationCreate: model.MedicationCreate{
			ClientID: "c1",
			Name:     "Aspirin",
			Dosage:   "100mg",
			Times:    []string{"08:00", "20:00"},
		},
	}}}
	a := newFullTestApi(t, &fakeSchedules{}, &fakeUsers{}, medications, &fakeLocations{})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodGet, "/medications?clientId=c1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "m1", resp.Data[0]["id"])
	assert.Equal(t, "Aspirin", resp.Data[0]["name"])
}

func TestCreateMedication_AgencyFromAuthedUser(t *testing.T) {
	medications := &fakeMedications{}
	a := newFullTestApi(t, &fakeSchedules{}, &fakeUsers{}, medications, &fakeLocations{})

	body, _ := json.Marshal(map[string]interface{}{
		"client_id": "c1",
		"name":      "Metformin",
		"dosage":    "500mg",
		"times":     []string{"08:00"},
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/medications", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "agency-1", medications.lastCreate.AgencyID)
}

func TestCreateMedication_Validation(t *testing.T) {
	a := newTestApi(t, &fakeSchedules{}, &fakeUsers{})

	body, _ := json.Marshal(map[string]interface{}{
		"client_id": "c1",
		"times":     []string{"8 o'clock"},
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/medications", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error map[string]string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "name")
	assert.Contains(t, resp.Error, "times")
}

func TestRecordAdministration(t *testing.T) {
	medications := &fakeMedications{}
	a := newFullTestApi(t, &fakeSchedules{}, &fakeUsers{}, medications, &fakeLocations{})

	body, _ := json.Marshal(map[string]interface{}{
		"scheduled_time": "2024-06-12T08:00:00Z",
		"status":         "given",
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/medications/m1/administrations", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "m1", medications.lastRecord.MedicationID)
	assert.Equal(t, model.AdministrationStatusGiven, medications.lastRecord.Status)
}

func TestRecordAdministration_UnknownStatus(t *testing.T) {
	a := newTestApi(t, &fakeSchedules{}, &fakeUsers{})

	body, _ := json.Marshal(map[string]interface{}{
		"scheduled_time": "2024-06-12T08:00:00Z",
		"status":         "maybe",
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/medications/m1/administrations", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRecordAdministration_UnscheduledDose(t *testing.T) {
	medications := &fakeMedications{recordErr: model.ErrDoseNotScheduled}
	a := newFullTestApi(t, &fakeSchedules{}, &fakeUsers{}, medications, &fakeLocations{})

	body, _ := json.Marshal(map[string]interface{}{
		"scheduled_time": "2024-06-12T09:30:00Z",
		"status":         "given",
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/medications/m1/administrations", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordAdministration_UnknownMedication(t *testing.T) {
	medications := &fakeMedications{recordErr: model.ErrNoRecord}
	a := newFullTestApi(t, &fakeSchedules{}, &fakeUsers{}, medications, &fakeLocations{})

	body, _ := json.Marshal(map[string]interface{}{
		"scheduled_time": "2024-06-12T08:00:00Z",
		"status":         "given",
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/medications/ghost/administrations", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMedicationSchedule_Envelope(t *testing.T) {
	medications := &fakeMedications{doses: []*model.ScheduledDose{{
		MedicationID: "m1",
		Name:         "Aspirin",
		Time:         "08:00",
		ScheduledAt:  time.Date(2024, time.June, 12, 8, 0, 0, 0, time.UTC),
		Status:       model.AdministrationStatusPending,
	}}}
	a := newFullTestApi(t, &fakeSchedules{}, &fakeUsers{}, medications, &fakeLocations{})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodGet, "/medications/schedule?clientId=c1&date=2024-06-12", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "pending", resp.Data[0]["status"])
	assert.Equal(t, "2024-06-12T08:00:00Z", resp.Data[0]["scheduled_at"])
}

func TestMedicationCalendar_Envelope(t *testing.T) {
	medications := &fakeMedications{calendars: []*model.MedicationCalendar{{
		MedicationID: "m1",
		Name:         "Aspirin",
		Times:        []string{"08:00"},
		Days: map[int]model.MedicationDayStatus{
			1: model.MedicationDayTaken,
			2: model.MedicationDayNotReported,
		},
	}}}
	a := newFullTestApi(t, &fakeSchedules{}, &fakeUsers{}, medications, &fakeLocations{})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodGet, "/medications/calendar?clientId=c1&month=2024-06", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []struct {
			Days map[string]string `json:"days"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "taken", resp.Data[0].Days["1"])
	assert.Equal(t, "not_reported", resp.Data[0].Days["2"])
}

func TestCreateLocation_AgencyFromAuthedUser(t *testing.T) {
	locations := &fakeLocations{}
	a := newFullTestApi(t, &fakeSchedules{}, &fakeUsers{}, &fakeMedications{}, locations)

	body, _ := json.Marshal(map[string]interface{}{
		"name":    "Main Office",
		"address": "1 High Street",
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/locations", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "agency-1", locations.lastCreate.AgencyID)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Main Office", resp["name"])
}

func TestCreateLocation_Validation(t *testing.T) {
	a := newTestApi(t, &fakeSchedules{}, &fakeUsers{})

	body, _ := json.Marshal(map[string]interface{}{"name": "Main Office"})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPost, "/locations", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetLocations_Envelope(t *testing.T) {
	locations := &fakeLocations{locations: []*model.Location{{
		ID: "l1",
		LocationCreate: model.LocationCreate{
			AgencyID: "agency-1",
			Name:     "Main Office",
			Address:  "1 High Street",
		},
	}}}
	a := newFullTestApi(t, &fakeSchedules{}, &fakeUsers{}, &fakeMedications{}, locations)

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodGet, "/locations", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Main Office", resp.Data[0]["name"])
}

func TestUpdateLocation_NotFound(t *testing.T) {
	locations := &fakeLocations{updateErr: model.ErrNoRecord}
	a := newFullTestApi(t, &fakeSchedules{}, &fakeUsers{}, &fakeMedications{}, locations)

	body, _ := json.Marshal(map[string]interface{}{
		"name":    "Main Office",
		"address": "1 High Street",
	})

	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, authedRequest(http.MethodPut, "/locations/ghost", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
