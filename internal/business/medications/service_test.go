package medications

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/assert"
)

type stubDB struct {
	txs []*stubTx
}

func (*stubDB) Exec(ctx context.Context, sqlizer database.Sqlizer) (pgconn.CommandTag, error) {
	return nil, nil
}

func (*stubDB) Get(ctx context.Context, dst interface{}, sqlizer database.Sqlizer) error {
	return nil
}

func (*stubDB) Select(ctx context.Context, dst interface{}, sqlizer database.Sqlizer) error {
	return nil
}

func (*stubDB) ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}

func (*stubDB) GetPool(ctx context.Context) *pgxpool.Pool { return nil }

func (db *stubDB) BeginTx(ctx context.Context, txOptions *pgx.TxOptions) (database.Tx, error) {
	tx := &stubTx{}
	db.txs = append(db.txs, tx)
	return tx, nil
}

type stubTx struct {
	stubDB
	committed  bool
	rolledBack bool
}

func (t *stubTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeRepo struct {
	meds   map[string]*model.Medication
	admins []*model.Administration
	nextID string

	readQ  database.Queryable
	writeQ database.Queryable
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{meds: map[string]*model.Medication{}, nextID: "generated-id"}
}

func (f *fakeRepo) CreateMedication(ctx context.Context, q database.Queryable, medication *model.MedicationCreate) (string, error) {
	f.meds[f.nextID] = &model.Medication{ID: f.nextID, MedicationCreate: *medication}
	return f.nextID, nil
}

func (f *fakeRepo) GetMedicationByID(ctx context.Context, q database.Queryable, id string) (*model.Medication, error) {
	f.readQ = q
	m, ok := f.meds[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return m, nil
}

func (f *fakeRepo) GetClientMedications(ctx context.Context, q database.Queryable, clientID string) ([]*model.Medication, error) {
	var res []*model.Medication
	for _, m := range f.meds {
		if m.ClientID == clientID {
			res = append(res, m)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (f *fakeRepo) UpdateMedication(ctx context.Context, q database.Queryable, medication *model.Medication) error {
	if _, ok := f.meds[medication.ID]; !ok {
		return model.ErrNoRecord
	}
	f.meds[medication.ID] = medication
	return nil
}

func (f *fakeRepo) DeleteMedication(ctx context.Context, q database.Queryable, id string) error {
	f.writeQ = q
	if _, ok := f.meds[id]; !ok {
		return model.ErrNoRecord
	}
	delete(f.meds, id)
	return nil
}

func (f *fakeRepo) DeleteMedicationAdministrations(ctx context.Context, q database.Queryable, medicationID string) error {
	kept := f.admins[:0]
	for _, a := range f.admins {
		if a.MedicationID != medicationID {
			kept = append(kept, a)
		}
	}
	f.admins = kept
	return nil
}

func (f *fakeRepo) CreateAdministration(ctx context.Context, q database.Queryable, administration *model.AdministrationCreate) (string, error) {
	f.writeQ = q
	id := f.nextID
	f.admins = append(f.admins, &model.Administration{ID: id, AdministrationCreate: *administration})
	return id, nil
}

func (f *fakeRepo) UpdateAdministration(ctx context.Context, q database.Queryable, administration *model.Administration) error {
	f.writeQ = q
	for i, a := range f.admins {
		if a.ID == administration.ID {
			f.admins[i] = administration
			return nil
		}
	}
	return model.ErrNoRecord
}

func (f *fakeRepo) GetAdministration(ctx context.Context, q database.Queryable, medicationID string, scheduledTime time.Time) (*model.Administration, error) {
	for _, a := range f.admins {
		if a.MedicationID == medicationID && a.ScheduledTime.Equal(scheduledTime) {
			return a, nil
		}
	}
	return nil, model.ErrNoRecord
}

func (f *fakeRepo) GetAdministrationsBetween(ctx context.Context, q database.Queryable, clientID string, from, to time.Time) ([]*model.Administration, error) {
	var res []*model.Administration
	for _, a := range f.admins {
		med, ok := f.meds[a.MedicationID]
		if !ok || med.ClientID != clientID {
			continue
		}
		if !a.ScheduledTime.Before(from) && a.ScheduledTime.Before(to) {
			res = append(res, a)
		}
	}
	return res, nil
}

func (f *fakeRepo) addMedication(id, name string, times ...string) *model.Medication {
	m := &model.Medication{
		ID: id,
		MedicationCreate: model.MedicationCreate{
			AgencyID: "agency-1",
			ClientID: "client-1",
			Name:     name,
			Dosage:   "10mg",
			Times:    times,
		},
	}
	f.meds[id] = m
	return m
}

var june12 = time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)

func at(day int, clock string) time.Time {
	t, _ := time.Parse("15:04", clock)
	return time.Date(2024, time.June, day, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func TestCreateMedication_SortsTimes(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(&stubDB{}, repo)

	created, err := s.CreateMedication(context.Background(), &model.MedicationCreate{
		ClientID: "client-1",
		Name:     "Lisinopril",
		Times:    []string{"20:00", "08:00", "12:00"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"08:00", "12:00", "20:00"}, created.Times)
}

func TestCreateMedication_PRNCarriesNoTimes(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(&stubDB{}, repo)

	created, err := s.CreateMedication(context.Background(), &model.MedicationCreate{
		ClientID: "client-1",
		Name:     "Ibuprofen",
		PRN:      true,
		Times:    []string{"08:00"},
	})

	assert.NoError(t, err)
	assert.True(t, created.PRN)
	assert.Empty(t, created.Times)
}

func TestDailySchedule_ExpandsTimesWithPendingDefault(t *testing.T) {
	repo := newFakeRepo()
	repo.addMedication("med-a", "Aspirin", "08:00", "20:00")
	repo.addMedication("med-b", "Metformin", "08:00")
	repo.admins = []*model.Administration{{
		ID: "rec-1",
		AdministrationCreate: model.AdministrationCreate{
			MedicationID:  "med-a",
			ScheduledTime: at(12, "08:00"),
			Status:        model.AdministrationStatusGiven,
		},
	}}
	s := NewService(&stubDB{}, repo)

	doses, err := s.DailySchedule(context.Background(), "client-1", june12)
	assert.NoError(t, err)
	assert.Len(t, doses, 3)

	// Sorted by time, name breaking ties.
	assert.Equal(t, "Aspirin", doses[0].Name)
	assert.Equal(t, "08:00", doses[0].Time)
	assert.Equal(t, model.AdministrationStatusGiven, doses[0].Status)

	assert.Equal(t, "Metformin", doses[1].Name)
	assert.Equal(t, model.AdministrationStatusPending, doses[1].Status)

	assert.Equal(t, "20:00", doses[2].Time)
	assert.Equal(t, model.AdministrationStatusPending, doses[2].Status)
	assert.Equal(t, at(12, "20:00"), doses[2].ScheduledAt)
}

func TestDailySchedule_SkipsPRNMedications(t *testing.T) {
	repo := newFakeRepo()
	prn := repo.addMedication("med-prn", "Ibuprofen")
	prn.PRN = true
	s := NewService(&stubDB{}, repo)

	doses, err := s.DailySchedule(context.Background(), "client-1", june12)
	assert.NoError(t, err)
	assert.Empty(t, doses)
}

func TestRecordAdministration_UnknownMedication(t *testing.T) {
	s := NewService(&stubDB{}, newFakeRepo())

	_, err := s.RecordAdministration(context.Background(), &model.AdministrationCreate{
		MedicationID:  "ghost",
		ScheduledTime: at(12, "08:00"),
		Status:        model.AdministrationStatusGiven,
	})

	assert.ErrorIs(t, err, model.ErrNoRecord)
}

func TestRecordAdministration_RejectsUnscheduledTime(t *testing.T) {
	repo := newFakeRepo()
	repo.addMedication("med-a", "Aspirin", "08:00")
	s := NewService(&stubDB{}, repo)

	_, err := s.RecordAdministration(context.Background(), &model.AdministrationCreate{
		MedicationID:  "med-a",
		ScheduledTime: at(12, "09:30"),
		Status:        model.AdministrationStatusGiven,
	})

	assert.ErrorIs(t, err, model.ErrDoseNotScheduled)
}

func TestRecordAdministration_OverwritesExistingDose(t *testing.T) {
	repo := newFakeRepo()
	repo.addMedication("med-a", "Aspirin", "08:00")
	s := NewService(&stubDB{}, repo)

	first, err := s.RecordAdministration(context.Background(), &model.AdministrationCreate{
		MedicationID:  "med-a",
		ScheduledTime: at(12, "08:00"),
		Status:        model.AdministrationStatusNotGiven,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.AdministrationStatusNotGiven, first.Status)

	second, err := s.RecordAdministration(context.Background(), &model.AdministrationCreate{
		MedicationID:  "med-a",
		ScheduledTime: at(12, "08:00"),
		Status:        model.AdministrationStatusGiven,
	})
	assert.NoError(t, err)

	assert.Equal(t, model.AdministrationStatusGiven, second.Status)
	assert.Len(t, repo.admins, 1)
}

func TestRecordAdministration_CheckAndWriteShareTransaction(t *testing.T) {
	db := &stubDB{}
	repo := newFakeRepo()
	repo.addMedication("med-a", "Aspirin", "08:00")
	s := NewService(db, repo)

	_, err := s.RecordAdministration(context.Background(), &model.AdministrationCreate{
		MedicationID:  "med-a",
		ScheduledTime: at(12, "08:00"),
		Status:        model.AdministrationStatusGiven,
	})
	assert.NoError(t, err)

	assert.Len(t, db.txs, 1)
	tx := db.txs[0]
	assert.Same(t, tx, repo.readQ)
	assert.Same(t, tx, repo.writeQ)
	assert.True(t, tx.committed)
}

func TestRecordAdministration_AllowsPRNAtAnyTime(t *testing.T) {
	repo := newFakeRepo()
	prn := repo.addMedication("med-prn", "Ibuprofen")
	prn.PRN = true
	s := NewService(&stubDB{}, repo)

	rec, err := s.RecordAdministration(context.Background(), &model.AdministrationCreate{
		MedicationID:  "med-prn",
		ScheduledTime: at(12, "14:37"),
		Status:        model.AdministrationStatusGiven,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.AdministrationStatusGiven, rec.Status)
}

func TestMonthCalendar_DayStatuses(t *testing.T) {
	timeNow = func() time.Time { return time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = time.Now }()

	repo := newFakeRepo()
	repo.addMedication("med-a", "Aspirin", "08:00", "20:00")
	repo.admins = []*model.Administration{
		{ID: "r1", AdministrationCreate: model.AdministrationCreate{MedicationID: "med-a", ScheduledTime: at(10, "08:00"), Status: model.AdministrationStatusGiven}},
		{ID: "r2", AdministrationCreate: model.AdministrationCreate{MedicationID: "med-a", ScheduledTime: at(10, "20:00"), Status: model.AdministrationStatusGiven}},
		{ID: "r3", AdministrationCreate: model.AdministrationCreate{MedicationID: "med-a", ScheduledTime: at(11, "08:00"), Status: model.AdministrationStatusRefused}},
		{ID: "r4", AdministrationCreate: model.AdministrationCreate{MedicationID: "med-a", ScheduledTime: at(13, "08:00"), Status: model.AdministrationStatusGiven}},
	}
	s := NewService(&stubDB{}, repo)

	cal, err := s.MonthCalendar(context.Background(), "client-1", june12)
	assert.NoError(t, err)
	assert.Len(t, cal, 1)

	days := cal[0].Days
	assert.Len(t, days, 30)
	assert.Equal(t, model.MedicationDayTaken, days[10])        // both doses given
	assert.Equal(t, model.MedicationDayNotTaken, days[11])     // one refused
	assert.Equal(t, model.MedicationDayNotReported, days[12])  // due, nothing recorded
	assert.Equal(t, model.MedicationDayNotReported, days[13])  // one of two recorded
	assert.Equal(t, model.MedicationDayNotScheduled, days[20]) // future
}

func TestMonthCalendar_PRNMedication(t *testing.T) {
	timeNow = func() time.Time { return time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = time.Now }()

	repo := newFakeRepo()
	prn := repo.addMedication("med-prn", "Ibuprofen")
	prn.PRN = true
	repo.admins = []*model.Administration{
		{ID: "r1", AdministrationCreate: model.AdministrationCreate{MedicationID: "med-prn", ScheduledTime: at(5, "14:00"), Status: model.AdministrationStatusGiven}},
	}
	s := NewService(&stubDB{}, repo)

	cal, err := s.MonthCalendar(context.Background(), "client-1", june12)
	assert.NoError(t, err)

	days := cal[0].Days
	assert.Equal(t, model.MedicationDayTaken, days[5])
	assert.Equal(t, model.MedicationDayNotScheduled, days[6]) // nothing needed
}

func TestDeleteMedication_RemovesHistoryInOneTransaction(t *testing.T) {
	db := &stubDB{}
	repo := newFakeRepo()
	repo.addMedication("med-a", "Aspirin", "08:00")
	repo.admins = []*model.Administration{
		{ID: "r1", AdministrationCreate: model.AdministrationCreate{MedicationID: "med-a", ScheduledTime: at(10, "08:00"), Status: model.AdministrationStatusGiven}},
	}
	s := NewService(db, repo)

	assert.NoError(t, s.DeleteMedication(context.Background(), "med-a"))

	assert.Empty(t, repo.meds)
	assert.Empty(t, repo.admins)
	assert.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].committed)

	assert.ErrorIs(t, s.DeleteMedication(context.Background(), "med-a"), model.ErrNoRecord)
}
