// Package medications orchestrates the medication administration
// record: medication CRUD, dose recording and the derived daily run
// sheet and month calendar.
package medications

import (
	"context"
	"time"

	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

// timeNow is swapped in tests to pin "today".
var timeNow = time.Now

type Service struct {
	db                    database.PGX
	medicationsRepository medicationsRepository
}

type medicationsRepository interface {
	CreateMedication(ctx context.Context, q database.Queryable, medication *model.MedicationCreate) (string, error)
	GetMedicationByID(ctx context.Context, q database.Queryable, id string) (*model.Medication, error)
	GetClientMedications(ctx context.Context, q database.Queryable, clientID string) ([]*model.Medication, error)
	UpdateMedication(ctx context.Context, q database.Queryable, medication *model.Medication) error
	DeleteMedication(ctx context.Context, q database.Queryable, id string) error
	DeleteMedicationAdministrations(ctx context.Context, q database.Queryable, medicationID string) error

	CreateAdministration(ctx context.Context, q database.Queryable, administration *model.AdministrationCreate) (string, error)
	GetAdministration(ctx context.Context, q database.Queryable, medicationID string, scheduledTime time.Time) (*model.Administration, error)
	UpdateAdministration(ctx context.Context, q database.Queryable, administration *model.Administration) error
	GetAdministrationsBetween(ctx context.Context, q database.Queryable, clientID string, from, to time.Time) ([]*model.Administration, error)
}

func NewService(db database.PGX, repo medicationsRepository) *Service {
	return &Service{
		db:                    db,
		medicationsRepository: repo,
	}
}
