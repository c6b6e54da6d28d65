package medications

import (
	"context"
	"fmt"

	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
	"github.com/google/uuid"
)

func (*Repository) CreateMedication(ctx context.Context, q database.Queryable, medication *model.MedicationCreate) (string, error) {
	id := uuid.NewString()

	qb := database.PSQL.
		Insert(database.MedicationsTable).
		Columns(
			"id",
			"agency_id",
			"client_id",
			"name",
			"dosage",
			"instructions",
			"prn",
			"times",
		).
		Values(
			id,
			medication.AgencyID,
			medication.ClientID,
			medication.Name,
			medication.Dosage,
			medication.Instructions,
			medication.PRN,
			medication.Times,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return "", fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

func (*Repository) CreateAdministration(ctx context.Context, q database.Queryable, administration *model.AdministrationCreate) (string, error) {
	id := uuid.NewString()

	qb := database.PSQL.
		Insert(database.AdministrationsTable).
		Columns(
			"id",
			"medication_id",
			"scheduled_time",
			"status",
			"notes",
		).
		Values(
			id,
			administration.MedicationID,
			administration.ScheduledTime,
			administration.Status,
			administration.Notes,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return "", fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
