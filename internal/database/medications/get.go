package medications

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

func (*Repository) GetMedicationByID(ctx context.Context, q database.Queryable, id string) (*model.Medication, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	var dtos []*medicationDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return mapToMedication(dtos[0]), nil
}

func (*Repository) GetClientMedications(ctx context.Context, q database.Queryable, clientID string) ([]*model.Medication, error) {
	qb := baseQuery.
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("name")

	var dtos []*medicationDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Medication, len(dtos))
	for i, d := range dtos {
		res[i] = mapToMedication(d)
	}

	return res, nil
}

// GetAdministration fetches the record for one dose, identified by its
// medication and exact scheduled instant.
func (*Repository) GetAdministration(ctx context.Context, q database.Queryable, medicationID string, scheduledTime time.Time) (*model.Administration, error) {
	qb := administrationsQuery.
		Where(sq.Eq{"a.medication_id": medicationID}).
		Where(sq.Eq{"a.scheduled_time": scheduledTime})

	var dtos []*administrationDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return mapToAdministration(dtos[0]), nil
}

// GetAdministrationsBetween returns a client's administration records
// with scheduled times in the half-open [from, to) window.
func (*Repository) GetAdministrationsBetween(ctx context.Context, q database.Queryable, clientID string, from, to time.Time) ([]*model.Administration, error) {
	qb := administrationsQuery.
		Join(database.MedicationsTable + " m on m.id = a.medication_id").
		Where(sq.Eq{"m.client_id": clientID}).
		Where(sq.GtOrEq{"a.scheduled_time": from}).
		Where(sq.Lt{"a.scheduled_time": to}).
		OrderBy("a.scheduled_time")

	var dtos []*administrationDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Administration, len(dtos))
	for i, d := range dtos {
		res[i] = mapToAdministration(d)
	}

	return res, nil
}
