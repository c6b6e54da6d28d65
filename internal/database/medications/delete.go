package medications

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

func (*Repository) DeleteMedication(ctx context.Context, q database.Queryable, id string) error {
	qb := database.PSQL.
		Delete(database.MedicationsTable).
		Where(sq.Eq{"id": id})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}

// DeleteMedicationAdministrations clears a medication's administration
// history. Zero rows is fine: a medication may never have been
// administered.
func (*Repository) DeleteMedicationAdministrations(ctx context.Context, q database.Queryable, medicationID string) error {
	qb := database.PSQL.
		Delete(database.AdministrationsTable).
		Where(sq.Eq{"medication_id": medicationID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
