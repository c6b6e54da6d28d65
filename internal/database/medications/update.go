package medications

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

func (*Repository) UpdateMedication(ctx context.Context, q database.Queryable, medication *model.Medication) error {
	qb := database.PSQL.
		Update(database.MedicationsTable).
		SetMap(map[string]interface{}{
			"name":         medication.Name,
			"dosage":       medication.Dosage,
			"instructions": medication.Instructions,
			"prn":          medication.PRN,
			"times":        medication.Times,
		}).
		Where(sq.Eq{"id": medication.ID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}

func (*Repository) UpdateAdministration(ctx context.Context, q database.Queryable, administration *model.Administration) error {
	qb := database.PSQL.
		Update(database.AdministrationsTable).
		SetMap(map[string]interface{}{
			"status": administration.Status,
			"notes":  administration.Notes,
		}).
		Where(sq.Eq{"id": administration.ID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
