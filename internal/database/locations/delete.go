package locations

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

func (*Repository) DeleteLocation(ctx context.Context, q database.Queryable, id string) error {
	qb := database.PSQL.
		Delete(database.LocationsTable).
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
