package locations

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

func (*Repository) UpdateLocation(ctx context.Context, q database.Queryable, location *model.Location) error {
	qb := database.PSQL.
		Update(database.LocationsTable).
		SetMap(map[string]interface{}{
			"name":    location.Name,
			"address": location.Address,
		}).
		Where(sq.Eq{"id": location.ID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
