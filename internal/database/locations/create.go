package locations

import (
	"context"
	"fmt"

	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
	"github.com/google/uuid"
)

func (*Repository) CreateLocation(ctx context.Context, q database.Queryable, location *model.LocationCreate) (string, error) {
	id := uuid.NewString()

	qb := database.PSQL.
		Insert(database.LocationsTable).
		Columns(
			"id",
			"agency_id",
			"name",
			"address",
		).
		Values(
			id,
			location.AgencyID,
			location.Name,
			location.Address,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return "", fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
