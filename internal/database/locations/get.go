package locations

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

func (*Repository) GetLocationByID(ctx context.Context, q database.Queryable, id string) (*model.Location, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	var dtos []*locationDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return mapToLocation(dtos[0]), nil
}

func (*Repository) GetAgencyLocations(ctx context.Context, q database.Queryable, agencyID string) ([]*model.Location, error) {
	qb := baseQuery.
		Where(sq.Eq{"agency_id": agencyID}).
		OrderBy("name")

	var dtos []*locationDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Location, len(dtos))
	for i, d := range dtos {
		res[i] = mapToLocation(d)
	}

	return res, nil
}
