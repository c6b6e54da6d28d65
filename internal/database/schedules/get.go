package schedules

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

func (*Repository) GetScheduleByID(ctx context.Context, q database.Queryable, id string) (*model.Schedule, error) {
	qb := baseQuery.
		Where(sq.Eq{"s.id": id})

	var dtos []*scheduleDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return mapToSchedule(dtos[0]), nil
}

func (*Repository) GetSchedules(ctx context.Context, q database.Queryable, filter model.SchedulesFilter) ([]*model.Schedule, error) {
	qb := baseQuery.
		Where(sq.Eq{"s.agency_id": filter.AgencyID}).
		OrderBy("s.date", "s.start_time")

	if !filter.From.IsZero() {
		qb = qb.Where(sq.GtOrEq{"s.date": filter.From})
	}
	if !filter.To.IsZero() {
		qb = qb.Where(sq.Lt{"s.date": filter.To})
	}

	var dtos []*scheduleDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Schedule, len(dtos))
	for i, d := range dtos {
		res[i] = mapToSchedule(d)
	}

	return res, nil
}

// GetOverlapping returns schedules on the given date that share the
// care worker or the client and intersect the half-open wall-clock
// window. excludeID skips the schedule being rescheduled so it never
// conflicts with itself.
func (*Repository) GetOverlapping(ctx context.Context, q database.Queryable, schedule *model.ScheduleCreate, date time.Time, excludeID string) ([]*model.Schedule, error) {
	qb := baseQuery.
		Where(sq.Eq{"s.date": date}).
		Where(sq.Or{
			sq.Eq{"s.user_id": schedule.UserID},
			sq.Eq{"s.client_id": schedule.ClientID},
		}).
		Where(sq.Lt{"s.start_time": schedule.EndTime}).
		Where(sq.Gt{"s.end_time": schedule.StartTime}).
		Where(sq.NotEq{"s.status": model.ScheduleStatusCanceled})

	if excludeID != "" {
		qb = qb.Where(sq.NotEq{"s.id": excludeID})
	}

	var dtos []*scheduleDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Schedule, len(dtos))
	for i, d := range dtos {
		res[i] = mapToSchedule(d)
	}

	return res, nil
}
