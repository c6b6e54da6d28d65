package schedules

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

func (*Repository) UpdateSchedule(ctx context.Context, q database.Queryable, schedule *model.Schedule) error {
	qb := database.PSQL.
		Update(database.SchedulesTable).
		SetMap(map[string]interface{}{
			"client_id":   schedule.ClientID,
			"user_id":     schedule.UserID,
			"date":        schedule.Date,
			"start_time":  schedule.StartTime,
			"end_time":    schedule.EndTime,
			"type":        schedule.Type,
			"status":      schedule.Status,
			"notes":       schedule.Notes,
			"charge_rate": schedule.ChargeRate,
			"color":       schedule.Color,
		}).
		Where(sq.Eq{"id": schedule.ID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
