package schedules

import (
	"context"
	"fmt"

	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
	"github.com/google/uuid"
)

func (*Repository) CreateSchedule(ctx context.Context, q database.Queryable, schedule *model.ScheduleCreate) (string, error) {
	id := uuid.NewString()

	qb := database.PSQL.
		Insert(database.SchedulesTable).
		Columns(
			"id",
			"agency_id",
			"client_id",
			"user_id",
			"date",
			"start_time",
			"end_time",
			"type",
			"status",
			"notes",
			"charge_rate",
			"color",
		).
		Values(
			id,
			schedule.AgencyID,
			schedule.ClientID,
			schedule.UserID,
			schedule.Date,
			schedule.StartTime,
			schedule.EndTime,
			schedule.Type,
			schedule.Status,
			schedule.Notes,
			schedule.ChargeRate,
			schedule.Color,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return "", fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
