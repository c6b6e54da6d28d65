// Package schedules orchestrates appointment CRUD: closed-set
// validation, double-booking detection and default color assignment on
// top of the schedules repository.
package schedules

import (
	"context"
	"time"

	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

type Service struct {
	db                  database.PGX
	schedulesRepository schedulesRepository
}

type schedulesRepository interface {
	CreateSchedule(ctx context.Context, q database.Queryable, schedule *model.ScheduleCreate) (string, error)
	GetScheduleByID(ctx context.Context, q database.Queryable, id string) (*model.Schedule, error)
	GetSchedules(ctx context.Context, q database.Queryable, filter model.SchedulesFilter) ([]*model.Schedule, error)
	GetOverlapping(ctx context.Context, q database.Queryable, schedule *model.ScheduleCreate, date time.Time, excludeID string) ([]*model.Schedule, error)
	UpdateSchedule(ctx context.Context, q database.Queryable, schedule *model.Schedule) error
	DeleteSchedule(ctx context.Context, q database.Queryable, id string) error
}

func NewService(db database.PGX, repo schedulesRepository) *Service {
	return &Service{
		db:                  db,
		schedulesRepository: repo,
	}
}
