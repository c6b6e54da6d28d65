package schedules

import (
	"context"
	"fmt"

	"github.com/careviah/care-scheduler/internal/model"
)

// CreateSchedule persists a new appointment. The conflict check and the
// insert run in one transaction, so two concurrent requests for the
// same slot cannot both pass the check.
func (s *Service) CreateSchedule(ctx context.Context, info *model.ScheduleCreate) (*model.Schedule, error) {
	applyDefaults(info)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.checkConflicts(ctx, tx, info, ""); err != nil {
		return nil, err
	}

	id, err := s.schedulesRepository.CreateSchedule(ctx, tx, info)
	if err != nil {
		return nil, fmt.Errorf("schedulesRepository.CreateSchedule: %w", err)
	}

	schedule, err := s.schedulesRepository.GetScheduleByID(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("schedulesRepository.GetScheduleByID: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return schedule, nil
}
