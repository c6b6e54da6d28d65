package schedules

import (
	"context"
	"fmt"

	"github.com/careviah/care-scheduler/internal/model"
)

// UpdateSchedule rewrites an existing appointment. Like creation, the
// conflict check and the write share a transaction.
func (s *Service) UpdateSchedule(ctx context.Context, schedule *model.Schedule) (*model.Schedule, error) {
	applyDefaults(&schedule.ScheduleCreate)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.checkConflicts(ctx, tx, &schedule.ScheduleCreate, schedule.ID); err != nil {
		return nil, err
	}

	if err := s.schedulesRepository.UpdateSchedule(ctx, tx, schedule); err != nil {
		return nil, fmt.Errorf("schedulesRepository.UpdateSchedule: %w", err)
	}

	updated, err := s.schedulesRepository.GetScheduleByID(ctx, tx, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("schedulesRepository.GetScheduleByID: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return updated, nil
}
