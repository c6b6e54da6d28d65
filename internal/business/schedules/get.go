package schedules

import (
	"context"
	"fmt"

	"github.com/careviah/care-scheduler/internal/model"
)

func (s *Service) GetScheduleByID(ctx context.Context, id string) (*model.Schedule, error) {
	schedule, err := s.schedulesRepository.GetScheduleByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("schedulesRepository.GetScheduleByID: %w", err)
	}

	return schedule, nil
}

func (s *Service) GetSchedules(ctx context.Context, filter model.SchedulesFilter) ([]*model.Schedule, error) {
	schedules, err := s.schedulesRepository.GetSchedules(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("schedulesRepository.GetSchedules: %w", err)
	}

	return schedules, nil
}
