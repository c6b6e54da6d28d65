package schedules

import (
	"context"
	"fmt"
)

func (s *Service) DeleteSchedule(ctx context.Context, id string) error {
	if err := s.schedulesRepository.DeleteSchedule(ctx, s.db, id); err != nil {
		return fmt.Errorf("schedulesRepository.DeleteSchedule: %w", err)
	}

	return nil
}
