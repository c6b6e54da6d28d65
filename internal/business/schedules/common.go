package schedules

import (
	"context"
	"fmt"

	"github.com/careviah/care-scheduler/internal/calendar"
	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
)

// checkConflicts looks for schedules that double-book the care worker
// or the client on the requested date. It runs on the caller's
// transaction so the check and the write it guards see the same state.
// The returned error names the party already booked so the UI can show
// who blocks the slot.
func (s *Service) checkConflicts(ctx context.Context, q database.Queryable, schedule *model.ScheduleCreate, excludeID string) error {
	overlapping, err := s.schedulesRepository.GetOverlapping(ctx, q, schedule, schedule.Date, excludeID)
	if err != nil {
		return fmt.Errorf("schedulesRepository.GetOverlapping: %w", err)
	}

	if len(overlapping) == 0 {
		return nil
	}

	o := overlapping[0]
	if o.UserID == schedule.UserID {
		return &model.ScheduleConflictError{
			Party: fmt.Sprintf("%s %s", o.CareWorkerFirstName, o.CareWorkerLastName),
			Role:  "care worker",
		}
	}

	return &model.ScheduleConflictError{
		Party: fmt.Sprintf("%s %s", o.ClientFirstName, o.ClientLastName),
		Role:  "client",
	}
}

// applyDefaults fills the fields clients may omit. The color falls
// back to the per-type palette.
func applyDefaults(schedule *model.ScheduleCreate) {
	if schedule.Type == "" {
		schedule.Type = model.ScheduleTypeAppointment
	}
	if schedule.Status == "" {
		schedule.Status = model.ScheduleStatusPending
	}
	if schedule.Color == "" {
		schedule.Color = calendar.ColorFor(schedule.Type)
	}
}
