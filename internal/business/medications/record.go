package medications

import (
	"context"
	"errors"
	"fmt"

	"github.com/careviah/care-scheduler/internal/model"
)

// RecordAdministration stores the outcome of one dose. Re-recording
// the same dose overwrites the earlier outcome instead of duplicating
// it; the existence check and the write share a transaction. For
// non-PRN medications the scheduled time must be one of the
// medication's dose times.
func (s *Service) RecordAdministration(ctx context.Context, rec *model.AdministrationCreate) (*model.Administration, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	medication, err := s.medicationsRepository.GetMedicationByID(ctx, tx, rec.MedicationID)
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.GetMedicationByID: %w", err)
	}

	if !medication.PRN && !scheduledAt(medication, rec) {
		return nil, model.ErrDoseNotScheduled
	}

	existing, err := s.medicationsRepository.GetAdministration(ctx, tx, rec.MedicationID, rec.ScheduledTime)
	switch {
	case err == nil:
		existing.Status = rec.Status
		existing.Notes = rec.Notes
		if err := s.medicationsRepository.UpdateAdministration(ctx, tx, existing); err != nil {
			return nil, fmt.Errorf("medicationsRepository.UpdateAdministration: %w", err)
		}
	case errors.Is(err, model.ErrNoRecord):
		if _, err := s.medicationsRepository.CreateAdministration(ctx, tx, rec); err != nil {
			return nil, fmt.Errorf("medicationsRepository.CreateAdministration: %w", err)
		}
	default:
		return nil, fmt.Errorf("medicationsRepository.GetAdministration: %w", err)
	}

	stored, err := s.medicationsRepository.GetAdministration(ctx, tx, rec.MedicationID, rec.ScheduledTime)
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.GetAdministration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return stored, nil
}

func scheduledAt(medication *model.Medication, rec *model.AdministrationCreate) bool {
	clock := rec.ScheduledTime.Format(clockFormat)
	for _, t := range medication.Times {
		if t == clock {
			return true
		}
	}
	return false
}
