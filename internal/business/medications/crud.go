package medications

import (
	"context"
	"fmt"
	"sort"

	"github.com/careviah/care-scheduler/internal/model"
)

func (s *Service) CreateMedication(ctx context.Context, info *model.MedicationCreate) (*model.Medication, error) {
	normalizeTimes(info)

	id, err := s.medicationsRepository.CreateMedication(ctx, s.db, info)
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.CreateMedication: %w", err)
	}

	medication, err := s.medicationsRepository.GetMedicationByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.GetMedicationByID: %w", err)
	}

	return medication, nil
}

func (s *Service) GetMedicationByID(ctx context.Context, id string) (*model.Medication, error) {
	medication, err := s.medicationsRepository.GetMedicationByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.GetMedicationByID: %w", err)
	}

	return medication, nil
}

func (s *Service) GetClientMedications(ctx context.Context, clientID string) ([]*model.Medication, error) {
	medications, err := s.medicationsRepository.GetClientMedications(ctx, s.db, clientID)
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.GetClientMedications: %w", err)
	}

	return medications, nil
}

func (s *Service) UpdateMedication(ctx context.Context, medication *model.Medication) (*model.Medication, error) {
	normalizeTimes(&medication.MedicationCreate)

	if err := s.medicationsRepository.UpdateMedication(ctx, s.db, medication); err != nil {
		return nil, fmt.Errorf("medicationsRepository.UpdateMedication: %w", err)
	}

	updated, err := s.medicationsRepository.GetMedicationByID(ctx, s.db, medication.ID)
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.GetMedicationByID: %w", err)
	}

	return updated, nil
}

// DeleteMedication removes the medication and its administration
// history in one transaction.
func (s *Service) DeleteMedication(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.medicationsRepository.DeleteMedicationAdministrations(ctx, tx, id); err != nil {
		return fmt.Errorf("medicationsRepository.DeleteMedicationAdministrations: %w", err)
	}

	if err := s.medicationsRepository.DeleteMedication(ctx, tx, id); err != nil {
		return fmt.Errorf("medicationsRepository.DeleteMedication: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// normalizeTimes keeps dose times sorted; PRN medications carry none.
func normalizeTimes(info *model.MedicationCreate) {
	if info.PRN {
		info.Times = nil
		return
	}
	sort.Strings(info.Times)
}
