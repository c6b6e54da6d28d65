package medications

import (
	"time"

	"github.com/careviah/care-scheduler/internal/model"
)

type medicationDTO struct {
	ID           string
	AgencyID     string
	ClientID     string
	Name         string
	Dosage       string
	Instructions string
	PRN          bool
	Times        []string
}

func mapToMedication(dto *medicationDTO) *model.Medication {
	return &model.Medication{
		ID: dto.ID,
		MedicationCreate: model.MedicationCreate{
			AgencyID:     dto.AgencyID,
			ClientID:     dto.ClientID,
			Name:         dto.Name,
			Dosage:       dto.Dosage,
			Instructions: dto.Instructions,
			PRN:          dto.PRN,
			Times:        dto.Times,
		},
	}
}

type administrationDTO struct {
	ID            string
	MedicationID  string
	ScheduledTime time.Time
	Status        string
	Notes         string
}

func mapToAdministration(dto *administrationDTO) *model.Administration {
	return &model.Administration{
		ID: dto.ID,
		AdministrationCreate: model.AdministrationCreate{
			MedicationID:  dto.MedicationID,
			ScheduledTime: dto.ScheduledTime,
			Status:        model.AdministrationStatus(dto.Status),
			Notes:         dto.Notes,
		},
	}
}
