package schedules

import (
	"time"

	"github.com/careviah/care-scheduler/internal/model"
)

type scheduleDTO struct {
	ID         string
	AgencyID   string
	ClientID   string
	UserID     string
	Date       time.Time
	StartTime  string
	EndTime    string
	Type       string
	Status     string
	Notes      string
	ChargeRate float64
	Color      string

	// Joined columns are null when the referenced user is gone.
	ClientFirstName     *string
	ClientLastName      *string
	CareWorkerFirstName *string
	CareWorkerLastName  *string
}

func mapToSchedule(dto *scheduleDTO) *model.Schedule {
	return &model.Schedule{
		ID: dto.ID,
		ScheduleCreate: model.ScheduleCreate{
			AgencyID:   dto.AgencyID,
			ClientID:   dto.ClientID,
			UserID:     dto.UserID,
			Date:       dto.Date,
			StartTime:  dto.StartTime,
			EndTime:    dto.EndTime,
			Type:       model.ScheduleType(dto.Type),
			Status:     model.ScheduleStatus(dto.Status),
			Notes:      dto.Notes,
			ChargeRate: dto.ChargeRate,
			Color:      dto.Color,
		},
		ClientFirstName:     deref(dto.ClientFirstName),
		ClientLastName:      deref(dto.ClientLastName),
		CareWorkerFirstName: deref(dto.CareWorkerFirstName),
		CareWorkerLastName:  deref(dto.CareWorkerLastName),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
