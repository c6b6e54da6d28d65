package medications

import (
	"context"
	"fmt"
	"time"

	"github.com/careviah/care-scheduler/internal/model"
)

// MonthCalendar derives a per-day status for each of the client's
// medications over the month containing the given date. A day is taken
// when every scheduled dose was given, not_taken when any dose was
// missed or refused, not_reported when doses were due but nothing was
// recorded, and not_scheduled for future days and medications with no
// fixed times.
func (s *Service) MonthCalendar(ctx context.Context, clientID string, month time.Time) ([]*model.MedicationCalendar, error) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	next := first.AddDate(0, 1, 0)
	days := next.AddDate(0, 0, -1).Day()

	medications, err := s.medicationsRepository.GetClientMedications(ctx, s.db, clientID)
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.GetClientMedications: %w", err)
	}

	recorded, err := s.medicationsRepository.GetAdministrationsBetween(ctx, s.db, clientID, first, next)
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.GetAdministrationsBetween: %w", err)
	}

	byDay := make(map[string]map[int][]*model.Administration)
	for _, rec := range recorded {
		day := rec.ScheduledTime.In(first.Location()).Day()
		if byDay[rec.MedicationID] == nil {
			byDay[rec.MedicationID] = make(map[int][]*model.Administration)
		}
		byDay[rec.MedicationID][day] = append(byDay[rec.MedicationID][day], rec)
	}

	today := startOfDay(timeNow().In(first.Location()))

	res := make([]*model.MedicationCalendar, len(medications))
	for i, med := range medications {
		statuses := make(map[int]model.MedicationDayStatus, days)
		for d := 1; d <= days; d++ {
			statuses[d] = dayStatus(med, byDay[med.ID][d], first.AddDate(0, 0, d-1), today)
		}

		res[i] = &model.MedicationCalendar{
			MedicationID: med.ID,
			Name:         med.Name,
			Dosage:       med.Dosage,
			Times:        med.Times,
			Days:         statuses,
		}
	}

	return res, nil
}

func dayStatus(med *model.Medication, recs []*model.Administration, day, today time.Time) model.MedicationDayStatus {
	if len(recs) == 0 {
		if med.PRN || len(med.Times) == 0 || day.After(today) {
			return model.MedicationDayNotScheduled
		}
		return model.MedicationDayNotReported
	}

	given := 0
	for _, rec := range recs {
		switch rec.Status {
		case model.AdministrationStatusGiven:
			given++
		case model.AdministrationStatusNotGiven, model.AdministrationStatusRefused:
			return model.MedicationDayNotTaken
		}
	}

	if given > 0 && given >= len(med.Times) {
		return model.MedicationDayTaken
	}

	// Some doses recorded, the rest unaccounted for.
	return model.MedicationDayNotReported
}
