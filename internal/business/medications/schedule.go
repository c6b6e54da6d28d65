package medications

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/careviah/care-scheduler/internal/model"
)

const clockFormat = "15:04"

// DailySchedule expands a client's medications into the day's run
// sheet: one dose per scheduled time, carrying the recorded outcome or
// pending when nobody has reported on it yet. PRN medications have no
// fixed times and are not expanded.
func (s *Service) DailySchedule(ctx context.Context, clientID string, date time.Time) ([]*model.ScheduledDose, error) {
	day := startOfDay(date)

	medications, err := s.medicationsRepository.GetClientMedications(ctx, s.db, clientID)
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.GetClientMedications: %w", err)
	}

	recorded, err := s.medicationsRepository.GetAdministrationsBetween(ctx, s.db, clientID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("medicationsRepository.GetAdministrationsBetween: %w", err)
	}

	byDose := make(map[string]*model.Administration, len(recorded))
	for _, rec := range recorded {
		byDose[doseKey(rec.MedicationID, rec.ScheduledTime.In(day.Location()))] = rec
	}

	var doses []*model.ScheduledDose
	for _, med := range medications {
		if med.PRN {
			continue
		}

		for _, t := range med.Times {
			at, err := combine(day, t)
			if err != nil {
				return nil, fmt.Errorf("medication %s has invalid time %q", med.ID, t)
			}

			status := model.AdministrationStatusPending
			if rec, ok := byDose[doseKey(med.ID, at)]; ok {
				status = rec.Status
			}

			doses = append(doses, &model.ScheduledDose{
				MedicationID: med.ID,
				Name:         med.Name,
				Dosage:       med.Dosage,
				Instructions: med.Instructions,
				Time:         t,
				ScheduledAt:  at,
				Status:       status,
			})
		}
	}

	sort.Slice(doses, func(i, j int) bool {
		if doses[i].Time != doses[j].Time {
			return doses[i].Time < doses[j].Time
		}
		return doses[i].Name < doses[j].Name
	})

	return doses, nil
}

func doseKey(medicationID string, at time.Time) string {
	return medicationID + "|" + at.Format(clockFormat)
}

func combine(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(clockFormat, clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
