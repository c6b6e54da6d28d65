// Package schedules is the Postgres repository for appointment records.
package schedules

import "github.com/careviah/care-scheduler/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// Client and care worker names ride along on every read so callers can
// derive display titles without extra lookups.
var baseQuery = database.PSQL.
	Select(
		"s.id",
		"s.agency_id",
		"s.client_id",
		"s.user_id",
		"s.date",
		"s.start_time",
		"s.end_time",
		"s.type",
		"s.status",
		"s.notes",
		"s.charge_rate",
		"s.color",
		"c.first_name as client_first_name",
		"c.last_name as client_last_name",
		"w.first_name as care_worker_first_name",
		"w.last_name as care_worker_last_name",
	).
	From(database.SchedulesTable + " s").
	LeftJoin(database.UsersTable + " c on c.id = s.client_id").
	LeftJoin(database.UsersTable + " w on w.id = s.user_id")
