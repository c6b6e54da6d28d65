// Package medications is the Postgres repository for medication
// records and their administrations.
package medications

import "github.com/careviah/care-scheduler/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"agency_id",
		"client_id",
		"name",
		"dosage",
		"instructions",
		"prn",
		"times",
	).
	From(database.MedicationsTable)

var administrationsQuery = database.PSQL.
	Select(
		"a.id",
		"a.medication_id",
		"a.scheduled_time",
		"a.status",
		"a.notes",
	).
	From(database.AdministrationsTable + " a")
