// Package locations is the Postgres repository for agency office
// locations.
package locations

import "github.com/careviah/care-scheduler/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"agency_id",
		"name",
		"address",
	).
	From(database.LocationsTable)
