// Package user is the Postgres repository for agency staff and client
// accounts.
package user

import "github.com/careviah/care-scheduler/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"agency_id",
		"first_name",
		"last_name",
		"email",
		"phone_number",
		"role",
		"color",
		"photo",
	).
	From(database.UsersTable)
