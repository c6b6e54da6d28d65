package database

import sq "github.com/Masterminds/squirrel"

// PSQL is the shared statement builder configured for Postgres
// placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	SchedulesTable       = "schedules"
	UsersTable           = "users"
	MedicationsTable     = "medications"
	AdministrationsTable = "medication_administrations"
	LocationsTable       = "locations"
)
