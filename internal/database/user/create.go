package user

import (
	"context"
	"fmt"

	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
	"github.com/google/uuid"
)

func (*Repository) CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (string, error) {
	id := uuid.NewString()

	qb := database.PSQL.
		Insert(database.UsersTable).
		Columns("id", "agency_id", "first_name", "last_name", "email", "phone_number", "role", "color", "photo").
		Values(
			id,
			user.AgencyID,
			user.FirstName,
			user.LastName,
			user.Email,
			user.PhoneNumber,
			user.Role,
			user.Color,
			user.Photo,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return "", fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
