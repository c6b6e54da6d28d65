package user

import (
	"github.com/careviah/care-scheduler/internal/model"
)

type userDTO struct {
	ID          string
	AgencyID    string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Role        string
	Color       string
	Photo       string
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID: dto.ID,
		UserCreate: model.UserCreate{
			AgencyID:    dto.AgencyID,
			FirstName:   dto.FirstName,
			LastName:    dto.LastName,
			Email:       dto.Email,
			PhoneNumber: dto.PhoneNumber,
			Role:        model.UserRole(dto.Role),
			Color:       dto.Color,
			Photo:       dto.Photo,
		},
	}
}
