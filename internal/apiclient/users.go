package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/careviah/care-scheduler/internal/calendar"
)

type userDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Color     string `json:"color"`
	Photo     string `json:"photo"`
}

// FilteredActors fetches the agency population partitioned by role.
// Every actor starts selected; deselection is purely local state.
func (c *Client) FilteredActors(ctx context.Context, agencyID string) (*calendar.ActorLists, error) {
	resp := &struct {
		CareWorkers []userDTO `json:"careWorkers"`
		OfficeStaff []userDTO `json:"officeStaff"`
		Clients     []userDTO `json:"clients"`
	}{}

	if err := c.do(ctx, http.MethodGet, "/users/filtered", nil, resp); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	return &calendar.ActorLists{
		CareWorkers: mapToActors(resp.CareWorkers),
		OfficeStaff: mapToActors(resp.OfficeStaff),
		Clients:     mapToActors(resp.Clients),
	}, nil
}

func mapToActors(dtos []userDTO) []calendar.Actor {
	actors := make([]calendar.Actor, len(dtos))
	for i, dto := range dtos {
		color := dto.Color
		if color == "" {
			color = calendar.StableColor(dto.ID)
		}

		actors[i] = calendar.Actor{
			ID:        dto.ID,
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Role:      dto.Role,
			Color:     color,
			Avatar:    dto.Photo,
			Selected:  true,
		}
	}

	return actors
}
