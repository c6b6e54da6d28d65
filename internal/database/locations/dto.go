package locations

import "github.com/careviah/care-scheduler/internal/model"

type locationDTO struct {
	ID       string
	AgencyID string
	Name     string
	Address  string
}

func mapToLocation(dto *locationDTO) *model.Location {
	return &model.Location{
		ID: dto.ID,
		LocationCreate: model.LocationCreate{
			AgencyID: dto.AgencyID,
			Name:     dto.Name,
			Address:  dto.Address,
		},
	}
}
