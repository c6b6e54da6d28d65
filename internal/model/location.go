package model

type LocationCreate struct {
	AgencyID string
	Name     string
	Address  string
}

type Location struct {
	ID string
	LocationCreate
}
