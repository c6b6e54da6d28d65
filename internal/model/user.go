package model

type UserRole string

const (
	UserRoleCareWorker  UserRole = "CARE_WORKER"
	UserRoleOfficeStaff UserRole = "OFFICE_STAFF"
	UserRoleClient      UserRole = "CLIENT"
)

type UserCreate struct {
	AgencyID    string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Role        UserRole
	Color       string
	Photo       string
}

type User struct {
	ID string
	UserCreate
}
