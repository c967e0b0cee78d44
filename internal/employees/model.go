package employees

import "time"

// Employee is a person attached to an organization. Pinfl is the national
// personal identifier; it is not unique across rows, duplicate rows for the
// same person can and do exist.
type Employee struct {
	ID             int64     `json:"id" db:"id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Pinfl          string    `json:"pinfl" db:"pinfl"`
	HireDate       time.Time `json:"hire_date" db:"hire_date"`
	OrganizationID int64     `json:"organization_id" db:"organization_id"`
}

// FullName returns the display name used by reporting rows.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
