package employees

type CreateEmployeeRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	Pinfl          string `json:"pinfl" validate:"required,len=14,numeric"`
	HireDate       string `json:"hire_date" validate:"required,datetime=2006-01-02"`
	OrganizationID int64  `json:"organization_id" validate:"required,gt=0"`
}
