package statistics

import "github.com/shopspring/decimal"

// OverRateRow reports an employee whose summed rate exceeds 1 for the month.
type OverRateRow struct {
	Pinfl     string          `json:"pinfl"`
	TotalRate decimal.Decimal `json:"total_rate"`
}

// MultiRegionRow reports an employee paid salary from organizations in more
// than one region. OrganizationCount counts distinct organizations, which is
// not the same thing as the region count the emission test uses.
type MultiRegionRow struct {
	Pinfl             string          `json:"pinfl"`
	OrganizationCount int             `json:"organization_count"`
	TotalSalary       decimal.Decimal `json:"total_salary"`
}

// OrgAverageRow reports one employee's average salary for the month. The
// organization fields label the employee's own organization, not the queried
// target.
type OrgAverageRow struct {
	OrganizationID   int64           `json:"organization_id"`
	OrganizationName string          `json:"organization_name"`
	EmployeeID       int64           `json:"employee_id"`
	EmployeeFullName string          `json:"employee_full_name"`
	AverageSalary    decimal.Decimal `json:"average_salary"`
}

// SalaryVacationRow reports an employee who received both salary and
// vacation pay within the month.
type SalaryVacationRow struct {
	EmployeeID     int64           `json:"employee_id"`
	FullName       string          `json:"full_name"`
	Pinfl          string          `json:"pinfl"`
	SalaryAmount   decimal.Decimal `json:"salary_amount"`
	VacationAmount decimal.Decimal `json:"vacation_amount"`
}
