package calculations

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind categorizes a payroll calculation row. The set is open: reports must
// not assume it is binary.
type Kind string

const (
	KindSalary   Kind = "SALARY"
	KindVacation Kind = "VACATION"
	KindBonus    Kind = "BONUS"
)

// Valid reports whether the kind is one the service accepts on create.
func (k Kind) Valid() bool {
	switch k {
	case KindSalary, KindVacation, KindBonus:
		return true
	}
	return false
}

// Calculation is one immutable payroll calculation event. Amount is in
// currency minor units precision, rate is a dimensionless allocation
// multiplier; both are exact decimals, never floats.
type Calculation struct {
	ID             int64           `json:"id" db:"id"`
	EmployeeID     int64           `json:"employee_id" db:"employee_id"`
	OrganizationID int64           `json:"organization_id" db:"organization_id"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Rate           decimal.Decimal `json:"rate" db:"rate"`
	Date           time.Time       `json:"date" db:"calc_date"`
	Kind           Kind            `json:"calculation_type" db:"calculation_type"`
}
