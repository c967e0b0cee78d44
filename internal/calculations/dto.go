package calculations

import "github.com/shopspring/decimal"

type CreateCalculationRequest struct {
	EmployeeID      int64           `json:"employee_id" validate:"required,gt=0"`
	OrganizationID  int64           `json:"organization_id" validate:"required,gt=0"`
	Amount          decimal.Decimal `json:"amount"`
	Rate            decimal.Decimal `json:"rate"`
	Date            string          `json:"date" validate:"required,datetime=2006-01-02"`
	CalculationType string          `json:"calculation_type" validate:"required,oneof=SALARY VACATION BONUS"`
}
