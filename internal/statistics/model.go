package statistics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NMirzabek/PayrollAnalytics/internal/calculations"
	"github.com/NMirzabek/PayrollAnalytics/internal/organizations"
)

// Record is one calculation row with its employee, organization and region
// associations already resolved. The reports only ever read these rows.
//
// EmployeeOrgID/EmployeeOrgName describe the organization the employee row
// belongs to; OrganizationID is the organization the calculation was paid
// through. The two can differ and the org-average report labels rows by the
// employee's own organization.
type Record struct {
	ID                int64
	EmployeeID        int64
	EmployeeFirstName string
	EmployeeLastName  string
	Pinfl             string
	EmployeeOrgID     int64
	EmployeeOrgName   string
	OrganizationID    int64
	RegionID          int64
	Amount            decimal.Decimal
	Rate              decimal.Decimal
	Date              time.Time
	Kind              calculations.Kind
}

// FullName returns "first last" as reporting rows display it.
func (r Record) FullName() string {
	return r.EmployeeFirstName + " " + r.EmployeeLastName
}

// RecordStore fetches resolved calculation records for a half-open date
// interval, optionally restricted to one kind. Implementations must return
// records in a stable order so report output is reproducible.
type RecordStore interface {
	ListRange(ctx context.Context, start, end time.Time, kind *calculations.Kind) ([]Record, error)
}

// Hierarchy exposes the single level of organization expansion the
// org-average report needs: the organization itself plus direct children.
type Hierarchy interface {
	Get(ctx context.Context, id int64) (*organizations.Organization, error)
	DirectChildren(ctx context.Context, parentID int64) ([]organizations.Organization, error)
}
