package statistics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/NMirzabek/PayrollAnalytics/internal/calculations"
)

// rateThreshold is the 100% allocation an employee's summed rate must
// strictly exceed to appear in the over-rate report.
var rateThreshold = decimal.NewFromInt(1)

// Service computes the four monthly reports. It holds no state between
// invocations; every call resolves the month, fetches records and reduces
// them in memory, so concurrent requests are independent.
type Service struct {
	store     RecordStore
	hierarchy Hierarchy
}

func NewService(store RecordStore, hierarchy Hierarchy) *Service {
	return &Service{store: store, hierarchy: hierarchy}
}

// OverRate returns employees whose summed rate across all calculation kinds
// is strictly greater than 1 for the month. Grouping is by pinfl: duplicate
// employee rows sharing a pinfl are the same person here.
func (s *Service) OverRate(ctx context.Context, month string) ([]OverRateRow, error) {
	start, end, err := ResolveMonth(month)
	if err != nil {
		return nil, err
	}
	records, err := s.store.ListRange(ctx, start, end, nil)
	if err != nil {
		return nil, fmt.Errorf("over-rate report: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, rec := range records {
		if _, seen := totals[rec.Pinfl]; !seen {
			order = append(order, rec.Pinfl)
		}
		totals[rec.Pinfl] = totals[rec.Pinfl].Add(rec.Rate)
	}

	rows := make([]OverRateRow, 0)
	for _, pinfl := range order {
		if totals[pinfl].GreaterThan(rateThreshold) {
			rows = append(rows, OverRateRow{Pinfl: pinfl, TotalRate: totals[pinfl]})
		}
	}
	return rows, nil
}

// MultiRegion returns employees paid salary from organizations in more than
// one region within the month. The emission test runs on distinct region
// ids, but the reported count is distinct organization ids; two
// organizations in one region keep the row out while still counting as two.
func (s *Service) MultiRegion(ctx context.Context, month string) ([]MultiRegionRow, error) {
	start, end, err := ResolveMonth(month)
	if err != nil {
		return nil, err
	}
	salary := calculations.KindSalary
	records, err := s.store.ListRange(ctx, start, end, &salary)
	if err != nil {
		return nil, fmt.Errorf("multi-region report: %w", err)
	}

	type group struct {
		regions map[int64]struct{}
		orgs    map[int64]struct{}
		total   decimal.Decimal
	}
	groups := make(map[string]*group)
	order := make([]string, 0)
	for _, rec := range records {
		g, seen := groups[rec.Pinfl]
		if !seen {
			g = &group{regions: make(map[int64]struct{}), orgs: make(map[int64]struct{})}
			groups[rec.Pinfl] = g
			order = append(order, rec.Pinfl)
		}
		g.regions[rec.RegionID] = struct{}{}
		g.orgs[rec.OrganizationID] = struct{}{}
		g.total = g.total.Add(rec.Amount)
	}

	rows := make([]MultiRegionRow, 0)
	for _, pinfl := range order {
		g := groups[pinfl]
		if len(g.regions) > 1 {
			rows = append(rows, MultiRegionRow{
				Pinfl:             pinfl,
				OrganizationCount: len(g.orgs),
				TotalSalary:       g.total,
			})
		}
	}
	return rows, nil
}

// OrgAverage returns the mean salary per employee for the target organization
// and its direct children, one hierarchy level only. Unlike the other
// reports, grouping is by employee row identity, not pinfl.
func (s *Service) OrgAverage(ctx context.Context, month string, organizationID int64) ([]OrgAverageRow, error) {
	start, end, err := ResolveMonth(month)
	if err != nil {
		return nil, err
	}

	target, err := s.hierarchy.Get(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("org-average report: %w", err)
	}
	children, err := s.hierarchy.DirectChildren(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("org-average report: %w", err)
	}
	candidates := map[int64]struct{}{target.ID: {}}
	for _, child := range children {
		candidates[child.ID] = struct{}{}
	}

	salary := calculations.KindSalary
	records, err := s.store.ListRange(ctx, start, end, &salary)
	if err != nil {
		return nil, fmt.Errorf("org-average report: %w", err)
	}

	type group struct {
		first Record
		sum   decimal.Decimal
		count int64
	}
	groups := make(map[int64]*group)
	order := make([]int64, 0)
	for _, rec := range records {
		if _, ok := candidates[rec.OrganizationID]; !ok {
			continue
		}
		g, seen := groups[rec.EmployeeID]
		if !seen {
			g = &group{first: rec}
			groups[rec.EmployeeID] = g
			order = append(order, rec.EmployeeID)
		}
		g.sum = g.sum.Add(rec.Amount)
		g.count++
	}

	rows := make([]OrgAverageRow, 0)
	for _, employeeID := range order {
		g := groups[employeeID]
		// Round half-up to 2 fraction digits; decimal.Round rounds the
		// 0.005 midpoint away from zero, which for payroll amounts is
		// exactly half-up.
		avg := g.sum.Div(decimal.NewFromInt(g.count)).Round(2)
		rows = append(rows, OrgAverageRow{
			OrganizationID:   g.first.EmployeeOrgID,
			OrganizationName: g.first.EmployeeOrgName,
			EmployeeID:       employeeID,
			EmployeeFullName: g.first.FullName(),
			AverageSalary:    avg,
		})
	}
	return rows, nil
}

// SalaryVacation returns employees who received both salary and vacation pay
// within the month. Either sum at exactly zero drops the row: partial months
// are excluded by contract, grouping is by employee row identity.
func (s *Service) SalaryVacation(ctx context.Context, month string) ([]SalaryVacationRow, error) {
	start, end, err := ResolveMonth(month)
	if err != nil {
		return nil, err
	}
	records, err := s.store.ListRange(ctx, start, end, nil)
	if err != nil {
		return nil, fmt.Errorf("salary-vacation report: %w", err)
	}

	type group struct {
		first    Record
		salary   decimal.Decimal
		vacation decimal.Decimal
	}
	groups := make(map[int64]*group)
	order := make([]int64, 0)
	for _, rec := range records {
		g, seen := groups[rec.EmployeeID]
		if !seen {
			g = &group{first: rec}
			groups[rec.EmployeeID] = g
			order = append(order, rec.EmployeeID)
		}
		switch rec.Kind {
		case calculations.KindSalary:
			g.salary = g.salary.Add(rec.Amount)
		case calculations.KindVacation:
			g.vacation = g.vacation.Add(rec.Amount)
		}
	}

	rows := make([]SalaryVacationRow, 0)
	for _, employeeID := range order {
		g := groups[employeeID]
		if g.salary.IsPositive() && g.vacation.IsPositive() {
			rows = append(rows, SalaryVacationRow{
				EmployeeID:     employeeID,
				FullName:       g.first.FullName(),
				Pinfl:          g.first.Pinfl,
				SalaryAmount:   g.salary,
				VacationAmount: g.vacation,
			})
		}
	}
	return rows, nil
}
