package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NMirzabek/PayrollAnalytics/internal/calculations"
	"github.com/NMirzabek/PayrollAnalytics/internal/organizations"
)

type fakeStore struct {
	records []Record
	err     error
}

func (f *fakeStore) ListRange(ctx context.Context, start, end time.Time, kind *calculations.Kind) ([]Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]Record, 0)
	for _, rec := range f.records {
		if rec.Date.Before(start) || !rec.Date.Before(end) {
			continue
		}
		if kind != nil && rec.Kind != *kind {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type fakeHierarchy struct {
	orgs     map[int64]*organizations.Organization
	children map[int64][]organizations.Organization
}

func (f *fakeHierarchy) Get(ctx context.Context, id int64) (*organizations.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return nil, organizations.ErrNotFound
	}
	return org, nil
}

func (f *fakeHierarchy) DirectChildren(ctx context.Context, parentID int64) ([]organizations.Organization, error) {
	return f.children[parentID], nil
}

type recordOpts struct {
	kind   calculations.Kind
	orgID  int64
	region int64
	rate   string
	empOrg int64
}

func makeRecord(id, employeeID int64, pinfl, amount string, day int, opts recordOpts) Record {
	if opts.kind == "" {
		opts.kind = calculations.KindSalary
	}
	if opts.orgID == 0 {
		opts.orgID = 1
	}
	if opts.region == 0 {
		opts.region = 1
	}
	if opts.rate == "" {
		opts.rate = "1"
	}
	if opts.empOrg == 0 {
		opts.empOrg = opts.orgID
	}
	return Record{
		ID:                id,
		EmployeeID:        employeeID,
		EmployeeFirstName: "Emp",
		EmployeeLastName:  "Loyee",
		Pinfl:             pinfl,
		EmployeeOrgID:     opts.empOrg,
		EmployeeOrgName:   "Org",
		OrganizationID:    opts.orgID,
		RegionID:          opts.region,
		Amount:            decimal.RequireFromString(amount),
		Rate:              decimal.RequireFromString(opts.rate),
		Date:              time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		Kind:              opts.kind,
	}
}

func TestOverRateEmitsOnlyStrictlyAboveOne(t *testing.T) {
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{rate: "0.6"}),
		makeRecord(2, 1, "A", "100", 12, recordOpts{rate: "0.5", kind: calculations.KindVacation}),
		makeRecord(3, 2, "B", "100", 5, recordOpts{rate: "0.4"}),
		makeRecord(4, 2, "B", "100", 12, recordOpts{rate: "0.5"}),
	}}
	svc := NewService(store, &fakeHierarchy{})

	rows, err := svc.OverRate(context.Background(), "2024.03")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Pinfl)
	assert.True(t, rows[0].TotalRate.Equal(decimal.RequireFromString("1.1")),
		"total rate = %s", rows[0].TotalRate)
}

func TestOverRateSumExactlyOneIsDropped(t *testing.T) {
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{rate: "0.4"}),
		makeRecord(2, 1, "A", "100", 12, recordOpts{rate: "0.6"}),
	}}
	svc := NewService(store, &fakeHierarchy{})

	rows, err := svc.OverRate(context.Background(), "2024.03")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOverRateGroupsDuplicateEmployeeRowsByPinfl(t *testing.T) {
	// Two distinct employee rows share one pinfl: same person for this report.
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{rate: "0.7"}),
		makeRecord(2, 2, "A", "100", 12, recordOpts{rate: "0.7"}),
	}}
	svc := NewService(store, &fakeHierarchy{})

	rows, err := svc.OverRate(context.Background(), "2024.03")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].TotalRate.Equal(decimal.RequireFromString("1.4")))
}

func TestOverRateMalformedMonth(t *testing.T) {
	svc := NewService(&fakeStore{}, &fakeHierarchy{})
	_, err := svc.OverRate(context.Background(), "2024.13")
	assert.ErrorIs(t, err, ErrMalformedMonth)
}

func TestMultiRegionSingleRegionIsDropped(t *testing.T) {
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{orgID: 1, region: 1}),
		makeRecord(2, 1, "A", "200", 12, recordOpts{orgID: 2, region: 1}),
	}}
	svc := NewService(store, &fakeHierarchy{})

	rows, err := svc.MultiRegion(context.Background(), "2024.03")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMultiRegionCountsOrganizationsNotRegions(t *testing.T) {
	// Three organizations across two regions: the region test passes and the
	// reported count must be 3, not 2.
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{orgID: 1, region: 1}),
		makeRecord(2, 1, "A", "200", 12, recordOpts{orgID: 2, region: 1}),
		makeRecord(3, 1, "A", "300", 20, recordOpts{orgID: 3, region: 2}),
	}}
	svc := NewService(store, &fakeHierarchy{})

	rows, err := svc.MultiRegion(context.Background(), "2024.03")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Pinfl)
	assert.Equal(t, 3, rows[0].OrganizationCount)
	assert.True(t, rows[0].TotalSalary.Equal(decimal.RequireFromString("600")))
}

func TestMultiRegionIgnoresNonSalaryKinds(t *testing.T) {
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{orgID: 1, region: 1}),
		makeRecord(2, 1, "A", "200", 12, recordOpts{orgID: 2, region: 2, kind: calculations.KindVacation}),
	}}
	svc := NewService(store, &fakeHierarchy{})

	rows, err := svc.MultiRegion(context.Background(), "2024.03")
	require.NoError(t, err)
	assert.Empty(t, rows, "vacation record must not make the employee multi-region")
}

func orgHierarchy() *fakeHierarchy {
	parentID := int64(10)
	return &fakeHierarchy{
		orgs: map[int64]*organizations.Organization{
			10: {ID: 10, Name: "Head Office", RegionID: 1},
			11: {ID: 11, Name: "Branch", RegionID: 1, ParentID: &parentID},
		},
		children: map[int64][]organizations.Organization{
			10: {{ID: 11, Name: "Branch", RegionID: 1, ParentID: &parentID}},
		},
	}
}

func TestOrgAverageIncludesDirectChildren(t *testing.T) {
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{orgID: 11}),
		makeRecord(2, 1, "A", "50", 12, recordOpts{orgID: 11}),
	}}
	svc := NewService(store, orgHierarchy())

	rows, err := svc.OrgAverage(context.Background(), "2024.03", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].EmployeeID)
	assert.Equal(t, "Emp Loyee", rows[0].EmployeeFullName)
	assert.True(t, rows[0].AverageSalary.Equal(decimal.RequireFromString("75")),
		"average = %s", rows[0].AverageSalary)
}

func TestOrgAverageRoundsHalfUp(t *testing.T) {
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "10", 5, recordOpts{orgID: 10}),
		makeRecord(2, 1, "A", "10.01", 12, recordOpts{orgID: 10}),
		makeRecord(3, 2, "B", "10", 5, recordOpts{orgID: 10}),
		makeRecord(4, 2, "B", "10", 12, recordOpts{orgID: 10}),
		makeRecord(5, 2, "B", "11", 20, recordOpts{orgID: 10}),
	}}
	svc := NewService(store, orgHierarchy())

	rows, err := svc.OrgAverage(context.Background(), "2024.03", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// (10 + 10.01) / 2 = 10.005, the midpoint rounds up.
	assert.True(t, rows[0].AverageSalary.Equal(decimal.RequireFromString("10.01")),
		"midpoint average = %s", rows[0].AverageSalary)
	// (10 + 10 + 11) / 3 = 10.333... truncates to 10.33.
	assert.True(t, rows[1].AverageSalary.Equal(decimal.RequireFromString("10.33")),
		"repeating average = %s", rows[1].AverageSalary)
}

func TestOrgAverageLabelsRowWithEmployeesOwnOrganization(t *testing.T) {
	// The record is paid through the child branch, but the employee row
	// belongs to a different organization; the row carries the latter.
	rec := makeRecord(1, 1, "A", "100", 5, recordOpts{orgID: 11, empOrg: 42})
	rec.EmployeeOrgName = "Elsewhere"
	svc := NewService(&fakeStore{records: []Record{rec}}, orgHierarchy())

	rows, err := svc.OrgAverage(context.Background(), "2024.03", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(42), rows[0].OrganizationID)
	assert.Equal(t, "Elsewhere", rows[0].OrganizationName)
}

func TestOrgAverageGroupsByEmployeeRowNotPinfl(t *testing.T) {
	// Duplicate rows with the same pinfl stay separate in this report.
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{orgID: 10}),
		makeRecord(2, 2, "A", "50", 12, recordOpts{orgID: 10}),
	}}
	svc := NewService(store, orgHierarchy())

	rows, err := svc.OrgAverage(context.Background(), "2024.03", 10)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestOrgAverageExcludesOrganizationsOutsideCandidateSet(t *testing.T) {
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{orgID: 10}),
		makeRecord(2, 2, "B", "999", 5, recordOpts{orgID: 99}),
	}}
	svc := NewService(store, orgHierarchy())

	rows, err := svc.OrgAverage(context.Background(), "2024.03", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].EmployeeID)
}

func TestOrgAverageUnknownOrganization(t *testing.T) {
	svc := NewService(&fakeStore{}, orgHierarchy())
	_, err := svc.OrgAverage(context.Background(), "2024.03", 404)
	assert.ErrorIs(t, err, organizations.ErrNotFound)
}

func TestSalaryVacationRequiresBothKinds(t *testing.T) {
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{}),
		makeRecord(2, 1, "A", "200", 12, recordOpts{}),
	}}
	svc := NewService(store, &fakeHierarchy{})

	rows, err := svc.SalaryVacation(context.Background(), "2024.03")
	require.NoError(t, err)
	assert.Empty(t, rows, "salary-only month must be excluded")

	store.records = append(store.records,
		makeRecord(3, 1, "A", "40", 20, recordOpts{kind: calculations.KindVacation}))

	rows, err = svc.SalaryVacation(context.Background(), "2024.03")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].EmployeeID)
	assert.Equal(t, "A", rows[0].Pinfl)
	assert.True(t, rows[0].SalaryAmount.Equal(decimal.RequireFromString("300")))
	assert.True(t, rows[0].VacationAmount.Equal(decimal.RequireFromString("40")))
}

func TestSalaryVacationIgnoresOtherKinds(t *testing.T) {
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "A", "100", 5, recordOpts{}),
		makeRecord(2, 1, "A", "500", 12, recordOpts{kind: calculations.KindBonus}),
	}}
	svc := NewService(store, &fakeHierarchy{})

	rows, err := svc.SalaryVacation(context.Background(), "2024.03")
	require.NoError(t, err)
	assert.Empty(t, rows, "bonus must not count toward either sum")
}

func TestReportsExcludeRecordsOutsideMonth(t *testing.T) {
	rec := makeRecord(1, 1, "A", "100", 5, recordOpts{rate: "2"})
	rec.Date = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(&fakeStore{records: []Record{rec}}, &fakeHierarchy{})

	rows, err := svc.OverRate(context.Background(), "2024.03")
	require.NoError(t, err)
	assert.Empty(t, rows, "first day of the next month is outside the interval")
}

func TestReportsAreDeterministic(t *testing.T) {
	store := &fakeStore{records: []Record{
		makeRecord(1, 1, "C", "100", 5, recordOpts{rate: "1.5"}),
		makeRecord(2, 2, "A", "100", 6, recordOpts{rate: "1.5"}),
		makeRecord(3, 3, "B", "100", 7, recordOpts{rate: "1.5"}),
	}}
	svc := NewService(store, &fakeHierarchy{})

	first, err := svc.OverRate(context.Background(), "2024.03")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "A", "B"}, []string{first[0].Pinfl, first[1].Pinfl, first[2].Pinfl},
		"rows follow record scan order")

	for i := 0; i < 10; i++ {
		again, err := svc.OverRate(context.Background(), "2024.03")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestReportsPropagateStoreErrors(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewService(&fakeStore{err: storeErr}, orgHierarchy())

	_, err := svc.OverRate(context.Background(), "2024.03")
	assert.ErrorIs(t, err, storeErr)
	_, err = svc.MultiRegion(context.Background(), "2024.03")
	assert.ErrorIs(t, err, storeErr)
	_, err = svc.OrgAverage(context.Background(), "2024.03", 10)
	assert.ErrorIs(t, err, storeErr)
	_, err = svc.SalaryVacation(context.Background(), "2024.03")
	assert.ErrorIs(t, err, storeErr)
}
