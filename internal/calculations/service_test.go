package calculations

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NMirzabek/PayrollAnalytics/internal/employees"
	"github.com/NMirzabek/PayrollAnalytics/internal/organizations"
)

type mockRepository struct {
	calcs   map[int64]Calculation
	nextID  int64
	txCalls int
}

func newMockRepository() *mockRepository {
	return &mockRepository{calcs: make(map[int64]Calculation), nextID: 1}
}

func (m *mockRepository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	m.txCalls++
	return fn(ctx, m)
}

func (m *mockRepository) Create(ctx context.Context, calc Calculation) (int64, error) {
	id := m.nextID
	m.nextID++
	calc.ID = id
	m.calcs[id] = calc
	return id, nil
}

func (m *mockRepository) List(ctx context.Context) ([]Calculation, error) {
	out := make([]Calculation, 0, len(m.calcs))
	for id := int64(1); id < m.nextID; id++ {
		out = append(out, m.calcs[id])
	}
	return out, nil
}

type mockEmployeeStore struct {
	employees map[int64]*employees.Employee
}

func (m *mockEmployeeStore) Get(ctx context.Context, id int64) (*employees.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, employees.ErrNotFound
	}
	return e, nil
}

type mockOrgStore struct {
	orgs map[int64]*organizations.Organization
}

func (m *mockOrgStore) Get(ctx context.Context, id int64) (*organizations.Organization, error) {
	o, ok := m.orgs[id]
	if !ok {
		return nil, organizations.ErrNotFound
	}
	return o, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo,
		&mockEmployeeStore{employees: map[int64]*employees.Employee{
			1: {ID: 1, FirstName: "Ada", LastName: "Karimova", Pinfl: "12345678901234", OrganizationID: 1},
		}},
		&mockOrgStore{orgs: map[int64]*organizations.Organization{
			1: {ID: 1, Name: "Head Office", RegionID: 1},
		}},
	)
}

func validRequest() CreateCalculationRequest {
	return CreateCalculationRequest{
		EmployeeID:      1,
		OrganizationID:  1,
		Amount:          decimal.RequireFromString("1500.50"),
		Rate:            decimal.RequireFromString("0.5"),
		Date:            "2024-03-15",
		CalculationType: "SALARY",
	}
}

func TestCreateCalculation(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	calc, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), calc.ID)
	assert.Equal(t, KindSalary, calc.Kind)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), calc.Date)
	assert.True(t, calc.Amount.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, 1, repo.txCalls, "create runs inside a transaction")
}

func TestCreateCalculationUnknownEmployee(t *testing.T) {
	svc := newTestService(newMockRepository())

	req := validRequest()
	req.EmployeeID = 99
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employees.ErrNotFound)
}

func TestCreateCalculationUnknownOrganization(t *testing.T) {
	svc := newTestService(newMockRepository())

	req := validRequest()
	req.OrganizationID = 99
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, organizations.ErrNotFound)
}

func TestCreateCalculationRejectsNonPositiveAmounts(t *testing.T) {
	svc := newTestService(newMockRepository())

	req := validRequest()
	req.Amount = decimal.Zero
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	req = validRequest()
	req.Rate = decimal.RequireFromString("-0.5")
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreateCalculationBadDate(t *testing.T) {
	svc := newTestService(newMockRepository())

	req := validRequest()
	req.Date = "15.03.2024"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestKindValid(t *testing.T) {
	assert.True(t, KindSalary.Valid())
	assert.True(t, KindVacation.Valid())
	assert.True(t, KindBonus.Valid())
	assert.False(t, Kind("OVERTIME").Valid())
}
