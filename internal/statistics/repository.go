package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/NMirzabek/PayrollAnalytics/internal/calculations"
)

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository returns the pgx-backed RecordStore.
func NewRepository(pool *pgxpool.Pool) RecordStore {
	return &repository{pool: pool}
}

const listRangeQuery = `
SELECT c.id,
       e.id, e.first_name, e.last_name, e.pinfl,
       emp_org.id, emp_org.name,
       c.organization_id, rec_org.region_id,
       c.amount::text, c.rate::text, c.calc_date, c.calculation_type
  FROM calculation_table c
  JOIN employee e ON e.id = c.employee_id
  JOIN organization rec_org ON rec_org.id = c.organization_id
  JOIN organization emp_org ON emp_org.id = e.organization_id
 WHERE c.calc_date >= $1 AND c.calc_date < $2`

func (r *repository) ListRange(ctx context.Context, start, end time.Time, kind *calculations.Kind) ([]Record, error) {
	query := listRangeQuery
	args := []interface{}{start, end}
	if kind != nil {
		query += ` AND c.calculation_type = $3`
		args = append(args, string(*kind))
	}
	// Stable scan order keeps report output identical across runs.
	query += ` ORDER BY c.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("statistics: list records: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var (
			rec          Record
			amount, rate string
			kindText     string
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.EmployeeID, &rec.EmployeeFirstName, &rec.EmployeeLastName, &rec.Pinfl,
			&rec.EmployeeOrgID, &rec.EmployeeOrgName,
			&rec.OrganizationID, &rec.RegionID,
			&amount, &rate, &rec.Date, &kindText,
		); err != nil {
			return nil, fmt.Errorf("statistics: scan record: %w", err)
		}
		if rec.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("statistics: parse amount: %w", err)
		}
		if rec.Rate, err = decimal.NewFromString(rate); err != nil {
			return nil, fmt.Errorf("statistics: parse rate: %w", err)
		}
		rec.Kind = calculations.Kind(kindText)
		records = append(records, rec)
	}
	return records, rows.Err()
}
