package calculations

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/NMirzabek/PayrollAnalytics/internal/platform/db"
)

// ErrBadReference indicates the referenced employee or organization is gone.
var ErrBadReference = errors.New("calculation references missing row")

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	Create(ctx context.Context, calc Calculation) (int64, error)
	List(ctx context.Context) ([]Calculation, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		repoTx := &repository{db: tx, pool: r.pool}
		return fn(ctx, repoTx)
	})
}

func (r *repository) Create(ctx context.Context, calc Calculation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO calculation_table (employee_id, organization_id, amount, rate, calc_date, calculation_type)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		calc.EmployeeID, calc.OrganizationID, calc.Amount.String(), calc.Rate.String(), calc.Date, string(calc.Kind)).
		Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503 foreign_key_violation: the existence checks raced a delete.
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, ErrBadReference
		}
		return 0, err
	}
	return id, nil
}

func (r *repository) List(ctx context.Context) ([]Calculation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, employee_id, organization_id, amount::text, rate::text, calc_date, calculation_type
		   FROM calculation_table ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calcs := make([]Calculation, 0)
	for rows.Next() {
		var (
			c            Calculation
			amount, rate string
			kind         string
		)
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.OrganizationID, &amount, &rate, &c.Date, &kind); err != nil {
			return nil, err
		}
		if c.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount: %w", err)
		}
		if c.Rate, err = decimal.NewFromString(rate); err != nil {
			return nil, fmt.Errorf("parse rate: %w", err)
		}
		c.Kind = Kind(kind)
		calcs = append(calcs, c)
	}
	return calcs, rows.Err()
}
