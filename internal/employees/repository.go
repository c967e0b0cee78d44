package employees

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the employee does not exist.
var ErrNotFound = errors.New("employee not found")

type Repository interface {
	Get(ctx context.Context, id int64) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, employee Employee) (int64, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) Get(ctx context.Context, id int64) (*Employee, error) {
	var e Employee
	err := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, pinfl, hire_date, organization_id
		   FROM employee WHERE id = $1`, id).
		Scan(&e.ID, &e.FirstName, &e.LastName, &e.Pinfl, &e.HireDate, &e.OrganizationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, first_name, last_name, pinfl, hire_date, organization_id
		   FROM employee ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]Employee, 0)
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Pinfl, &e.HireDate, &e.OrganizationID); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *repository) Create(ctx context.Context, employee Employee) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO employee (first_name, last_name, pinfl, hire_date, organization_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		employee.FirstName, employee.LastName, employee.Pinfl, employee.HireDate, employee.OrganizationID).
		Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
