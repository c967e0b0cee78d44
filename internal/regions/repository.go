package regions

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the region does not exist.
var ErrNotFound = errors.New("region not found")

type Repository interface {
	Get(ctx context.Context, id int64) (*Region, error)
	List(ctx context.Context) ([]Region, error)
	Create(ctx context.Context, name string) (int64, error)
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

func (r *repository) Get(ctx context.Context, id int64) (*Region, error) {
	var region Region
	err := r.db.QueryRow(ctx, `SELECT id, name FROM region WHERE id = $1`, id).
		Scan(&region.ID, &region.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &region, nil
}

func (r *repository) List(ctx context.Context) ([]Region, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM region ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regions := make([]Region, 0)
	for rows.Next() {
		var region Region
		if err := rows.Scan(&region.ID, &region.Name); err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

func (r *repository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `INSERT INTO region (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
