package organizations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the organization does not exist.
var ErrNotFound = errors.New("organization not found")

type Repository interface {
	Get(ctx context.Context, id int64) (*Organization, error)
	List(ctx context.Context) ([]Organization, error)
	Create(ctx context.Context, org Organization) (int64, error)
	DirectChildren(ctx context.Context, parentID int64) ([]Organization, error)
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

func (r *repository) Get(ctx context.Context, id int64) (*Organization, error) {
	var org Organization
	err := r.db.QueryRow(ctx,
		`SELECT id, name, region_id, parent_id FROM organization WHERE id = $1`, id).
		Scan(&org.ID, &org.Name, &org.RegionID, &org.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *repository) List(ctx context.Context) ([]Organization, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, region_id, parent_id FROM organization ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrganizations(rows)
}

func (r *repository) Create(ctx context.Context, org Organization) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO organization (name, region_id, parent_id) VALUES ($1, $2, $3) RETURNING id`,
		org.Name, org.RegionID, org.ParentID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) DirectChildren(ctx context.Context, parentID int64) ([]Organization, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, region_id, parent_id FROM organization WHERE parent_id = $1 ORDER BY id`,
		parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrganizations(rows)
}

func scanOrganizations(rows pgx.Rows) ([]Organization, error) {
	orgs := make([]Organization, 0)
	for rows.Next() {
		var org Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.RegionID, &org.ParentID); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}
