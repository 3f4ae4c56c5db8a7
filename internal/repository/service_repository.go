package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Service is an offering shown on the public site (bridal package, party
// look, ...), not to be confused with the service layer.
type Service struct {
	ID          string
	Title       string
	Description string
	Price       *decimal.Decimal
	ImageURL    string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *Service) error
	FindByID(ctx context.Context, id string) (*Service, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*Service, error)
	Update(ctx context.Context, svc *Service) error
	Delete(ctx context.Context, id string) error
}

type pgServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &pgServiceRepository{pool: pool}
}

const serviceColumns = `id, title, description, price, image_url, sort_order, is_active, created_at, updated_at`

func scanService(row pgx.Row) (*Service, error) {
	s := &Service{}
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.ImageURL,
		&s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *pgServiceRepository) Create(ctx context.Context, svc *Service) error {
	query := `
		INSERT INTO services (title, description, price, image_url, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		svc.Title, svc.Description, svc.Price, svc.ImageURL, svc.SortOrder, svc.IsActive).
		Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
}

func (r *pgServiceRepository) FindByID(ctx context.Context, id string) (*Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	return scanService(r.pool.QueryRow(ctx, query, id))
}

func (r *pgServiceRepository) FindAll(ctx context.Context, activeOnly bool) ([]*Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*Service
	for rows.Next() {
		s := &Service{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.ImageURL,
			&s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *pgServiceRepository) Update(ctx context.Context, svc *Service) error {
	query := `
		UPDATE services
		SET title = $2, description = $3, price = $4, image_url = $5,
		    sort_order = $6, is_active = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query, svc.ID,
		svc.Title, svc.Description, svc.Price, svc.ImageURL, svc.SortOrder, svc.IsActive).
		Scan(&svc.UpdatedAt)
}

func (r *pgServiceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM services WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
