package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PortfolioItem struct {
	ID          string
	Title       string
	Category    string
	Type        string
	MediaURL    string
	Thumbnail   string
	Description string
	MediaID     string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PortfolioRepository interface {
	Create(ctx context.Context, item *PortfolioItem) error
	FindByID(ctx context.Context, id string) (*PortfolioItem, error)
	FindActive(ctx context.Context, category string) ([]*PortfolioItem, error)
	Update(ctx context.Context, item *PortfolioItem) error
	Delete(ctx context.Context, id string) error
	CountActiveByType(ctx context.Context, mediaType string) (int, error)
	FindOldestActiveByType(ctx context.Context, mediaType, excludeID string) (*PortfolioItem, error)
	DistinctActiveCategories(ctx context.Context) ([]string, error)
	ReassignCategory(ctx context.Context, from, to string) error
}

type pgPortfolioRepository struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepository(pool *pgxpool.Pool) PortfolioRepository {
	return &pgPortfolioRepository{pool: pool}
}

const portfolioColumns = `id, title, category, type, media_url, thumbnail, description, media_id, sort_order, is_active, created_at, updated_at`

func scanPortfolioItem(row pgx.Row) (*PortfolioItem, error) {
	p := &PortfolioItem{}
	err := row.Scan(&p.ID, &p.Title, &p.Category, &p.Type, &p.MediaURL, &p.Thumbnail,
		&p.Description, &p.MediaID, &p.SortOrder, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pgPortfolioRepository) Create(ctx context.Context, item *PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items (title, category, type, media_url, thumbnail, description, media_id, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		item.Title, item.Category, item.Type, item.MediaURL, item.Thumbnail,
		item.Description, item.MediaID, item.SortOrder, item.IsActive).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *pgPortfolioRepository) FindByID(ctx context.Context, id string) (*PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE id = $1`
	return scanPortfolioItem(r.pool.QueryRow(ctx, query, id))
}

func (r *pgPortfolioRepository) FindActive(ctx context.Context, category string) ([]*PortfolioItem, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio_items WHERE is_active = TRUE`
	args := []interface{}{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PortfolioItem
	for rows.Next() {
		p := &PortfolioItem{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Type, &p.MediaURL, &p.Thumbnail,
			&p.Description, &p.MediaID, &p.SortOrder, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *pgPortfolioRepository) Update(ctx context.Context, item *PortfolioItem) error {
	query := `
		UPDATE portfolio_items
		SET title = $2, category = $3, type = $4, media_url = $5, thumbnail = $6,
		    description = $7, media_id = $8, sort_order = $9, is_active = $10, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query, item.ID,
		item.Title, item.Category, item.Type, item.MediaURL, item.Thumbnail,
		item.Description, item.MediaID, item.SortOrder, item.IsActive).
		Scan(&item.UpdatedAt)
}

func (r *pgPortfolioRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM portfolio_items WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *pgPortfolioRepository) CountActiveByType(ctx context.Context, mediaType string) (int, error) {
	query := `SELECT COUNT(*) FROM portfolio_items WHERE type = $1 AND is_active = TRUE`
	var count int
	err := r.pool.QueryRow(ctx, query, mediaType).Scan(&count)
	return count, err
}

func (r *pgPortfolioRepository) FindOldestActiveByType(ctx context.Context, mediaType, excludeID string) (*PortfolioItem, error) {
	query := `
		SELECT ` + portfolioColumns + `
		FROM portfolio_items
		WHERE type = $1 AND is_active = TRUE AND id::text <> $2
		ORDER BY created_at ASC
		LIMIT 1
	`
	return scanPortfolioItem(r.pool.QueryRow(ctx, query, mediaType, excludeID))
}

func (r *pgPortfolioRepository) DistinctActiveCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM portfolio_items WHERE is_active = TRUE ORDER BY category`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *pgPortfolioRepository) ReassignCategory(ctx context.Context, from, to string) error {
	query := `UPDATE portfolio_items SET category = $2, updated_at = now() WHERE category = $1`
	_, err := r.pool.Exec(ctx, query, from, to)
	return err
}
