package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id string) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindAll(ctx context.Context) ([]*Category, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

type pgCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &pgCategoryRepository{pool: pool}
}

func (r *pgCategoryRepository) Create(ctx context.Context, category *Category) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query, category.Name).Scan(&category.ID, &category.CreatedAt)
}

func (r *pgCategoryRepository) FindByID(ctx context.Context, id string) (*Category, error) {
	query := `SELECT id, name, created_at FROM categories WHERE id = $1`
	c := &Category{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *pgCategoryRepository) FindByName(ctx context.Context, name string) (*Category, error) {
	query := `SELECT id, name, created_at FROM categories WHERE name = $1`
	c := &Category{}
	err := r.pool.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *pgCategoryRepository) FindAll(ctx context.Context) ([]*Category, error) {
	query := `SELECT id, name, created_at FROM categories ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *pgCategoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count)
	return count, err
}

func (r *pgCategoryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
