package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Testimonial struct {
	ID          string
	ClientName  string
	Review      string
	Rating      int
	ClientImage string
	EventType   string
	Date        time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TestimonialRepository interface {
	Create(ctx context.Context, t *Testimonial) error
	FindByID(ctx context.Context, id string) (*Testimonial, error)
	FindActive(ctx context.Context, limit int) ([]*Testimonial, error)
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id string) error
}

type pgTestimonialRepository struct {
	pool *pgxpool.Pool
}

func NewTestimonialRepository(pool *pgxpool.Pool) TestimonialRepository {
	return &pgTestimonialRepository{pool: pool}
}

const testimonialColumns = `id, client_name, review, rating, client_image, event_type, date, is_active, created_at, updated_at`

func scanTestimonial(row pgx.Row) (*Testimonial, error) {
	t := &Testimonial{}
	err := row.Scan(&t.ID, &t.ClientName, &t.Review, &t.Rating, &t.ClientImage,
		&t.EventType, &t.Date, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *pgTestimonialRepository) Create(ctx context.Context, t *Testimonial) error {
	query := `
		INSERT INTO testimonials (client_name, review, rating, client_image, event_type, date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		t.ClientName, t.Review, t.Rating, t.ClientImage, t.EventType, t.Date, t.IsActive).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *pgTestimonialRepository) FindByID(ctx context.Context, id string) (*Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`
	return scanTestimonial(r.pool.QueryRow(ctx, query, id))
}

func (r *pgTestimonialRepository) FindActive(ctx context.Context, limit int) ([]*Testimonial, error) {
	query := `
		SELECT ` + testimonialColumns + `
		FROM testimonials
		WHERE is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*Testimonial
	for rows.Next() {
		t := &Testimonial{}
		if err := rows.Scan(&t.ID, &t.ClientName, &t.Review, &t.Rating, &t.ClientImage,
			&t.EventType, &t.Date, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (r *pgTestimonialRepository) Update(ctx context.Context, t *Testimonial) error {
	query := `
		UPDATE testimonials
		SET client_name = $2, review = $3, rating = $4, client_image = $5,
		    event_type = $6, date = $7, is_active = $8, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query, t.ID,
		t.ClientName, t.Review, t.Rating, t.ClientImage, t.EventType, t.Date, t.IsActive).
		Scan(&t.UpdatedAt)
}

func (r *pgTestimonialRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM testimonials WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
