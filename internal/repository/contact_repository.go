package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Contact statuses
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusBooked    = "booked"
	ContactStatusCompleted = "completed"
)

type Contact struct {
	ID        string
	FullName  string
	Phone     string
	EventDate time.Time
	EventType string
	Message   string
	Status    string
	IsRead    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ContactRepository interface {
	Create(ctx context.Context, c *Contact) error
	FindByID(ctx context.Context, id string) (*Contact, error)
	FindAll(ctx context.Context) ([]*Contact, error)
	Update(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, id string) error
}

type pgContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &pgContactRepository{pool: pool}
}

const contactColumns = `id, full_name, phone, event_date, event_type, message, status, is_read, created_at, updated_at`

func scanContact(row pgx.Row) (*Contact, error) {
	c := &Contact{}
	err := row.Scan(&c.ID, &c.FullName, &c.Phone, &c.EventDate, &c.EventType,
		&c.Message, &c.Status, &c.IsRead, &c.CreatedAt, &c.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *pgContactRepository) Create(ctx context.Context, c *Contact) error {
	query := `
		INSERT INTO contacts (full_name, phone, event_date, event_type, message, status, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		c.FullName, c.Phone, c.EventDate, c.EventType, c.Message, c.Status, c.IsRead).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *pgContactRepository) FindByID(ctx context.Context, id string) (*Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	return scanContact(r.pool.QueryRow(ctx, query, id))
}

func (r *pgContactRepository) FindAll(ctx context.Context) ([]*Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*Contact
	for rows.Next() {
		c := &Contact{}
		if err := rows.Scan(&c.ID, &c.FullName, &c.Phone, &c.EventDate, &c.EventType,
			&c.Message, &c.Status, &c.IsRead, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *pgContactRepository) Update(ctx context.Context, c *Contact) error {
	query := `
		UPDATE contacts
		SET full_name = $2, phone = $3, event_date = $4, event_type = $5,
		    message = $6, status = $7, is_read = $8, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query, c.ID,
		c.FullName, c.Phone, c.EventDate, c.EventType, c.Message, c.Status, c.IsRead).
		Scan(&c.UpdatedAt)
}

func (r *pgContactRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM contacts WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
