// internal/repository/repositories.go
package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Media kinds for portfolio items
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// UncategorizedName is the sentinel category assigned to portfolio items
// whose category gets deleted.
const UncategorizedName = "Uncategorized"

// Repositories contains all data access repositories
type Repositories struct {
	PortfolioRepo   PortfolioRepository
	CategoryRepo    CategoryRepository
	ServiceRepo     ServiceRepository
	TestimonialRepo TestimonialRepository
	ContactRepo     ContactRepository
}

// NewRepositories creates all repositories backed by the pgx pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		PortfolioRepo:   NewPortfolioRepository(pool),
		CategoryRepo:    NewCategoryRepository(pool),
		ServiceRepo:     NewServiceRepository(pool),
		TestimonialRepo: NewTestimonialRepository(pool),
		ContactRepo:     NewContactRepository(pool),
	}
}
