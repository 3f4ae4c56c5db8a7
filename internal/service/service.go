package service

import (
	"context"
	"errors"

	"github.com/Marga-Ghale/glam-studio-backend/internal/db"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrInvalidInput = errors.New("invalid input")
)

// Broadcaster pushes events to the admin live feed. All methods are
// fire-and-forget.
type Broadcaster interface {
	InquiryCreated(contact *repository.Contact)
	InquiryUpdated(contact *repository.Contact)
	PortfolioEvicted(item *repository.PortfolioItem)
}

// MediaDeleter removes a binary from the external media host.
type MediaDeleter interface {
	Delete(ctx context.Context, publicID, mediaType string) error
}

// InquiryNotifier tells the studio about a new contact inquiry.
type InquiryNotifier interface {
	NotifyNewInquiry(contact *repository.Contact) error
}

// ============================================
// Services Container
// ============================================

type Services struct {
	Portfolio   PortfolioService
	Category    CategoryService
	Catalog     CatalogService
	Testimonial TestimonialService
	Contact     ContactService
	Enforcer    *CapacityEnforcer
}

type Deps struct {
	Repos       *repository.Repositories
	Cache       *db.RedisDB // nil disables caching
	Media       MediaDeleter
	Broadcaster Broadcaster
	Notifier    InquiryNotifier
	VideoLimit  int
	ImageLimit  int
}

func NewServices(deps *Deps) *Services {
	enforcer := NewCapacityEnforcer(deps.Repos.PortfolioRepo, deps.Media, deps.Broadcaster, deps.VideoLimit, deps.ImageLimit)
	return &Services{
		Portfolio:   NewPortfolioService(deps.Repos.PortfolioRepo, enforcer, deps.Cache),
		Category:    NewCategoryService(deps.Repos.CategoryRepo, deps.Repos.PortfolioRepo, deps.Cache),
		Catalog:     NewCatalogService(deps.Repos.ServiceRepo, deps.Cache),
		Testimonial: NewTestimonialService(deps.Repos.TestimonialRepo, deps.Cache),
		Contact:     NewContactService(deps.Repos.ContactRepo, deps.Broadcaster, deps.Notifier),
		Enforcer:    enforcer,
	}
}
