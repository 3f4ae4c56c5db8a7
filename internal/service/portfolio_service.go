package service

import (
	"context"
	"log"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/db"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/google/uuid"
)

const listCacheTTL = 5 * time.Minute

// ============================================
// Portfolio Service
// ============================================

// UpdatePortfolioInput carries a partial update; nil fields keep their value.
type UpdatePortfolioInput struct {
	Title       *string
	Category    *string
	Type        *string
	MediaURL    *string
	Thumbnail   *string
	Description *string
	MediaID     *string
	SortOrder   *int
	IsActive    *bool
}

type PortfolioService interface {
	List(ctx context.Context, category string) ([]*repository.PortfolioItem, error)
	GetByID(ctx context.Context, id string) (*repository.PortfolioItem, error)
	Create(ctx context.Context, item *repository.PortfolioItem) (*repository.PortfolioItem, error)
	Update(ctx context.Context, id string, in UpdatePortfolioInput) (*repository.PortfolioItem, error)
	Delete(ctx context.Context, id string) error
}

type portfolioService struct {
	repo     repository.PortfolioRepository
	enforcer *CapacityEnforcer
	cache    *db.RedisDB
}

func NewPortfolioService(repo repository.PortfolioRepository, enforcer *CapacityEnforcer, cache *db.RedisDB) PortfolioService {
	return &portfolioService{repo: repo, enforcer: enforcer, cache: cache}
}

func (s *portfolioService) List(ctx context.Context, category string) ([]*repository.PortfolioItem, error) {
	// "All" means no filter, same as no category at all
	if category == "All" {
		category = ""
	}

	cacheKey := "portfolio:list:" + category
	var cached []*repository.PortfolioItem
	if err := s.cache.GetCache(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	items, err := s.repo.FindActive(ctx, category)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCache(ctx, cacheKey, items, listCacheTTL); err != nil {
		log.Printf("[Portfolio] Failed to cache listing: %v", err)
	}
	return items, nil
}

func (s *portfolioService) GetByID(ctx context.Context, id string) (*repository.PortfolioItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *portfolioService) Create(ctx context.Context, item *repository.PortfolioItem) (*repository.PortfolioItem, error) {
	if item.Category == "" {
		item.Category = "Other"
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	// Capacity check runs after the write succeeds and never fails it.
	if item.IsActive {
		s.enforcer.Enforce(ctx, item.Type, item.ID)
	}
	return item, nil
}

func (s *portfolioService) Update(ctx context.Context, id string, in UpdatePortfolioInput) (*repository.PortfolioItem, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		item.Title = *in.Title
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.MediaURL != nil {
		item.MediaURL = *in.MediaURL
	}
	if in.Thumbnail != nil {
		item.Thumbnail = *in.Thumbnail
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.MediaID != nil {
		item.MediaID = *in.MediaID
	}
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	// type or isActive may have changed, re-check the affected kind
	if item.IsActive {
		s.enforcer.Enforce(ctx, item.Type, item.ID)
	}
	return item, nil
}

func (s *portfolioService) Delete(ctx context.Context, id string) error {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, item.ID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *portfolioService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateCache(ctx, "portfolio:*"); err != nil {
		log.Printf("[Portfolio] Failed to invalidate cache: %v", err)
	}
}
