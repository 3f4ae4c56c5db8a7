package service

import (
	"context"
	"log"
	"strings"

	"github.com/Marga-Ghale/glam-studio-backend/internal/db"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/google/uuid"
)

// ============================================
// Category Service
// ============================================

type CategoryService interface {
	// List prefers the explicit categories table; when it is empty the
	// categories are derived from active portfolio items.
	List(ctx context.Context) ([]*repository.Category, error)
	Create(ctx context.Context, name string) (*repository.Category, error)
	// Delete accepts a category id or, failing that, a category name.
	// Portfolio items referencing the deleted category are reassigned to
	// the Uncategorized sentinel, never deleted.
	Delete(ctx context.Context, idOrName string) error
}

type categoryService struct {
	categoryRepo  repository.CategoryRepository
	portfolioRepo repository.PortfolioRepository
	cache         *db.RedisDB
}

func NewCategoryService(categoryRepo repository.CategoryRepository, portfolioRepo repository.PortfolioRepository, cache *db.RedisDB) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, portfolioRepo: portfolioRepo, cache: cache}
}

func (s *categoryService) List(ctx context.Context) ([]*repository.Category, error) {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return s.categoryRepo.FindAll(ctx)
	}

	names, err := s.portfolioRepo.DistinctActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]*repository.Category, len(names))
	for i, name := range names {
		categories[i] = &repository.Category{Name: name}
	}
	return categories, nil
}

func (s *categoryService) Create(ctx context.Context, name string) (*repository.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	category := &repository.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, idOrName string) error {
	var category *repository.Category
	var err error

	if _, parseErr := uuid.Parse(idOrName); parseErr == nil {
		category, err = s.categoryRepo.FindByID(ctx, idOrName)
		if err != nil {
			return err
		}
	}
	if category == nil {
		category, err = s.categoryRepo.FindByName(ctx, idOrName)
		if err != nil {
			return err
		}
	}
	if category == nil {
		return ErrNotFound
	}

	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		return err
	}

	if err := s.portfolioRepo.ReassignCategory(ctx, category.Name, repository.UncategorizedName); err != nil {
		return err
	}

	if err := s.cache.InvalidateCache(ctx, "portfolio:*"); err != nil {
		log.Printf("[Category] Failed to invalidate cache: %v", err)
	}
	return nil
}
