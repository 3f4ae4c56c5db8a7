package service

import (
	"context"
	"log"

	"github.com/Marga-Ghale/glam-studio-backend/internal/db"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/google/uuid"
)

// ============================================
// Catalog Service (the makeup services shown on the site)
// ============================================

type CatalogService interface {
	List(ctx context.Context) ([]*repository.Service, error)
	GetByID(ctx context.Context, id string) (*repository.Service, error)
	Create(ctx context.Context, svc *repository.Service) (*repository.Service, error)
	Update(ctx context.Context, id string, apply func(*repository.Service)) (*repository.Service, error)
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	repo  repository.ServiceRepository
	cache *db.RedisDB
}

func NewCatalogService(repo repository.ServiceRepository, cache *db.RedisDB) CatalogService {
	return &catalogService{repo: repo, cache: cache}
}

func (s *catalogService) List(ctx context.Context) ([]*repository.Service, error) {
	cacheKey := "services:list"
	var cached []*repository.Service
	if err := s.cache.GetCache(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	services, err := s.repo.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCache(ctx, cacheKey, services, listCacheTTL); err != nil {
		log.Printf("[Catalog] Failed to cache listing: %v", err)
	}
	return services, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*repository.Service, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *catalogService) Create(ctx context.Context, svc *repository.Service) (*repository.Service, error) {
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, id string, apply func(*repository.Service)) (*repository.Service, error) {
	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(svc)

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return svc, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, svc.ID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateCache(ctx, "services:*"); err != nil {
		log.Printf("[Catalog] Failed to invalidate cache: %v", err)
	}
}
