package service

import (
	"context"
	"log"

	"github.com/Marga-Ghale/glam-studio-backend/internal/db"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/google/uuid"
)

// Public testimonial listings are capped at the newest ten.
const testimonialListLimit = 10

// ============================================
// Testimonial Service
// ============================================

type TestimonialService interface {
	List(ctx context.Context) ([]*repository.Testimonial, error)
	GetByID(ctx context.Context, id string) (*repository.Testimonial, error)
	Create(ctx context.Context, t *repository.Testimonial) (*repository.Testimonial, error)
	Update(ctx context.Context, id string, apply func(*repository.Testimonial)) (*repository.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type testimonialService struct {
	repo  repository.TestimonialRepository
	cache *db.RedisDB
}

func NewTestimonialService(repo repository.TestimonialRepository, cache *db.RedisDB) TestimonialService {
	return &testimonialService{repo: repo, cache: cache}
}

func (s *testimonialService) List(ctx context.Context) ([]*repository.Testimonial, error) {
	cacheKey := "testimonials:list"
	var cached []*repository.Testimonial
	if err := s.cache.GetCache(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	testimonials, err := s.repo.FindActive(ctx, testimonialListLimit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCache(ctx, cacheKey, testimonials, listCacheTTL); err != nil {
		log.Printf("[Testimonial] Failed to cache listing: %v", err)
	}
	return testimonials, nil
}

func (s *testimonialService) GetByID(ctx context.Context, id string) (*repository.Testimonial, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *testimonialService) Create(ctx context.Context, t *repository.Testimonial) (*repository.Testimonial, error) {
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return t, nil
}

func (s *testimonialService) Update(ctx context.Context, id string, apply func(*repository.Testimonial)) (*repository.Testimonial, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(t)
	if t.Rating < 1 || t.Rating > 5 {
		return nil, ErrInvalidInput
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return t, nil
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, t.ID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *testimonialService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateCache(ctx, "testimonials:*"); err != nil {
		log.Printf("[Testimonial] Failed to invalidate cache: %v", err)
	}
}
