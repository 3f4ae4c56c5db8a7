package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTestimonialRepo struct {
	mu           sync.Mutex
	testimonials map[string]*repository.Testimonial
	clock        time.Time
}

func newFakeTestimonialRepo() *fakeTestimonialRepo {
	return &fakeTestimonialRepo{
		testimonials: make(map[string]*repository.Testimonial),
		clock:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeTestimonialRepo) Create(ctx context.Context, t *repository.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	r.clock = r.clock.Add(time.Minute)
	t.CreatedAt = r.clock
	t.UpdatedAt = r.clock
	cp := *t
	r.testimonials[t.ID] = &cp
	return nil
}

func (r *fakeTestimonialRepo) FindByID(ctx context.Context, id string) (*repository.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.testimonials[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTestimonialRepo) FindActive(ctx context.Context, limit int) ([]*repository.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*repository.Testimonial
	for _, t := range r.testimonials {
		if t.IsActive {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTestimonialRepo) Update(ctx context.Context, t *repository.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.testimonials[t.ID] = &cp
	return nil
}

func (r *fakeTestimonialRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.testimonials, id)
	return nil
}

func TestTestimonialListNewestFirstCappedAtTen(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := NewTestimonialService(repo, nil)

	for i := 1; i <= 12; i++ {
		_, err := svc.Create(context.Background(), &repository.Testimonial{
			ClientName: fmt.Sprintf("Client %d", i),
			Review:     "Lovely work!",
			Rating:     5,
			Date:       time.Now(),
			IsActive:   true,
		})
		require.NoError(t, err)
	}
	// Inactive reviews never show up.
	_, err := svc.Create(context.Background(), &repository.Testimonial{
		ClientName: "Hidden",
		Review:     "Pending moderation",
		Rating:     4,
		IsActive:   false,
	})
	require.NoError(t, err)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 10)
	assert.Equal(t, "Client 12", listed[0].ClientName)
	assert.Equal(t, "Client 3", listed[9].ClientName)
}

func TestTestimonialUpdateRejectsBadRating(t *testing.T) {
	repo := newFakeTestimonialRepo()
	svc := NewTestimonialService(repo, nil)

	created, err := svc.Create(context.Background(), &repository.Testimonial{
		ClientName: "Aisha R.",
		Review:     "Flawless bridal look.",
		Rating:     5,
		IsActive:   true,
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, func(tm *repository.Testimonial) {
		tm.Rating = 6
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	updated, err := svc.Update(context.Background(), created.ID, func(tm *repository.Testimonial) {
		tm.Rating = 4
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
}
