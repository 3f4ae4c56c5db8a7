package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests.

type fakePortfolioRepo struct {
	mu    sync.Mutex
	items map[string]*repository.PortfolioItem
	clock time.Time
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{
		items: make(map[string]*repository.PortfolioItem),
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakePortfolioRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *fakePortfolioRepo) Create(ctx context.Context, item *repository.PortfolioItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := r.tick()
	item.CreatedAt = now
	item.UpdatedAt = now
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakePortfolioRepo) FindByID(ctx context.Context, id string) (*repository.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *fakePortfolioRepo) FindActive(ctx context.Context, category string) ([]*repository.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*repository.PortfolioItem
	for _, item := range r.items {
		if !item.IsActive {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		cp := *item
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakePortfolioRepo) Update(ctx context.Context, item *repository.PortfolioItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return errors.New("item not found")
	}
	item.UpdatedAt = r.tick()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakePortfolioRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakePortfolioRepo) CountActiveByType(ctx context.Context, mediaType string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, item := range r.items {
		if item.IsActive && item.Type == mediaType {
			count++
		}
	}
	return count, nil
}

func (r *fakePortfolioRepo) FindOldestActiveByType(ctx context.Context, mediaType, excludeID string) (*repository.PortfolioItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var oldest *repository.PortfolioItem
	for _, item := range r.items {
		if !item.IsActive || item.Type != mediaType || item.ID == excludeID {
			continue
		}
		if oldest == nil || item.CreatedAt.Before(oldest.CreatedAt) {
			oldest = item
		}
	}
	if oldest == nil {
		return nil, nil
	}
	cp := *oldest
	return &cp, nil
}

func (r *fakePortfolioRepo) DistinctActiveCategories(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	for _, item := range r.items {
		if item.IsActive {
			seen[item.Category] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *fakePortfolioRepo) ReassignCategory(ctx context.Context, from, to string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.Category == from {
			item.Category = to
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*repository.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*repository.Category)}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *repository.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	category.CreatedAt = time.Now()
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*repository.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *category
	return &cp, nil
}

func (r *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*repository.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, category := range r.categories {
		if category.Name == name {
			cp := *category
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context) ([]*repository.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*repository.Category, 0, len(r.categories))
	for _, category := range r.categories {
		cp := *category
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.categories), nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts map[string]*repository.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*repository.Contact)}
}

func (r *fakeContactRepo) Create(ctx context.Context, c *repository.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.contacts[c.ID] = &cp
	return nil
}

func (r *fakeContactRepo) FindByID(ctx context.Context, id string) (*repository.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contacts[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContactRepo) FindAll(ctx context.Context) ([]*repository.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*repository.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeContactRepo) Update(ctx context.Context, c *repository.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[c.ID]; !ok {
		return errors.New("contact not found")
	}
	c.UpdatedAt = time.Now()
	cp := *c
	r.contacts[c.ID] = &cp
	return nil
}

func (r *fakeContactRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contacts, id)
	return nil
}

// fakeMediaDeleter records delete calls and can be told to fail.
type fakeMediaDeleter struct {
	mu      sync.Mutex
	deleted []string
	err     error
}

func (m *fakeMediaDeleter) Delete(ctx context.Context, publicID, mediaType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, publicID)
	return m.err
}

func (m *fakeMediaDeleter) deletedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

// fakeBroadcaster records events pushed to the admin feed.
type fakeBroadcaster struct {
	mu      sync.Mutex
	created []*repository.Contact
	updated []*repository.Contact
	evicted []*repository.PortfolioItem
}

func (b *fakeBroadcaster) InquiryCreated(contact *repository.Contact) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.created = append(b.created, contact)
}

func (b *fakeBroadcaster) InquiryUpdated(contact *repository.Contact) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updated = append(b.updated, contact)
}

func (b *fakeBroadcaster) PortfolioEvicted(item *repository.PortfolioItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.evicted = append(b.evicted, item)
}
