package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/api/handlers"
	"github.com/Marga-Ghale/glam-studio-backend/internal/auth"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/Marga-Ghale/glam-studio-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

// stubVerifier accepts exactly one token and can simulate a provider outage.
type stubVerifier struct{}

func (stubVerifier) Verify(ctx context.Context, token string) (*auth.Principal, error) {
	switch token {
	case validToken:
		return &auth.Principal{UID: "admin-uid", Email: "admin@example.com"}, nil
	case "outage":
		return nil, errors.New("cert endpoint unreachable")
	default:
		return nil, auth.ErrInvalidToken
	}
}

// In-memory service stubs, just enough behavior for routing tests.

type stubPortfolioService struct {
	items map[string]*repository.PortfolioItem
}

func (s *stubPortfolioService) List(ctx context.Context, category string) ([]*repository.PortfolioItem, error) {
	var out []*repository.PortfolioItem
	for _, item := range s.items {
		if category != "" && category != "All" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *stubPortfolioService) GetByID(ctx context.Context, id string) (*repository.PortfolioItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return item, nil
}

func (s *stubPortfolioService) Create(ctx context.Context, item *repository.PortfolioItem) (*repository.PortfolioItem, error) {
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	s.items[item.ID] = item
	return item, nil
}

func (s *stubPortfolioService) Update(ctx context.Context, id string, in service.UpdatePortfolioInput) (*repository.PortfolioItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	if in.Title != nil {
		item.Title = *in.Title
	}
	return item, nil
}

func (s *stubPortfolioService) Delete(ctx context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return service.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type stubCategoryService struct {
	names map[string]bool
}

func (s *stubCategoryService) List(ctx context.Context) ([]*repository.Category, error) {
	var out []*repository.Category
	for name := range s.names {
		out = append(out, &repository.Category{ID: uuid.New().String(), Name: name})
	}
	return out, nil
}

func (s *stubCategoryService) Create(ctx context.Context, name string) (*repository.Category, error) {
	if s.names[name] {
		return nil, service.ErrConflict
	}
	s.names[name] = true
	return &repository.Category{ID: uuid.New().String(), Name: name}, nil
}

func (s *stubCategoryService) Delete(ctx context.Context, idOrName string) error {
	if !s.names[idOrName] {
		return service.ErrNotFound
	}
	delete(s.names, idOrName)
	return nil
}

type stubCatalogService struct{}

func (stubCatalogService) List(ctx context.Context) ([]*repository.Service, error) {
	return []*repository.Service{{ID: uuid.New().String(), Title: "Bridal Makeup", IsActive: true}}, nil
}
func (stubCatalogService) GetByID(ctx context.Context, id string) (*repository.Service, error) {
	return nil, service.ErrNotFound
}
func (stubCatalogService) Create(ctx context.Context, svc *repository.Service) (*repository.Service, error) {
	svc.ID = uuid.New().String()
	return svc, nil
}
func (stubCatalogService) Update(ctx context.Context, id string, apply func(*repository.Service)) (*repository.Service, error) {
	return nil, service.ErrNotFound
}
func (stubCatalogService) Delete(ctx context.Context, id string) error {
	return service.ErrNotFound
}

type stubTestimonialService struct{}

func (stubTestimonialService) List(ctx context.Context) ([]*repository.Testimonial, error) {
	return nil, nil
}
func (stubTestimonialService) GetByID(ctx context.Context, id string) (*repository.Testimonial, error) {
	return nil, service.ErrNotFound
}
func (stubTestimonialService) Create(ctx context.Context, t *repository.Testimonial) (*repository.Testimonial, error) {
	t.ID = uuid.New().String()
	return t, nil
}
func (stubTestimonialService) Update(ctx context.Context, id string, apply func(*repository.Testimonial)) (*repository.Testimonial, error) {
	return nil, service.ErrNotFound
}
func (stubTestimonialService) Delete(ctx context.Context, id string) error {
	return service.ErrNotFound
}

type stubContactService struct {
	submitted []*repository.Contact
}

func (s *stubContactService) Submit(ctx context.Context, contact *repository.Contact) (*repository.Contact, error) {
	contact.ID = uuid.New().String()
	contact.Status = repository.ContactStatusNew
	s.submitted = append(s.submitted, contact)
	return contact, nil
}
func (s *stubContactService) List(ctx context.Context) ([]*repository.Contact, error) {
	return s.submitted, nil
}
func (s *stubContactService) GetByID(ctx context.Context, id string) (*repository.Contact, error) {
	return nil, service.ErrNotFound
}
func (s *stubContactService) Update(ctx context.Context, id string, in service.UpdateContactInput) (*repository.Contact, error) {
	return nil, service.ErrNotFound
}
func (s *stubContactService) Delete(ctx context.Context, id string) error {
	return service.ErrNotFound
}

func setupTestServer(t *testing.T) (*httptest.Server, *stubPortfolioService, *stubContactService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	portfolio := &stubPortfolioService{items: make(map[string]*repository.PortfolioItem)}
	contact := &stubContactService{}
	services := &service.Services{
		Portfolio:   portfolio,
		Category:    &stubCategoryService{names: make(map[string]bool)},
		Catalog:     stubCatalogService{},
		Testimonial: stubTestimonialService{},
		Contact:     contact,
	}

	router := NewRouter(RouterConfig{
		Handlers:     handlers.NewHandlers(services, nil),
		Verifier:     stubVerifier{},
		AllowOrigins: []string{"http://localhost:3000"},
		Health: func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		},
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, portfolio, contact
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	server, _, _ := setupTestServer(t)

	for _, path := range []string{"/api/portfolio", "/api/portfolio/categories", "/api/services", "/api/testimonials"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", path)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	server, portfolio, _ := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/portfolio", "", map[string]string{
		"category": "Bridal", "type": "image", "mediaUrl": "https://cdn.example.com/a.jpg",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "No token provided", body["message"])
	assert.Empty(t, portfolio.items, "rejected request must not mutate anything")
}

func TestProtectedRoutesRejectInvalidToken(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/portfolio", "garbage", map[string]string{
		"category": "Bridal", "type": "image", "mediaUrl": "https://cdn.example.com/a.jpg",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Invalid token", body["message"])
}

func TestProtectedRoutesReportVerifierOutage(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/portfolio", "outage", map[string]string{
		"category": "Bridal", "type": "image", "mediaUrl": "https://cdn.example.com/a.jpg",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestPortfolioCreateAndGet(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/portfolio", validToken, map[string]any{
		"title":    "Bridal look",
		"category": "Bridal",
		"type":     "image",
		"mediaUrl": "https://cdn.example.com/bridal.jpg",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, true, created["isActive"], "isActive defaults to true")
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	getResp, err := http.Get(server.URL + "/api/portfolio/" + id)
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusOK, getResp.StatusCode)
}

func TestPortfolioCreateRejectsBadType(t *testing.T) {
	server, portfolio, _ := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/portfolio", validToken, map[string]string{
		"category": "Bridal", "type": "gif", "mediaUrl": "https://cdn.example.com/a.gif",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, portfolio.items)
}

func TestCategoryConflict(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/portfolio/categories", validToken, map[string]string{"name": "Bridal"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/portfolio/categories", validToken, map[string]string{"name": "Bridal"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestContactSubmitValidation(t *testing.T) {
	server, _, contact := setupTestServer(t)

	// Missing required fields.
	resp := doJSON(t, http.MethodPost, server.URL+"/api/contact", "", map[string]string{"fullName": "Aisha R."})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, contact.submitted)

	// Complete submission.
	resp = doJSON(t, http.MethodPost, server.URL+"/api/contact", "", map[string]any{
		"fullName":  "Aisha R.",
		"phone":     "+1 555 0100",
		"eventDate": time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
		"message":   "Bridal makeup inquiry",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Your inquiry has been submitted successfully!", body["message"])
	require.Len(t, contact.submitted, 1)
	assert.Equal(t, repository.ContactStatusNew, contact.submitted[0].Status)
}

func TestContactListRequiresToken(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/contact", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, server.URL+"/api/contact", validToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadUnavailableWithoutMediaStore(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp := doJSON(t, http.MethodDelete, server.URL+"/api/upload/makeup-artist--images--abc", validToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestServiceNotFoundMapsTo404(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/services/" + uuid.New().String())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
