package handlers

import (
	"github.com/Marga-Ghale/glam-studio-backend/internal/models"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/Marga-Ghale/glam-studio-backend/internal/service"
	"github.com/Marga-Ghale/glam-studio-backend/internal/storage"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Portfolio   *PortfolioHandler
	Service     *ServiceHandler
	Testimonial *TestimonialHandler
	Contact     *ContactHandler
	Upload      *UploadHandler
}

// NewHandlers creates all handlers. media may be nil when no media host is
// configured; the upload endpoints then report it as unavailable.
func NewHandlers(services *service.Services, media storage.MediaStore) *Handlers {
	return &Handlers{
		Portfolio:   &PortfolioHandler{portfolioService: services.Portfolio, categoryService: services.Category},
		Service:     &ServiceHandler{catalogService: services.Catalog},
		Testimonial: &TestimonialHandler{testimonialService: services.Testimonial},
		Contact:     &ContactHandler{contactService: services.Contact},
		Upload:      &UploadHandler{media: media},
	}
}

// ============================================
// Response Mappers
// ============================================

func toPortfolioResponse(p *repository.PortfolioItem) models.PortfolioResponse {
	return models.PortfolioResponse{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Type:        p.Type,
		MediaURL:    p.MediaURL,
		Thumbnail:   p.Thumbnail,
		Description: p.Description,
		MediaID:     p.MediaID,
		SortOrder:   p.SortOrder,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toCategoryResponse(c *repository.Category) models.CategoryResponse {
	return models.CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

func toServiceResponse(s *repository.Service) models.ServiceResponse {
	return models.ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
		SortOrder:   s.SortOrder,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toTestimonialResponse(t *repository.Testimonial) models.TestimonialResponse {
	return models.TestimonialResponse{
		ID:          t.ID,
		ClientName:  t.ClientName,
		Review:      t.Review,
		Rating:      t.Rating,
		ClientImage: t.ClientImage,
		EventType:   t.EventType,
		Date:        t.Date,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toContactResponse(c *repository.Contact) models.ContactResponse {
	return models.ContactResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Phone:     c.Phone,
		EventDate: c.EventDate,
		EventType: c.EventType,
		Message:   c.Message,
		Status:    c.Status,
		IsRead:    c.IsRead,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
