package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/models"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/Marga-Ghale/glam-studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Testimonial Handler
// ============================================

type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.testimonialService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}

	response := make([]models.TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		response[i] = toTestimonialResponse(t)
	}
	c.JSON(http.StatusOK, response)
}

func (h *TestimonialHandler) Get(c *gin.Context) {
	t, err := h.testimonialService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonial"})
		return
	}
	c.JSON(http.StatusOK, toTestimonialResponse(t))
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req models.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	t := &repository.Testimonial{
		ClientName:  req.ClientName,
		Review:      req.Review,
		Rating:      req.Rating,
		ClientImage: req.ClientImage,
		EventType:   req.EventType,
		Date:        date,
		IsActive:    isActive,
	}

	created, err := h.testimonialService.Create(c.Request.Context(), t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimonial"})
		return
	}
	c.JSON(http.StatusCreated, toTestimonialResponse(created))
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	var req models.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.testimonialService.Update(c.Request.Context(), c.Param("id"), func(t *repository.Testimonial) {
		if req.ClientName != nil {
			t.ClientName = *req.ClientName
		}
		if req.Review != nil {
			t.Review = *req.Review
		}
		if req.Rating != nil {
			t.Rating = *req.Rating
		}
		if req.ClientImage != nil {
			t.ClientImage = *req.ClientImage
		}
		if req.EventType != nil {
			t.EventType = *req.EventType
		}
		if req.Date != nil {
			t.Date = *req.Date
		}
		if req.IsActive != nil {
			t.IsActive = *req.IsActive
		}
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
		}
		return
	}
	c.JSON(http.StatusOK, toTestimonialResponse(t))
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonialService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
