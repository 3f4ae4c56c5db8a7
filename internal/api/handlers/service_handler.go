package handlers

import (
	"errors"
	"net/http"

	"github.com/Marga-Ghale/glam-studio-backend/internal/models"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/Marga-Ghale/glam-studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Service Handler (the makeup service catalog)
// ============================================

type ServiceHandler struct {
	catalogService service.CatalogService
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	response := make([]models.ServiceResponse, len(services))
	for i, s := range services {
		response[i] = toServiceResponse(s)
	}
	c.JSON(http.StatusOK, response)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.catalogService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service"})
		return
	}
	c.JSON(http.StatusOK, toServiceResponse(svc))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	svc := &repository.Service{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		IsActive:    isActive,
	}

	created, err := h.catalogService.Create(c.Request.Context(), svc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, toServiceResponse(created))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.catalogService.Update(c.Request.Context(), c.Param("id"), func(s *repository.Service) {
		if req.Title != nil {
			s.Title = *req.Title
		}
		if req.Description != nil {
			s.Description = *req.Description
		}
		if req.Price != nil {
			s.Price = req.Price
		}
		if req.ImageURL != nil {
			s.ImageURL = *req.ImageURL
		}
		if req.SortOrder != nil {
			s.SortOrder = *req.SortOrder
		}
		if req.IsActive != nil {
			s.IsActive = *req.IsActive
		}
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, toServiceResponse(svc))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
