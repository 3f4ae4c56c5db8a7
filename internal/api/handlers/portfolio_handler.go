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
// Portfolio Handler
// ============================================

type PortfolioHandler struct {
	portfolioService service.PortfolioService
	categoryService  service.CategoryService
}

func (h *PortfolioHandler) List(c *gin.Context) {
	category := c.Query("category")

	items, err := h.portfolioService.List(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolio items"})
		return
	}

	response := make([]models.PortfolioResponse, len(items))
	for i, item := range items {
		response[i] = toPortfolioResponse(item)
	}
	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	item, err := h.portfolioService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolio item"})
		return
	}
	c.JSON(http.StatusOK, toPortfolioResponse(item))
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req models.CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: category, type, mediaUrl", "message": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item := &repository.PortfolioItem{
		Title:       req.Title,
		Category:    req.Category,
		Type:        req.Type,
		MediaURL:    req.MediaURL,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		MediaID:     req.MediaID,
		SortOrder:   req.SortOrder,
		IsActive:    isActive,
	}

	created, err := h.portfolioService.Create(c.Request.Context(), item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create portfolio item"})
		return
	}
	c.JSON(http.StatusCreated, toPortfolioResponse(created))
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	var req models.UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.portfolioService.Update(c.Request.Context(), c.Param("id"), service.UpdatePortfolioInput{
		Title:       req.Title,
		Category:    req.Category,
		Type:        req.Type,
		MediaURL:    req.MediaURL,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		MediaID:     req.MediaID,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update portfolio item"})
		return
	}
	c.JSON(http.StatusOK, toPortfolioResponse(item))
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.portfolioService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete portfolio item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted successfully"})
}

// ============================================
// Category endpoints
// ============================================

func (h *PortfolioHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	response := make([]models.CategoryResponse, len(categories))
	for i, cat := range categories {
		response[i] = toCategoryResponse(cat)
	}
	c.JSON(http.StatusOK, response)
}

func (h *PortfolioHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			return
		}
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, toCategoryResponse(category))
}

func (h *PortfolioHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
