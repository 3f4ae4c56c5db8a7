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
// Contact Handler
// ============================================

type ContactHandler struct {
	contactService service.ContactService
}

// Submit is the public inquiry endpoint used by the site's contact form.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: fullName, phone, eventDate, message"})
		return
	}

	contact := &repository.Contact{
		FullName:  req.FullName,
		Phone:     req.Phone,
		EventDate: req.EventDate,
		EventType: req.EventType,
		Message:   req.Message,
	}

	created, err := h.contactService.Submit(c.Request.Context(), contact)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Your inquiry has been submitted successfully!",
		"contact": toContactResponse(created),
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}

	response := make([]models.ContactResponse, len(contacts))
	for i, contact := range contacts {
		response[i] = toContactResponse(contact)
	}
	c.JSON(http.StatusOK, response)
}

func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.contactService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiry"})
		return
	}
	c.JSON(http.StatusOK, toContactResponse(contact))
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req models.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactService.Update(c.Request.Context(), c.Param("id"), service.UpdateContactInput{
		Status: req.Status,
		IsRead: req.IsRead,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
		return
	}
	c.JSON(http.StatusOK, toContactResponse(contact))
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inquiry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted successfully"})
}
