package handlers

import (
	"net/http"
	"strings"

	"github.com/Marga-Ghale/glam-studio-backend/internal/models"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/Marga-Ghale/glam-studio-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// maxUploadSize caps a single media upload at 50 MiB.
const maxUploadSize = 50 << 20

// ============================================
// Upload Handler
// ============================================

type UploadHandler struct {
	media storage.MediaStore
}

// UploadImage accepts a multipart image for the portfolio.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	h.upload(c, repository.MediaTypeImage)
}

// UploadVideo accepts a multipart video (reel) for the portfolio.
func (h *UploadHandler) UploadVideo(c *gin.Context) {
	h.upload(c, repository.MediaTypeVideo)
}

func (h *UploadHandler) upload(c *gin.Context, mediaType string) {
	if h.media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 50MB upload limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.media.Upload(c.Request.Context(), file, mediaType, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload media"})
		return
	}

	c.JSON(http.StatusCreated, models.UploadResponse{
		URL:      result.URL,
		PublicID: result.PublicID,
		Format:   result.Format,
		Size:     fileHeader.Size,
	})
}

// Delete removes an uploaded object by its public id. Slashes in the id are
// transported as "--" so the id fits into a single path segment.
func (h *UploadHandler) Delete(c *gin.Context) {
	if h.media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media storage is not configured"})
		return
	}

	publicID := strings.ReplaceAll(c.Param("mediaId"), "--", "/")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Public id is required"})
		return
	}

	mediaType := c.DefaultQuery("type", repository.MediaTypeImage)
	if err := h.media.Delete(c.Request.Context(), publicID, mediaType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Media deleted successfully"})
}
