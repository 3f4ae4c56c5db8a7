package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================
// Portfolio DTOs
// ============================================

type CreatePortfolioRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=image video"`
	MediaURL    string `json:"mediaUrl" binding:"required"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	MediaID     string `json:"mediaId"`
	SortOrder   int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

type UpdatePortfolioRequest struct {
	Title       *string `json:"title,omitempty"`
	Category    *string `json:"category,omitempty"`
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=image video"`
	MediaURL    *string `json:"mediaUrl,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
	Description *string `json:"description,omitempty"`
	MediaID     *string `json:"mediaId,omitempty"`
	SortOrder   *int    `json:"order,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type PortfolioResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	MediaURL    string    `json:"mediaUrl"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Description string    `json:"description,omitempty"`
	MediaID     string    `json:"mediaId,omitempty"`
	SortOrder   int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ============================================
// Category DTOs
// ============================================

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryResponse struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// ============================================
// Service DTOs
// ============================================

type CreateServiceRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    string           `json:"imageUrl"`
	SortOrder   int              `json:"order"`
	IsActive    *bool            `json:"isActive"`
}

type UpdateServiceRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	SortOrder   *int             `json:"order,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
}

type ServiceResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	SortOrder   int              `json:"order"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ============================================
// Testimonial DTOs
// ============================================

type CreateTestimonialRequest struct {
	ClientName  string     `json:"clientName" binding:"required"`
	Review      string     `json:"review" binding:"required"`
	Rating      int        `json:"rating" binding:"required,min=1,max=5"`
	ClientImage string     `json:"clientImage"`
	EventType   string     `json:"eventType"`
	Date        *time.Time `json:"date"`
	IsActive    *bool      `json:"isActive"`
}

type UpdateTestimonialRequest struct {
	ClientName  *string    `json:"clientName,omitempty"`
	Review      *string    `json:"review,omitempty"`
	Rating      *int       `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	ClientImage *string    `json:"clientImage,omitempty"`
	EventType   *string    `json:"eventType,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
}

type TestimonialResponse struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"clientName"`
	Review      string    `json:"review"`
	Rating      int       `json:"rating"`
	ClientImage string    `json:"clientImage,omitempty"`
	EventType   string    `json:"eventType,omitempty"`
	Date        time.Time `json:"date"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ============================================
// Contact DTOs
// ============================================

type CreateContactRequest struct {
	FullName  string    `json:"fullName" binding:"required"`
	Phone     string    `json:"phone" binding:"required"`
	EventDate time.Time `json:"eventDate" binding:"required"`
	EventType string    `json:"eventType"`
	Message   string    `json:"message" binding:"required"`
}

type UpdateContactRequest struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=new contacted booked completed"`
	IsRead *bool   `json:"isRead,omitempty"`
}

type ContactResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	EventDate time.Time `json:"eventDate"`
	EventType string    `json:"eventType,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ============================================
// Upload DTOs
// ============================================

type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Format   string `json:"format,omitempty"`
	Size     int64  `json:"size,omitempty"`
}
