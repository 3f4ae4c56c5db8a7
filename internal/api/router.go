package api

import (
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/api/handlers"
	"github.com/Marga-Ghale/glam-studio-backend/internal/api/middleware"
	"github.com/Marga-Ghale/glam-studio-backend/internal/auth"
	"github.com/Marga-Ghale/glam-studio-backend/internal/socket"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries everything the router needs. WS and Health are
// optional; the corresponding routes are skipped when nil.
type RouterConfig struct {
	Handlers     *handlers.Handlers
	Verifier     auth.Verifier
	WS           *socket.Handler
	AllowOrigins []string
	Health       gin.HandlerFunc
}

// NewRouter builds the gin engine with all API routes mounted under /api.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	if cfg.Health != nil {
		r.GET("/health", cfg.Health)
	}

	h := cfg.Handlers

	// API routes
	api := r.Group("/api")
	{
		// ============================================
		// Public routes (no auth required)
		// ============================================
		api.GET("/portfolio", h.Portfolio.List)
		api.GET("/portfolio/categories", h.Portfolio.ListCategories)
		api.GET("/portfolio/:id", h.Portfolio.Get)
		api.GET("/services", h.Service.List)
		api.GET("/services/:id", h.Service.Get)
		api.GET("/testimonials", h.Testimonial.List)
		api.GET("/testimonials/:id", h.Testimonial.Get)
		api.POST("/contact", h.Contact.Submit)

		// WebSocket route
		if cfg.WS != nil {
			api.GET("/ws", cfg.WS.HandleWebSocket)
		}

		// ============================================
		// Protected routes (require auth middleware)
		// ============================================
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.Verifier))
		{
			// Portfolio management
			portfolio := protected.Group("/portfolio")
			{
				portfolio.POST("", h.Portfolio.Create)
				portfolio.PUT("/:id", h.Portfolio.Update)
				portfolio.DELETE("/:id", h.Portfolio.Delete)
				portfolio.POST("/categories", h.Portfolio.CreateCategory)
				portfolio.DELETE("/categories/:id", h.Portfolio.DeleteCategory)
			}

			// Service catalog management
			services := protected.Group("/services")
			{
				services.POST("", h.Service.Create)
				services.PUT("/:id", h.Service.Update)
				services.DELETE("/:id", h.Service.Delete)
			}

			// Testimonial management
			testimonials := protected.Group("/testimonials")
			{
				testimonials.POST("", h.Testimonial.Create)
				testimonials.PUT("/:id", h.Testimonial.Update)
				testimonials.DELETE("/:id", h.Testimonial.Delete)
			}

			// Inquiry management
			contacts := protected.Group("/contact")
			{
				contacts.GET("", h.Contact.List)
				contacts.GET("/:id", h.Contact.Get)
				contacts.PUT("/:id", h.Contact.Update)
				contacts.DELETE("/:id", h.Contact.Delete)
			}

			// Media uploads
			upload := protected.Group("/upload")
			{
				upload.POST("/image", h.Upload.UploadImage)
				upload.POST("/video", h.Upload.UploadVideo)
				upload.DELETE("/:mediaId", h.Upload.Delete)
			}
		}
	}

	return r
}
