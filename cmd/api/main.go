// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/api"
	"github.com/Marga-Ghale/glam-studio-backend/internal/api/handlers"
	"github.com/Marga-Ghale/glam-studio-backend/internal/auth"
	"github.com/Marga-Ghale/glam-studio-backend/internal/config"
	"github.com/Marga-Ghale/glam-studio-backend/internal/cron"
	"github.com/Marga-Ghale/glam-studio-backend/internal/db"
	"github.com/Marga-Ghale/glam-studio-backend/internal/email"
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/Marga-Ghale/glam-studio-backend/internal/seed"
	"github.com/Marga-Ghale/glam-studio-backend/internal/service"
	"github.com/Marga-Ghale/glam-studio-backend/internal/socket"
	"github.com/Marga-Ghale/glam-studio-backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()

	// ============================================
	// Set Gin mode
	// ============================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Run Database Migrations FIRST
	// ============================================
	log.Println("🔄 Running database migrations...")
	migrationsPath := "./internal/db/migrations"
	if err := db.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// ============================================
	// Initialize PostgreSQL
	// ============================================
	ctx := context.Background()

	pg, err := db.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to PostgreSQL: %v", err)
	}
	defer pg.Pool.Close()

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(pg.Pool)
	log.Println("📦 Repositories initialized")

	// ============================================
	// Initialize Redis (optional)
	// ============================================
	var redisDB *db.RedisDB
	if cfg.RedisURL != "" {
		redisDB, err = db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Failed to connect to Redis: %v (continuing without cache)", err)
			redisDB = nil
		} else {
			defer redisDB.Close()
			log.Println("⚡ Redis cache enabled")
		}
	}

	// ============================================
	// Initialize Token Verifier
	// ============================================
	if cfg.FirebaseProjectID == "" {
		log.Fatal("❌ FIREBASE_PROJECT_ID is required")
	}
	verifier := auth.NewFirebaseVerifier(cfg.FirebaseProjectID)
	log.Println("🔐 Token verifier initialized")

	// ============================================
	// Initialize Media Store (optional)
	// ============================================
	var mediaStore storage.MediaStore
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatalf("❌ Failed to initialize media store: %v", err)
		}
		mediaStore = s3Store
		log.Println("🗄️  Media store initialized")
	} else {
		log.Println("⚠️  Media store not configured (S3_BUCKET not set)")
	}

	// ============================================
	// Initialize Email Service (optional)
	// ============================================
	var emailSvc *email.Service
	if cfg.SMTPHost != "" {
		emailSvc = email.NewService(&email.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			FromName: cfg.SMTPFromName,
			UseTLS:   cfg.SMTPUseTLS,
			NotifyTo: cfg.NotifyEmail,
		})
		log.Println("📧 Email service initialized")
	} else {
		log.Println("⚠️  Email not configured (SMTP_HOST not set)")
	}

	// ============================================
	// Initialize WebSocket Hub
	// ============================================
	hub := socket.NewHub()
	go hub.Run()
	broadcaster := socket.NewBroadcaster(hub)
	wsHandler := socket.NewHandler(hub, verifier)
	log.Println("🔌 WebSocket hub initialized")

	// ============================================
	// Seed Data (for development)
	// ============================================
	if cfg.Environment != "production" {
		log.Println("🌱 Seeding development data...")
		seed.SeedData(repos)
	}

	// ============================================
	// Initialize All Services
	// ============================================
	deps := &service.Deps{
		Repos:       repos,
		Cache:       redisDB,
		Broadcaster: broadcaster,
		VideoLimit:  cfg.ReelsLimit,
		ImageLimit:  cfg.ImageLimit,
	}
	// Assign optional collaborators only when configured so the service
	// layer's nil checks see a nil interface.
	if mediaStore != nil {
		deps.Media = mediaStore
	}
	if emailSvc != nil {
		deps.Notifier = emailSvc
	}
	services := service.NewServices(deps)
	log.Println("✨ All services initialized")

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(services, mediaStore)

	// ============================================
	// Initialize Cron Scheduler (opt-in)
	// ============================================
	if cfg.CapacitySweep {
		cronScheduler := cron.NewScheduler(services.Enforcer)
		cronScheduler.Start()
		defer cronScheduler.Stop()
	}

	// ============================================
	// Create Gin Router
	// ============================================
	r := api.NewRouter(api.RouterConfig{
		Handlers:     h,
		Verifier:     verifier,
		WS:           wsHandler,
		AllowOrigins: []string{cfg.FrontendURL, "http://localhost:3000", "http://localhost:5173"},
		Health: func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":     "healthy",
				"timestamp":  time.Now(),
				"database":   "connected",
				"cache":      getCacheStatus(redisDB),
				"websocket":  "active",
				"ws_clients": hub.GetConnectedClientsCount(),
				"email":      getEmailStatus(emailSvc),
			})
		},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func getCacheStatus(redisDB *db.RedisDB) string {
	if redisDB != nil {
		return "connected"
	}
	return "disabled"
}

func getEmailStatus(emailSvc *email.Service) string {
	if emailSvc != nil {
		return "configured"
	}
	return "disabled"
}
