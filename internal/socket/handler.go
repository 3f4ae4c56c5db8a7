package socket

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// In production, restrict to your domains
		return true
	},
}

// Handler handles WebSocket connections
type Handler struct {
	Hub      *Hub
	Verifier auth.Verifier
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, verifier auth.Verifier) *Handler {
	return &Handler{
		Hub:      hub,
		Verifier: verifier,
	}
}

// HandleWebSocket handles WebSocket upgrade requests.
// The token is accepted from a query parameter because the browser WebSocket
// API cannot set custom headers.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		// Also try Authorization header as fallback
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if tokenString == "" {
		log.Println("[WebSocket] No token provided")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	principal, err := h.Verifier.Verify(c.Request.Context(), tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			log.Printf("[WebSocket] Token rejected: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		log.Printf("[WebSocket] Token verification error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WebSocket] Upgrade error: %v", err)
		return
	}

	log.Printf("[WebSocket] ✅ Client connected: userID=%s", principal.UID)

	client := NewClient(h.Hub, principal.UID, conn)
	h.Hub.register <- client

	// Start read/write goroutines
	go client.WritePump()
	go client.ReadPump()
}

// NewClient creates a new WebSocket client
func NewClient(hub *Hub, userID string, conn *websocket.Conn) *Client {
	return &Client{
		ID:       uuid.New().String(),
		UserID:   userID,
		Conn:     conn,
		Hub:      hub,
		Send:     make(chan []byte, 256),
		lastPing: time.Now(),
	}
}
