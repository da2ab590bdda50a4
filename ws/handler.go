package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Auth happens via the JWT middleware before the upgrade.
		return true
	},
}

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// ServeWS upgrades an authenticated request to a websocket connection.
// Runs behind the auth middleware, so the user's identity comes from
// the verified token, not the client.
func (h *Handler) ServeWS(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", "email", email, "error", err)
		return
	}

	client := &Client{
		Email:   email,
		conn:    conn,
		send:    make(chan Event, sendBuffer),
		manager: h.manager,
	}

	h.manager.register <- client

	go client.readPump()
	go client.writePump()
}
