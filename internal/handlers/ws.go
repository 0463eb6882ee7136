package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Reaffith/quiz-builder/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub    *ws.Hub
	logger *slog.Logger
}

func NewWSHandler(hub *ws.Hub, logger *slog.Logger) *WSHandler {
	return &WSHandler{hub: hub, logger: logger}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleQuizFeed godoc
// @Summary      WebSocket feed of quiz list changes
// @Description  Receives quiz_created and quiz_deleted events
// @Tags         websocket
// @Router       /ws/quizzes [get]
func (h *WSHandler) HandleQuizFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade error", "error", err)
		return
	}

	h.hub.AddConnection(conn)
	defer h.hub.RemoveConnection(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
