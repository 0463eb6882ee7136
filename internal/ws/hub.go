package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	EventQuizCreated = "quiz_created"
	EventQuizDeleted = "quiz_deleted"

	writeWait  = 5 * time.Second
	sendBuffer = 16
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans quiz list events out to every connected client. Each client has
// its own writer goroutine, so Broadcast never waits on a slow socket.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]*client
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
		logger:  logger,
	}
}

func (h *Hub) AddConnection(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[conn] = c
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug("ws: client connected", "total", total)
	go h.writeLoop(c)
}

func (h *Hub) RemoveConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(c.send)
		conn.Close()
		h.logger.Debug("ws: client disconnected", "total", len(h.clients))
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues the message for every client. A client whose queue is
// full misses the event.
func (h *Hub) Broadcast(message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("ws: marshal error", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("ws: client queue full, dropping event", "type", message.Type)
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Warn("ws: write error", "error", err)
			h.RemoveConnection(c.conn)
			return
		}
	}
}
