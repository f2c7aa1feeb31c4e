package preview

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/leirbagxis/FrameTrain/internal/cache"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// editor routes are already behind the JWT middleware
		return true
	},
}

const (
	sendBuffer   = 16
	pingInterval = 54 * time.Second
	writeWait    = 10 * time.Second
)

type Message struct {
	Type      string                `json:"type"`
	FrameID   string                `json:"frameId"`
	Payload   *cache.PreviewPayload `json:"payload,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
}

type client struct {
	hub     *Hub
	conn    *websocket.Conn
	frameID string
	send    chan Message
}

// Hub fans preview updates out to the editors watching a frame.
type Hub struct {
	clients    map[string]map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan Message
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan Message, 256),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, clients := range h.clients {
				for c := range clients {
					close(c.send)
				}
			}
			h.clients = make(map[string]map[*client]bool)
			return

		case c := <-h.register:
			if h.clients[c.frameID] == nil {
				h.clients[c.frameID] = make(map[*client]bool)
			}
			h.clients[c.frameID][c] = true
			log.Printf("Preview client connected to frame %s", c.frameID)

		case c := <-h.unregister:
			if _, ok := h.clients[c.frameID][c]; ok {
				h.remove(c)
				log.Printf("Preview client disconnected from frame %s", c.frameID)
			}

		case message := <-h.broadcast:
			for c := range h.clients[message.FrameID] {
				select {
				case c.send <- message:
				default:
					h.remove(c)
				}
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	delete(h.clients[c.frameID], c)
	if len(h.clients[c.frameID]) == 0 {
		delete(h.clients, c.frameID)
	}
	close(c.send)
}

// Broadcast queues a preview update for every client of the frame.
func (h *Hub) Broadcast(frameID string, payload cache.PreviewPayload) error {
	message := Message{
		Type:      "preview",
		FrameID:   frameID,
		Payload:   &payload,
		Timestamp: time.Now(),
	}
	select {
	case h.broadcast <- message:
		return nil
	default:
		return fmt.Errorf("preview broadcast queue is full")
	}
}

// ServeWS upgrades the request and streams preview updates for frameID.
// The current payload, when known, is sent first.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, frameID string, current *cache.PreviewPayload) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("websocket upgrade failed: %w", err)
	}

	c := &client{
		hub:     h,
		conn:    conn,
		frameID: frameID,
		send:    make(chan Message, sendBuffer),
	}
	if current != nil {
		c.send <- Message{Type: "preview", FrameID: frameID, Payload: current, Timestamp: time.Now()}
	}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return fmt.Errorf("preview hub is closed")
	}

	go c.writePump()
	go c.readPump()
	return nil
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				log.Printf("Error writing preview to frame %s: %v", c.frameID, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; the preview stream is one way.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Preview websocket error: %v", err)
			}
			return
		}
	}
}
