package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kwhalen/nfl-edge/internal/core/display"
	"github.com/kwhalen/nfl-edge/internal/events"
	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

const (
	clientSendBuf = 16
	writeDeadline = 5 * time.Second
	pongWait      = 30 * time.Second
	pingInterval  = 20 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

// Hub pushes each completed dashboard to connected browser clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
}

func NewHub(bus *events.Bus) *Hub {
	h := &Hub{clients: make(map[*wsClient]struct{})}
	bus.Subscribe(events.EventCycleComplete, h.forward)
	return h
}

// forward is called on the poller's goroutine. It serializes the dashboard
// once and enqueues it to every client's send channel, non-blocking.
func (h *Hub) forward(evt events.Event) error {
	dash, ok := evt.Payload.(*display.Dashboard)
	if !ok {
		return nil
	}
	data, err := json.Marshal(dash)
	if err != nil {
		telemetry.Warnf("ws: marshal error: %v", err)
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			telemetry.Warnf("ws: dropping frame for slow client")
		}
	}
	return nil
}

// HandleWS upgrades the connection and streams dashboards until the client
// disconnects.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		telemetry.Warnf("ws: upgrade failed: %v", err)
		return
	}

	c := &wsClient{
		conn: conn,
		send: make(chan []byte, clientSendBuf),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	telemetry.Metrics.WSClients.Inc()
	telemetry.Debugf("ws: client connected from %s", r.RemoteAddr)

	go h.writePump(c)
	go h.readPump(c)
}

// writePump drains the client's send channel and owns the lifecycle: on
// exit it removes the client from the map and closes the connection.
func (h *Hub) writePump(c *wsClient) {
	t := time.NewTicker(pingInterval)
	defer func() {
		t.Stop()
		h.removeClient(c)
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-c.done:
			return
		case <-t.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump keeps the connection alive by reading pongs / close frames.
// Browsers never send upstream messages. On exit it signals writePump via
// c.done (never closes c.send).
func (h *Hub) readPump(c *wsClient) {
	defer close(c.done)

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) removeClient(c *wsClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	telemetry.Metrics.WSClients.Dec()
	telemetry.Debugf("ws: client disconnected")
}
