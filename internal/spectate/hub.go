// Package spectate streams read-only match snapshots to websocket watchers.
package spectate

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/pingpong/internal/pong"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// Path is where watchers connect.
const Path = "/watch"

type client struct {
	conn  *websocket.Conn
	send  chan []byte
	codec Codec
	match string // empty watches every match
}

// Hub fans snapshots out to connected watchers. Slow watchers drop frames
// instead of blocking the game loop.
type Hub struct {
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewHub creates an empty hub.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		logger: logger.WithPrefix("spectate"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // read-only feed
			},
		},
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades a watcher connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	codec, err := CodecByName(r.URL.Query().Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "error", err)
		return
	}

	c := &client{
		conn:  conn,
		send:  make(chan []byte, sendBuffer),
		codec: codec,
		match: r.URL.Query().Get("match"),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.Info("watcher connected", "remote", r.RemoteAddr, "codec", codec.Name(), "match", c.match)

	go h.writePump(c)
	go h.readPump(c)
}

// Publish sends a snapshot to every watcher interested in its match.
func (h *Hub) Publish(snap pong.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || len(h.clients) == 0 {
		return
	}

	// Encode at most once per codec.
	frames := make(map[string][]byte, 2)
	for c := range h.clients {
		if c.match != "" && c.match != snap.MatchID {
			continue
		}
		frame, ok := frames[c.codec.Name()]
		if !ok {
			var err error
			frame, err = c.codec.Encode(snap)
			if err != nil {
				h.logger.Error("encode snapshot", "codec", c.codec.Name(), "error", err)
				continue
			}
			frames[c.codec.Name()] = frame
		}
		select {
		case c.send <- frame:
		default:
			// Watcher is behind; drop the frame.
		}
	}
}

// ClientCount returns the number of connected watchers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every watcher. Publish becomes a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

// remove unregisters c. Returns false if already removed.
func (h *Hub) remove(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return false
	}
	delete(h.clients, c)
	close(c.send)
	return true
}

// readPump discards watcher input and detects disconnects.
func (h *Hub) readPump(c *client) {
	defer func() {
		if h.remove(c) {
			h.logger.Info("watcher disconnected", "remote", c.conn.RemoteAddr())
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("watcher read error", "error", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(c.codec.MessageType(), frame); err != nil {
				h.logger.Debug("watcher write failed", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ListenAndServe serves the feed on addr until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(Path, h)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("spectator feed listening", "addr", addr, "path", Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	h.logger.Info("stopping spectator feed")
	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
