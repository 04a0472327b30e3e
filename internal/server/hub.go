package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 4
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// snapshotMessage is pushed to websocket clients on connect and after every
// ledger change.
type snapshotMessage struct {
	Type    string              `json:"type"`
	Stats   domain.Statistics   `json:"stats"`
	Records []domain.FuelRecord `json:"records"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) closeSend() {
	c.once.Do(func() { close(c.send) })
}

// hub fans ledger change events out to connected websocket clients.
type hub struct {
	ledger *ledger.Ledger
	logger *zap.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool

	unsubscribe func()
	done        chan struct{}
	closeOnce   sync.Once
}

func newHub(l *ledger.Ledger, logger *zap.Logger) *hub {
	events, unsubscribe := l.Subscribe()
	h := &hub{
		ledger:      l,
		logger:      logger,
		clients:     make(map[*client]struct{}),
		unsubscribe: unsubscribe,
		done:        make(chan struct{}),
	}
	go h.run(events)
	return h
}

func (h *hub) run(events <-chan ledger.Event) {
	defer close(h.done)
	for range events {
		msg, err := h.snapshot()
		if err != nil {
			h.logger.Error("encode snapshot", zap.Error(err))
			continue
		}
		h.broadcast(msg)
	}
}

func (h *hub) snapshot() ([]byte, error) {
	stats, records := h.ledger.Snapshot()
	return json.Marshal(snapshotMessage{Type: "snapshot", Stats: stats, Records: records})
}

func (h *hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// Client is not keeping up; drop it.
			delete(h.clients, c)
			c.closeSend()
		}
	}
}

func (h *hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.closeSend()
}

// close unsubscribes from the ledger and disconnects every client.
func (h *hub) close() {
	h.closeOnce.Do(func() {
		h.unsubscribe()
		<-h.done

		h.mu.Lock()
		h.closed = true
		for c := range h.clients {
			delete(h.clients, c)
			c.closeSend()
		}
		h.mu.Unlock()
	})
}

func (h *hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if msg, err := h.snapshot(); err == nil {
		c.send <- msg
	}
	if !h.register(c) {
		conn.Close()
		return
	}

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		h.writePump(c)
	}()

	h.readPump(c)
	h.unregister(c)
	<-writerDone
}

// readPump discards client messages until the connection closes.
func (h *hub) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read", zap.Error(err))
			}
			return
		}
	}
}

func (h *hub) writePump(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Debug("websocket write", zap.Error(err))
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
