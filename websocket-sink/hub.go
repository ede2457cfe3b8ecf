package websocketsink

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/RobertWHurst/navaros"
	"github.com/RobertWHurst/rtcrelay"
	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"
)

// DefaultQueueSize is the number of encoded events buffered per client
// before further events are dropped for that client.
const DefaultQueueSize = 64

// Hub is a Sink that pushes every forwarded event to the WebSocket clients
// connected to it. It implements http.Handler for use with Go's standard
// HTTP server, and can also be mounted in a Navaros router with Middleware.
//
// Each client has its own bounded queue and writer goroutine, so Forward
// never waits on the network. A client that falls behind loses events
// rather than slowing the engine's callback threads.
type Hub struct {
	codec rtcrelay.Codec

	mu        sync.Mutex
	origins   []string
	queueSize int
	logger    logrus.FieldLogger
	clients   map[string]*client
	closed    bool

	dropped atomic.Uint64
}

var _ http.Handler = &Hub{}
var _ rtcrelay.Sink = &Hub{}

// NewHub creates a hub encoding events with codec.
func NewHub(codec rtcrelay.Codec) *Hub {
	return &Hub{
		codec:     codec,
		queueSize: DefaultQueueSize,
		logger:    logrus.StandardLogger().WithField("component", "websocketsink"),
		clients:   map[string]*client{},
	}
}

// SetOrigins configures the allowed origin patterns for WebSocket
// connections. If not set, all origins are allowed.
//
// Origin patterns support wildcards, for example:
//   - "https://example.com" - exact match
//   - "https://*.example.com" - subdomain wildcard
//   - "*" - allow all origins (default)
func (h *Hub) SetOrigins(origins []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.origins = origins
}

// SetQueueSize sets the per client queue size for clients that connect
// afterwards.
func (h *Hub) SetQueueSize(size int) {
	if size < 1 {
		size = 1
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queueSize = size
}

// SetLogger replaces the logger used for connections accepted afterwards.
func (h *Hub) SetLogger(logger logrus.FieldLogger) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logger = logger
}

// Subprotocol is the WebSocket subprotocol clients may request, derived
// from the codec name, e.g. "rtcrelay-json".
func (h *Hub) Subprotocol() string {
	return "rtcrelay-" + h.codec.Name()
}

// Middleware returns a Navaros middleware function that handles WebSocket
// upgrade requests. Other requests are passed to the next handler in the
// Navaros chain.
func (h *Hub) Middleware() navaros.HandlerFunc {
	return func(ctx *navaros.Context) {
		if isWebsocketUpgradeRequest(ctx.Request()) {
			navaros.CtxInhibitResponse(ctx)
			h.handleWebsocketConnection(ctx.ResponseWriter(), ctx.Request())
			return
		}
		ctx.Next()
	}
}

// ServeHTTP upgrades the request and streams events to the client until it
// disconnects or the hub is closed. Requests that are not WebSocket upgrades
// get a 400 Bad Request.
func (h *Hub) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	if isWebsocketUpgradeRequest(req) {
		h.handleWebsocketConnection(res, req)
		return
	}
	http.Error(res, "Bad Request. Expected websocket upgrade request", http.StatusBadRequest)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many client deliveries were dropped because the
// client's queue was full.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close disconnects every client and refuses new connections. It sends each
// client a going away close frame and returns without waiting for the close
// handshakes to complete.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.close(websocket.StatusGoingAway, "relay closed")
	}
}

func (h *Hub) connectionSettings() (origins []string, queueSize int, logger logrus.FieldLogger, closed bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.origins, h.queueSize, h.logger, h.closed
}

func (h *Hub) messageType() websocket.MessageType {
	if h.codec.Binary() {
		return websocket.MessageBinary
	}
	return websocket.MessageText
}

func isWebsocketUpgradeRequest(req *http.Request) bool {
	return req.Header.Get("Upgrade") == "websocket"
}
