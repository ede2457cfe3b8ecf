package websocketsink

import (
	"net/http"
	"strings"

	"github.com/RobertWHurst/rtcrelay"
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

func (h *Hub) handleWebsocketConnection(res http.ResponseWriter, req *http.Request) {
	if requested := req.Header.Get("Sec-WebSocket-Protocol"); requested != "" && !offersProtocol(requested, h.Subprotocol()) {
		http.Error(res, "Unsupported WebSocket Subprotocol: "+requested, http.StatusBadRequest)
		return
	}

	events, err := rtcrelay.ParsePatterns(req.URL.Query().Get("events"))
	if err != nil {
		http.Error(res, "Invalid events filter: "+err.Error(), http.StatusBadRequest)
		return
	}

	origins, queueSize, logger, closed := h.connectionSettings()
	if closed {
		http.Error(res, "Relay closed", http.StatusServiceUnavailable)
		return
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	conn, err := websocket.Accept(res, req, &websocket.AcceptOptions{
		OriginPatterns: origins,
		Subprotocols:   []string{h.Subprotocol()},
	})
	if err != nil {
		logger.WithError(err).WithField("remoteAddr", req.RemoteAddr).Warn("failed to accept websocket connection")
		return
	}

	c := newClient(uuid.NewString(), conn, events, queueSize)
	logger = logger.WithField("client", c.id)

	if !h.register(c) {
		c.close(websocket.StatusGoingAway, "relay closed")
		return
	}
	logger.WithField("remoteAddr", req.RemoteAddr).Debug("client connected")

	ctx := conn.CloseRead(req.Context())
	if err := c.writeLoop(ctx, h.messageType()); err != nil {
		logger.WithError(err).Debug("client write loop ended")
	}

	h.unregister(c)
	c.close(websocket.StatusNormalClosure, "")
	logger.Debug("client disconnected")
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.id] = c
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c.id)
}

func offersProtocol(header string, protocol string) bool {
	for _, offered := range strings.Split(header, ",") {
		if strings.TrimSpace(offered) == protocol {
			return true
		}
	}
	return false
}
