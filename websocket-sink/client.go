package websocketsink

import (
	"context"
	"sync"
	"time"

	"github.com/RobertWHurst/rtcrelay"
	"github.com/coder/websocket"
)

const writeTimeout = 10 * time.Second

type client struct {
	id        string
	conn      *websocket.Conn
	events    []*rtcrelay.Pattern
	queue     chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(id string, conn *websocket.Conn, events []*rtcrelay.Pattern, queueSize int) *client {
	return &client{
		id:     id,
		conn:   conn,
		events: events,
		queue:  make(chan []byte, queueSize),
		done:   make(chan struct{}),
	}
}

func (c *client) wants(event string) bool {
	return rtcrelay.MatchAny(c.events, event)
}

// enqueue queues an encoded event without blocking. It returns false if the
// queue is full.
func (c *client) enqueue(message []byte) bool {
	select {
	case c.queue <- message:
		return true
	default:
		return false
	}
}

func (c *client) writeLoop(ctx context.Context, messageType websocket.MessageType) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		case message := <-c.queue:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(writeCtx, messageType, message)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}

// close stops the write loop and starts the close handshake. The handshake
// finishes in the background, bounded by the websocket library's own close
// timeout.
func (c *client) close(status websocket.StatusCode, reason string) {
	c.closeOnce.Do(func() {
		close(c.done)
		go func() {
			_ = c.conn.Close(status, reason)
		}()
	})
}
