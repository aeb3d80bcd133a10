package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is one connected spectator
type Client struct {
	ID   string
	Addr string

	conn   *websocket.Conn
	sendCh chan []byte

	// Frames dropped because the client fell behind
	Dropped atomic.Uint64

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn, sendQueueSize int) *Client {
	return &Client{
		ID:      uuid.New().String(),
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		sendCh:  make(chan []byte, sendQueueSize),
		closeCh: make(chan struct{}),
	}
}

// Send queues a frame without blocking
// Returns false if the client is closed or its queue is full
func (c *Client) Send(data []byte) bool {
	select {
	case <-c.closeCh:
		return false
	default:
	}

	select {
	case c.sendCh <- data:
		return true
	default:
		c.Dropped.Add(1)
		return false
	}
}

// Close terminates the connection, safe to call more than once
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closeCh)
		c.conn.Close()
	})
}

// Done is closed once the client has been shut down
func (c *Client) Done() <-chan struct{} {
	return c.closeCh
}

// writeLoop drains the send queue and keeps the connection alive with pings
func (c *Client) writeLoop(writeTimeout, pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.closeCh:
			deadline := time.Now().Add(writeTimeout)
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			return

		case data := <-c.sendCh:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

// readLoop discards inbound data; it exits when the peer closes or errors
func (c *Client) readLoop() {
	defer c.Close()
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
