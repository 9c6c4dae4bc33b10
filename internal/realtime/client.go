package realtime

import (
	"sync"
	"time"

	"teachmatch/config"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// wsConn is the slice of *websocket.Conn the client needs. Tests substitute an
// in-memory implementation.
type wsConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// Client is one live WebSocket connection of an authenticated user. A user may
// hold several clients at once (phone plus browser); each is tracked
// separately in the hub.
type Client struct {
	id       uuid.UUID
	userID   uuid.UUID
	platform Platform

	conn wsConn
	send chan []byte

	pongWait  time.Duration
	writeWait time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

// NewClient wraps an upgraded connection. The send buffer is bounded; a full
// buffer marks the client a slow consumer and the hub disconnects it.
func NewClient(conn wsConn, userID uuid.UUID, platform Platform, cfg config.RealtimeConfig) *Client {
	conn.SetReadLimit(cfg.MaxMessageSize)

	return &Client{
		id:        uuid.New(),
		userID:    userID,
		platform:  platform,
		conn:      conn,
		send:      make(chan []byte, cfg.SendBufferSize),
		pongWait:  cfg.PongWait,
		writeWait: cfg.WriteWait,
		done:      make(chan struct{}),
	}
}

// ID returns the connection's unique identifier.
func (c *Client) ID() uuid.UUID {
	return c.id
}

// UserID returns the authenticated owner of the connection.
func (c *Client) UserID() uuid.UUID {
	return c.userID
}

// Platform returns the connection's popup-policy classification.
func (c *Client) Platform() Platform {
	return c.platform
}

// Enqueue hands a pre-encoded frame to the write pump without blocking.
// It reports false when the client is gone or its buffer is full.
func (c *Client) Enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	case <-c.done:
		return false
	default:
		return false
	}
}

// Close tears the connection down. Safe to call from any goroutine, any
// number of times.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// Done is closed when the client shuts down.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// WritePump drains the send buffer onto the socket and keeps the connection
// alive with pings. It owns all writes; nothing else may touch the socket's
// write side. Runs until the client closes.
func (c *Client) WritePump() {
	pingPeriod := c.pongWait * 9 / 10
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}

// ReadPump reads inbound frames and feeds them to the handler. It applies the
// pong deadline so dead connections are reaped, and returns when the peer
// goes away. The caller is responsible for hub cleanup afterwards.
func (c *Client) ReadPump(handle func(frame []byte)) {
	defer c.Close()

	_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		handle(frame)
	}
}
