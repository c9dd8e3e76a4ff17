package signaling

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 64 * 1024 // 64 KB
)

// errSendBufferFull is returned when a client's outbound buffer has no
// room; the message is dropped rather than blocking the hub loop.
var errSendBufferFull = errors.New("send buffer full")

// errClientClosed is returned on sends to a client that has already
// been unregistered.
var errClientClosed = errors.New("connection closed")

// Client is a wrapper for a single websocket connection (a peer).
// It implements Peer.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	// id is the connection's stable identity, assigned at upgrade time.
	id string

	// send is a buffered channel for all outbound messages. The hub
	// writes to it, and the write pump drains it onto the websocket.
	send chan *Message

	// closed marks the send channel as closed. Both it and the close
	// itself are touched only on the hub loop, so no lock is needed.
	closed bool
}

// NewClient wraps an upgraded websocket connection.
func NewClient(hub *Hub, conn *websocket.Conn, id string) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		id:   id,
		send: make(chan *Message, 256),
	}
}

// ID returns the connection's stable identity.
func (c *Client) ID() string { return c.id }

// RemoteAddr returns the peer's network address for logging.
func (c *Client) RemoteAddr() string { return c.conn.RemoteAddr().String() }

// Send queues a message for delivery. It never blocks: when the buffer
// is full the message is dropped and an error returned, matching the
// protocol's fire-and-forget delivery contract.
func (c *Client) Send(msg *Message) error {
	if c.closed {
		return errClientClosed
	}
	select {
	case c.send <- msg:
		return nil
	default:
		return errSendBufferFull
	}
}

// shutdown closes the send channel, stopping the write pump. Called by
// the hub on unregister; any later Send fails instead of panicking on
// the closed channel.
func (c *Client) shutdown() {
	c.closed = true
	close(c.send)
}

// ReadPump pumps raw frames from the websocket connection to the hub.
//
// The application runs ReadPump in a per-connection goroutine. The
// application ensures that there is at most one reader on a connection
// by executing all reads from this goroutine. Frames are handed to the
// hub unparsed; a frame that fails to parse there costs nothing but a
// log line, while a transport-level read error ends the connection.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("read error", "clientId", c.id, "error", err)
			}
			break
		}

		c.hub.Inbound <- Frame{Client: c, Data: data}
	}
}

// WritePump pumps messages from the hub to the websocket connection.
//
// A goroutine running WritePump is started for each connection. The
// application ensures that there is at most one writer to a connection
// by executing all writes from this goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				slog.Error("write error", "clientId", c.id, "error", err)
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
