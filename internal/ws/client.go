package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// sendBuffer is how many outbound events may queue per connection
	// before the client is considered too slow and dropped.
	sendBuffer = 64

	writeTimeout = 10 * time.Second
)

// Client is one websocket connection. Outbound events go through a
// buffered channel drained by a write pump, so room handlers never block
// on a slow reader.
type Client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
	log  zerolog.Logger
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
		log:  log.With().Str("remote", conn.RemoteAddr().String()).Logger(),
	}
}

// Send serializes an event and queues it for delivery. A client whose
// buffer is full is disconnected rather than allowed to stall the room.
func (c *Client) Send(event any) {
	data, err := json.Marshal(event)
	if err != nil {
		c.log.Error().Err(err).Msg("marshal event")
		return
	}

	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.send <- data:
	default:
		c.log.Warn().Msg("send buffer full, dropping slow client")
		c.shutdown()
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for {
		select {
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (c *Client) shutdown() {
	c.once.Do(func() {
		close(c.done)
	})
}
