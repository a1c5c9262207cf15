// internal/room/conn.go
package room

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Conn is one client's delivery endpoint: a buffered FIFO of encoded wire
// lines drained by the transport's write pump. Enqueueing never blocks the
// room's exclusive section; if the buffer is full the message is dropped with
// a warning rather than stalling every other player in the room.
type Conn struct {
	mu     sync.Mutex
	out    chan []byte
	closed bool
}

// NewConn allocates a connection endpoint with the given buffer size.
func NewConn(buffer int) *Conn {
	return &Conn{out: make(chan []byte, buffer)}
}

// Send enqueues one encoded line for delivery. Safe after Close (no-op).
func (c *Conn) Send(line []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.out <- line:
	default:
		log.Warn("room: outbound buffer full, dropping message")
	}
}

// Out is the channel the write pump drains. It is closed by Close.
func (c *Conn) Out() <-chan []byte {
	return c.out
}

// Close marks the connection dead and closes the outbound channel, stopping
// the write pump. Idempotent.
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.out)
}
