// internal/server/server.go
//
// TCP transport collaborator: accepts connections, reads one JSON request per
// line, forwards decoded requests to the dispatcher, and drains each
// connection's outbound buffer through a dedicated write pump so delivery
// order per connection matches the order the core produced.
package server

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SMART-YANG1/wordle-assignment/internal/config"
	"github.com/SMART-YANG1/wordle-assignment/internal/protocol"
	"github.com/SMART-YANG1/wordle-assignment/internal/room"
	"github.com/SMART-YANG1/wordle-assignment/internal/scoreboard"
	"github.com/SMART-YANG1/wordle-assignment/internal/words"
)

// maxLineBytes bounds one request line. Requests are tiny; anything larger
// is a misbehaving client.
const maxLineBytes = 64 * 1024

// Server owns the registry and vocabulary and serves the line protocol.
type Server struct {
	cfg      config.Config
	logger   *logrus.Logger
	registry *room.Registry
	vocab    *words.List
	scores   *scoreboard.Publisher // nil when the scoreboard queue is disabled
}

// New constructs a Server. scores may be nil.
func New(cfg config.Config, logger *logrus.Logger, vocab *words.List, scores *scoreboard.Publisher) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger,
		registry: room.NewRegistry(),
		vocab:    vocab,
		scores:   scores,
	}
}

// Registry exposes the session registry, mainly for tests.
func (s *Server) Registry() *room.Registry {
	return s.registry
}

// Serve accepts connections until the listener is closed, handling each on
// its own goroutine.
func (s *Server) Serve(l net.Listener) error {
	for {
		nc, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go s.HandleConn(nc)
	}
}

// HandleConn runs one client connection to completion: a write pump goroutine
// plus the read loop on the calling goroutine. Exported so tests can drive it
// over net.Pipe.
func (s *Server) HandleConn(nc net.Conn) {
	remote := nc.RemoteAddr().String()
	clog := s.logger.WithField("remote", remote)
	clog.Info("client connected")

	c := room.NewConn(s.cfg.ConnBuffer)
	go writePump(nc, c, clog)

	// Rooms this connection has been attached to, so a disconnect detaches
	// cleanly without scanning the registry.
	joined := make(map[string]*room.Room)

	sc := bufio.NewScanner(nc)
	sc.Buffer(make([]byte, 4096), maxLineBytes)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		req, err := protocol.ParseRequest(line)
		if err != nil {
			clog.WithError(err).Warn("malformed request")
			c.Send(protocol.Encode(protocol.NewErrorAck(err.Error())))
			continue
		}
		s.dispatch(c, joined, req)
	}
	if err := sc.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		clog.WithError(err).Warn("read error")
	}

	for _, r := range joined {
		r.Detach(c)
	}
	c.Close()
	nc.Close()
	clog.Info("client disconnected")
}

// writePump drains the connection's outbound buffer in FIFO order, appending
// the line terminator. It exits when the buffer channel is closed or a write
// fails; senders never block either way.
func writePump(nc net.Conn, c *room.Conn, clog *logrus.Entry) {
	for line := range c.Out() {
		// Broadcast lines are shared across connections; never append in place.
		buf := make([]byte, 0, len(line)+1)
		buf = append(buf, line...)
		buf = append(buf, '\n')
		if _, err := nc.Write(buf); err != nil {
			clog.WithError(err).Debug("write failed, stopping pump")
			// Drain remaining messages so Close can complete.
			for range c.Out() {
			}
			return
		}
	}
}

// recordResult publishes a finished round to the scoreboard queue. Called
// from inside a room's exclusive section, so the publish runs on its own
// goroutine and never holds the room up.
func (s *Server) recordResult(o room.Outcome) {
	if s.scores == nil {
		return
	}
	player := o.Winner
	if !o.Won {
		player = o.LastPlayer
	}
	rec := scoreboard.Record{
		GameID: o.RoomID,
		Player: player,
		Rounds: o.Rounds,
		Win:    o.Won,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.scores.Publish(ctx, rec); err != nil {
			s.logger.WithError(err).WithField("room", o.RoomID).Warn("scoreboard publish failed")
		}
	}()
}
