// internal/server/dispatch.go
package server

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SMART-YANG1/wordle-assignment/internal/game"
	"github.com/SMART-YANG1/wordle-assignment/internal/protocol"
	"github.com/SMART-YANG1/wordle-assignment/internal/room"
)

// dispatch translates one decoded request into a call against the registry
// and the target room, recording any room this connection touches in joined.
func (s *Server) dispatch(c *room.Conn, joined map[string]*room.Room, req protocol.Request) {
	switch req.Action {
	case protocol.ActionCreate, protocol.ActionCreateMulti:
		r := s.createRoom(req.Mode)
		c.Send(protocol.Encode(protocol.CreateAck{OK: true, GameID: r.ID}))
		s.logger.WithFields(logrus.Fields{"room": r.ID, "mode": modeOrNormal(req.Mode)}).
			Info("room created")

	case protocol.ActionJoin:
		r, err := s.registry.Get(req.GameID)
		if err != nil {
			c.Send(protocol.Encode(protocol.NewErrorAck(fmt.Sprintf("room %s not found", req.GameID))))
			return
		}
		r.Join(c, playerOrAnon(req.Player))
		joined[r.ID] = r

	case protocol.ActionGuess:
		r, err := s.registry.Get(req.GameID)
		if err != nil {
			c.Send(protocol.Encode(protocol.NewErrorAck(fmt.Sprintf("room %s not found", req.GameID))))
			return
		}
		r.Guess(c, playerOrAnon(req.Player), strings.ToLower(strings.TrimSpace(req.Word)))
		joined[r.ID] = r
	}
}

// createRoom allocates a room around a fresh game of the requested variant
// and wires the scoreboard callback.
func (s *Server) createRoom(mode string) *room.Room {
	var g game.Game
	if mode == protocol.ModeCheat {
		g = game.NewCheating(s.vocab)
	} else {
		g = game.NewNormal("", s.vocab)
	}
	return s.registry.Create(func(id string) *room.Room {
		r := room.New(id, g)
		r.OnResult = s.recordResult
		return r
	})
}

func playerOrAnon(player string) string {
	if player == "" {
		return "anon"
	}
	return player
}

func modeOrNormal(mode string) string {
	if mode == "" {
		return protocol.ModeNormal
	}
	return mode
}
