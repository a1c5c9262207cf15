// internal/room/room.go
//
// Room is the authoritative container for one game's shared state: the game
// instance, the ordered set of joined player names, and the attached client
// connections. Every state-mutating operation runs under the room's mutex for
// its entire duration, message enqueueing included, so within one room all
// operations are observed in a single total order and the ack for an action
// is always enqueued before its broadcast. Two rooms never contend.
package room

import (
	"slices"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/SMART-YANG1/wordle-assignment/internal/game"
	"github.com/SMART-YANG1/wordle-assignment/internal/protocol"
)

// State is the room lifecycle phase.
type State string

const (
	StateWaiting State = "waiting" // created, no guesses yet
	StateActive  State = "active"  // at least one accepted guess
	StateOver    State = "over"    // won or attempts exhausted; terminal
)

// Outcome summarizes a finished round for the OnResult callback. Winner is
// empty on exhaustion; LastPlayer is the player whose guess ended the round
// either way.
type Outcome struct {
	RoomID     string
	Winner     string
	LastPlayer string
	Rounds     int
	Won        bool
	Players    []string
}

// Room wraps exactly one game. The registry exclusively owns the Room; the
// Room exclusively owns its game.
type Room struct {
	ID string

	// OnResult, if set, fires exactly once when the game reaches a terminal
	// state. Called inside the exclusive section; must not block.
	OnResult func(Outcome)

	mu       sync.Mutex
	game     game.Game
	state    State
	players  []string // insertion order, reflected in join acks
	conns    map[*Conn]struct{}
	reported bool
}

// New wraps a fresh game in a room.
func New(id string, g game.Game) *Room {
	return &Room{
		ID:    id,
		game:  g,
		state: StateWaiting,
		conns: make(map[*Conn]struct{}),
	}
}

// Join attaches the connection, records the player name (idempotent: a repeat
// join re-broadcasts the unchanged list rather than erroring), then emits the
// ack to the caller followed by a join broadcast to every attached client.
func (r *Room) Join(conn *Conn, player string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.Contains(r.players, player) {
		r.players = append(r.players, player)
	}
	r.conns[conn] = struct{}{}
	players := slices.Clone(r.players)

	conn.Send(protocol.Encode(protocol.JoinAck{OK: true, Joined: player, Players: players}))
	r.broadcastLocked(protocol.Encode(protocol.NewJoinEvent(player, players)))

	log.WithFields(log.Fields{"room": r.ID, "player": player, "players": len(players)}).
		Info("player joined")
}

// Guess applies one guess under the exclusive section and emits, in order:
// the ack to the caller, a broadcast of the identical snapshot to every
// attached client, and, on a win, the one-time game_over announcement.
// Invalid guesses produce exactly one ok:false ack, no broadcast, no
// mutation. The requesting connection is attached if it is not already
// (late join or reconnect), without a join broadcast.
func (r *Room) Guess(conn *Conn, player, word string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conns[conn] = struct{}{}

	res, err := r.game.Apply(player, word)
	if err != nil {
		conn.Send(protocol.Encode(protocol.NewErrorAck(err.Error())))
		return
	}
	if r.state == StateWaiting {
		r.state = StateActive
	}

	data := protocol.GuessData{
		Player:    player,
		Tokens:    res.Tokens,
		Won:       res.Won,
		Over:      res.Over,
		Remaining: res.Remaining,
	}
	conn.Send(protocol.Encode(protocol.GuessAck{OK: true, GuessData: data}))
	r.broadcastLocked(protocol.Encode(protocol.NewGuessEvent(data)))

	if res.Over {
		r.state = StateOver
		if res.Won {
			r.broadcastLocked(protocol.Encode(protocol.NewGameOverEvent(player)))
		}
		r.reportLocked(res, player)
	}

	log.WithFields(log.Fields{
		"room":    r.ID,
		"player":  player,
		"pattern": game.PatternKey(res.Tokens),
		"won":     res.Won,
		"over":    res.Over,
	}).Debug("guess applied")
}

// Detach drops a connection from the broadcast set, e.g. on disconnect. The
// player's name stays on the joined list; membership is never removed.
func (r *Room) Detach(conn *Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, conn)
}

// State reports the current lifecycle phase.
func (r *Room) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Players returns the joined player names in insertion order.
func (r *Room) Players() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.players)
}

// broadcastLocked fans one encoded line out to every attached connection,
// the sender included. Caller holds r.mu.
func (r *Room) broadcastLocked(line []byte) {
	for c := range r.conns {
		c.Send(line)
	}
}

// reportLocked fires OnResult exactly once per room. Caller holds r.mu.
func (r *Room) reportLocked(res game.Result, player string) {
	if r.reported || r.OnResult == nil {
		return
	}
	r.reported = true
	winner, won := r.game.Winner()
	r.OnResult(Outcome{
		RoomID:     r.ID,
		Winner:     winner,
		LastPlayer: player,
		Rounds:     game.MaxAttempts - res.Remaining,
		Won:        won,
		Players:    slices.Clone(r.players),
	})
}
