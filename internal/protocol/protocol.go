// internal/protocol/protocol.go
//
// Wire contract for the line-oriented JSON protocol. One request object per
// inbound line, one response/event object per outbound line. Field names here
// are the compatibility surface and must not change.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/SMART-YANG1/wordle-assignment/internal/game"
)

// Action is the closed set of request kinds, decoded once at the boundary.
type Action string

const (
	ActionCreate      Action = "create"
	ActionCreateMulti Action = "create_multi"
	ActionJoin        Action = "join"
	ActionGuess       Action = "guess"
)

// Game modes accepted by create/create_multi.
const (
	ModeNormal = "normal"
	ModeCheat  = "cheat"
)

// Request is one decoded client request.
type Request struct {
	Action Action `json:"action"`
	Mode   string `json:"mode,omitempty"`
	GameID string `json:"game_id,omitempty"`
	Player string `json:"player,omitempty"`
	Word   string `json:"word,omitempty"`
}

// MalformedRequestError covers undecodable lines, unknown actions and missing
// required fields. It is surfaced by the dispatcher as an ok:false ack.
type MalformedRequestError struct {
	Reason string
}

func (e *MalformedRequestError) Error() string { return e.Reason }

// ParseRequest decodes and validates one request line.
func ParseRequest(line []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Request{}, &MalformedRequestError{Reason: "invalid JSON"}
	}
	switch req.Action {
	case ActionCreate, ActionCreateMulti:
		if req.Mode != "" && req.Mode != ModeNormal && req.Mode != ModeCheat {
			return Request{}, &MalformedRequestError{Reason: fmt.Sprintf("unknown mode: %s", req.Mode)}
		}
	case ActionJoin:
		if req.GameID == "" {
			return Request{}, &MalformedRequestError{Reason: "missing game_id"}
		}
	case ActionGuess:
		if req.GameID == "" {
			return Request{}, &MalformedRequestError{Reason: "missing game_id"}
		}
		if req.Word == "" {
			return Request{}, &MalformedRequestError{Reason: "missing word"}
		}
	case "":
		return Request{}, &MalformedRequestError{Reason: "missing action"}
	default:
		return Request{}, &MalformedRequestError{Reason: fmt.Sprintf("unknown action: %s", req.Action)}
	}
	return req, nil
}

// CreateAck acknowledges create/create_multi with the new room identifier.
type CreateAck struct {
	OK     bool   `json:"ok"`
	GameID string `json:"game_id"`
}

// JoinAck acknowledges a join to the requester only.
type JoinAck struct {
	OK      bool     `json:"ok"`
	Joined  string   `json:"joined"`
	Players []string `json:"players"`
}

// JoinData is the payload of a join broadcast.
type JoinData struct {
	Player  string   `json:"player"`
	Players []string `json:"players"`
}

// JoinEvent is broadcast to every joined player after a join, the new joiner
// included.
type JoinEvent struct {
	Event string   `json:"event"`
	Data  JoinData `json:"data"`
}

// GuessData is the shared snapshot carried by both the guess ack and the
// guess broadcast, so every client renders the identical round state.
type GuessData struct {
	Player    string       `json:"player"`
	Tokens    []game.Token `json:"tokens"`
	Won       bool         `json:"won"`
	Over      bool         `json:"over"`
	Remaining int          `json:"remaining"`
}

// GuessAck acknowledges an accepted guess to the caller.
type GuessAck struct {
	OK bool `json:"ok"`
	GuessData
}

// GuessEvent fans the same snapshot out to every joined player.
type GuessEvent struct {
	Event string    `json:"event"`
	Data  GuessData `json:"data"`
}

// GameOverEvent is the one-time winner announcement for a room.
type GameOverEvent struct {
	Event  string `json:"event"`
	Winner string `json:"winner"`
}

// ErrorAck reports a failed action to the requester. Errors never broadcast.
type ErrorAck struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// NewJoinEvent builds a join broadcast.
func NewJoinEvent(player string, players []string) JoinEvent {
	return JoinEvent{Event: "join", Data: JoinData{Player: player, Players: players}}
}

// NewGuessEvent builds a guess broadcast around the ack snapshot.
func NewGuessEvent(data GuessData) GuessEvent {
	return GuessEvent{Event: "guess", Data: data}
}

// NewGameOverEvent builds the winner announcement.
func NewGameOverEvent(winner string) GameOverEvent {
	return GameOverEvent{Event: "game_over", Winner: winner}
}

// NewErrorAck builds an ok:false ack with a human-readable message.
func NewErrorAck(msg string) ErrorAck {
	return ErrorAck{OK: false, Error: msg}
}

// Encode serializes one outbound message to its wire line (no trailing
// newline; the transport appends it).
func Encode(msg any) []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		// Message structs contain only marshalable fields; reaching this
		// means a programming error upstream.
		return []byte(`{"ok":false,"error":"internal encoding error"}`)
	}
	return b
}
