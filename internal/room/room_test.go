// internal/room/room_test.go
package room

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SMART-YANG1/wordle-assignment/internal/game"
	"github.com/SMART-YANG1/wordle-assignment/internal/words"
)

func testVocab() *words.List {
	return words.New([]string{"apple", "grape", "mango", "peach", "lemon"})
}

// drain decodes every message currently buffered on the connection, in
// delivery order.
func drain(t *testing.T, c *Conn) []map[string]any {
	t.Helper()
	var out []map[string]any
	for {
		select {
		case line := <-c.out:
			var obj map[string]any
			require.NoError(t, json.Unmarshal(line, &obj))
			out = append(out, obj)
		default:
			return out
		}
	}
}

func newTestRoom(t *testing.T, answer string) *Room {
	t.Helper()
	return New("1234", game.NewNormal(answer, testVocab()))
}

func TestJoinAckThenBroadcast(t *testing.T) {
	r := newTestRoom(t, "apple")
	alice := NewConn(16)

	r.Join(alice, "alice")

	msgs := drain(t, alice)
	require.Len(t, msgs, 2)
	assert.Equal(t, true, msgs[0]["ok"])
	assert.Equal(t, "alice", msgs[0]["joined"])
	assert.Equal(t, []any{"alice"}, msgs[0]["players"])
	assert.Equal(t, "join", msgs[1]["event"])

	assert.Equal(t, StateWaiting, r.State())
}

func TestJoinOrderPreservedAndIdempotent(t *testing.T) {
	r := newTestRoom(t, "apple")
	alice, bob := NewConn(16), NewConn(16)

	r.Join(alice, "alice")
	r.Join(bob, "bob")
	r.Join(bob, "bob") // repeat join: no duplicate, normal re-broadcast

	assert.Equal(t, []string{"alice", "bob"}, r.Players())

	// alice saw her own join broadcast plus two for bob.
	msgs := drain(t, alice)
	var joins int
	for _, m := range msgs {
		if m["event"] == "join" {
			joins++
		}
	}
	assert.Equal(t, 3, joins)
}

func TestGuessScenario(t *testing.T) {
	r := newTestRoom(t, "apple")
	alice, bob := NewConn(16), NewConn(16)
	r.Join(alice, "alice")
	r.Join(bob, "bob")
	drain(t, alice)
	drain(t, bob)

	r.Guess(alice, "alice", "apple")

	// Alice: ack first, then the guess broadcast, then game_over.
	aliceMsgs := drain(t, alice)
	require.Len(t, aliceMsgs, 3)

	ack := aliceMsgs[0]
	assert.Equal(t, true, ack["ok"])
	assert.Equal(t, "alice", ack["player"])
	assert.Equal(t, []any{"O", "O", "O", "O", "O"}, ack["tokens"])
	assert.Equal(t, true, ack["won"])
	assert.Equal(t, true, ack["over"])
	assert.Equal(t, float64(5), ack["remaining"])

	ev := aliceMsgs[1]
	assert.Equal(t, "guess", ev["event"])
	assert.Equal(t, ack["tokens"], ev["data"].(map[string]any)["tokens"])

	over := aliceMsgs[2]
	assert.Equal(t, "game_over", over["event"])
	assert.Equal(t, "alice", over["winner"])

	// Bob: identical broadcast payload, same game_over, no ack.
	bobMsgs := drain(t, bob)
	require.Len(t, bobMsgs, 2)
	assert.Equal(t, ev, bobMsgs[0])
	assert.Equal(t, over, bobMsgs[1])

	assert.Equal(t, StateOver, r.State())

	// Idempotent terminality: bob's late guess gets exactly one error ack
	// and nobody else hears about it.
	r.Guess(bob, "bob", "grape")
	bobMsgs = drain(t, bob)
	require.Len(t, bobMsgs, 1)
	assert.Equal(t, false, bobMsgs[0]["ok"])
	assert.Equal(t, "game over", bobMsgs[0]["error"])
	assert.Empty(t, drain(t, alice))
}

func TestInvalidGuessNoBroadcastNoMutation(t *testing.T) {
	r := newTestRoom(t, "apple")
	alice, bob := NewConn(16), NewConn(16)
	r.Join(alice, "alice")
	r.Join(bob, "bob")
	drain(t, alice)
	drain(t, bob)

	for _, word := range []string{"zzzzz", "ab", "gr4pe"} {
		r.Guess(alice, "alice", word)
		msgs := drain(t, alice)
		require.Len(t, msgs, 1, "guess %q", word)
		assert.Equal(t, false, msgs[0]["ok"])
		assert.Empty(t, drain(t, bob), "guess %q must not broadcast", word)
	}

	// Room never left waiting: no attempt was accepted.
	assert.Equal(t, StateWaiting, r.State())

	// A valid guess still has all attempts available.
	r.Guess(alice, "alice", "grape")
	msgs := drain(t, alice)
	require.Len(t, msgs, 2)
	assert.Equal(t, float64(5), msgs[0]["remaining"])
	assert.Equal(t, StateActive, r.State())
}

func TestGuessNeverEmitsJoinEvent(t *testing.T) {
	r := newTestRoom(t, "apple")
	alice := NewConn(16)
	r.Join(alice, "alice")
	drain(t, alice)

	r.Guess(alice, "alice", "grape")
	for _, m := range drain(t, alice) {
		assert.NotEqual(t, "join", m["event"])
	}
}

func TestLateGuessAttachesWithoutJoinBroadcast(t *testing.T) {
	r := newTestRoom(t, "apple")
	alice, ghost := NewConn(16), NewConn(16)
	r.Join(alice, "alice")
	drain(t, alice)

	// ghost never joined; a guess attaches it silently.
	r.Guess(ghost, "ghost", "grape")

	ghostMsgs := drain(t, ghost)
	require.Len(t, ghostMsgs, 2) // ack + guess broadcast
	assert.Equal(t, true, ghostMsgs[0]["ok"])

	aliceMsgs := drain(t, alice)
	require.Len(t, aliceMsgs, 1)
	assert.Equal(t, "guess", aliceMsgs[0]["event"])

	// ghost is attached for traffic but never listed as joined.
	assert.Equal(t, []string{"alice"}, r.Players())
}

func TestSingleGameOverBroadcastAndOutcome(t *testing.T) {
	r := newTestRoom(t, "apple")
	var outcomes []Outcome
	r.OnResult = func(o Outcome) { outcomes = append(outcomes, o) }

	alice := NewConn(64)
	r.Join(alice, "alice")
	drain(t, alice)

	r.Guess(alice, "alice", "apple")
	r.Guess(alice, "alice", "apple")
	r.Guess(alice, "alice", "grape")

	var gameOvers int
	for _, m := range drain(t, alice) {
		if m["event"] == "game_over" {
			gameOvers++
		}
	}
	assert.Equal(t, 1, gameOvers)

	require.Len(t, outcomes, 1)
	assert.Equal(t, "alice", outcomes[0].Winner)
	assert.True(t, outcomes[0].Won)
	assert.Equal(t, 1, outcomes[0].Rounds)
	assert.Equal(t, "1234", outcomes[0].RoomID)
}

func TestLossReportsOutcomeWithoutWinner(t *testing.T) {
	r := newTestRoom(t, "apple")
	var outcomes []Outcome
	r.OnResult = func(o Outcome) { outcomes = append(outcomes, o) }

	c := NewConn(64)
	r.Join(c, "bob")
	for i := 0; i < game.MaxAttempts; i++ {
		r.Guess(c, "bob", "grape")
	}

	var gameOvers int
	for _, m := range drain(t, c) {
		if m["event"] == "game_over" {
			gameOvers++
		}
	}
	assert.Zero(t, gameOvers, "exhaustion announces no winner")

	require.Len(t, outcomes, 1)
	assert.Empty(t, outcomes[0].Winner)
	assert.Equal(t, "bob", outcomes[0].LastPlayer)
	assert.False(t, outcomes[0].Won)
	assert.Equal(t, game.MaxAttempts, outcomes[0].Rounds)
	assert.Equal(t, StateOver, r.State())
}

func TestDetachStopsDelivery(t *testing.T) {
	r := newTestRoom(t, "apple")
	alice, bob := NewConn(16), NewConn(16)
	r.Join(alice, "alice")
	r.Join(bob, "bob")
	drain(t, alice)
	drain(t, bob)

	r.Detach(bob)
	r.Guess(alice, "alice", "grape")

	assert.Empty(t, drain(t, bob))
	assert.NotEmpty(t, drain(t, alice))
	// Membership survives the detach.
	assert.Equal(t, []string{"alice", "bob"}, r.Players())
}
