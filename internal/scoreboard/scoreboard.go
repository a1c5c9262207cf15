// internal/scoreboard/scoreboard.go
//
// Scoreboard queue publisher. Finished rounds are serialized to JSON and
// pushed onto a Redis list; the historian worker (cmd/historian) pops them
// and persists to PostgreSQL. The game server never talks to the database
// directly, so a slow or absent scoreboard pipeline cannot stall a room.
package scoreboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultQueueName is the Redis list name for scoreboard records.
const DefaultQueueName = "wordle_scores"

// Record is one finished round. Player is the winner for won rounds and the
// last guesser otherwise.
type Record struct {
	ID        uuid.UUID `json:"id"`
	GameID    string    `json:"game_id"`
	Player    string    `json:"player"`
	Rounds    int       `json:"rounds"`
	Win       bool      `json:"win"`
	Timestamp int64     `json:"timestamp"` // epoch millis
}

// Publisher pushes records onto the Redis queue.
type Publisher struct {
	rdb   *redis.Client
	queue string
}

// NewPublisher connects a Redis client and verifies it with a short ping.
func NewPublisher(addr, queue string) (*Publisher, error) {
	if queue == "" {
		queue = DefaultQueueName
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect to Redis at %s: %w", addr, err)
	}
	return &Publisher{rdb: rdb, queue: queue}, nil
}

// Publish serializes the record and pushes it onto the queue.
func (p *Publisher) Publish(ctx context.Context, rec Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Timestamp == 0 {
		rec.Timestamp = time.Now().UnixMilli()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal scoreboard record: %w", err)
	}
	if err := p.rdb.RPush(ctx, p.queue, data).Err(); err != nil {
		return fmt.Errorf("rpush to %s: %w", p.queue, err)
	}
	return nil
}

// Close releases the underlying Redis client.
func (p *Publisher) Close() error {
	return p.rdb.Close()
}
