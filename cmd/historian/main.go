// cmd/historian/main.go is an asynchronous worker that pops scoreboard
// records from the Redis queue and persists them to PostgreSQL in batches.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/SMART-YANG1/wordle-assignment/internal/database"
	"github.com/SMART-YANG1/wordle-assignment/internal/scoreboard"
)

// Historian encapsulates the Redis consumer and the batched DB writer.
type Historian struct {
	rdb        *redis.Client
	queue      string
	batchSize  int
	flushDelay time.Duration

	batchMu sync.Mutex
	batch   []scoreboard.Record

	ctx      context.Context
	cancelFn context.CancelFunc
}

// NewHistorian builds a Historian from environment variables or defaults.
func NewHistorian() *Historian {
	ctx, cancel := context.WithCancel(context.Background())
	return &Historian{
		rdb: redis.NewClient(&redis.Options{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		}),
		queue:      getEnv("SCORE_QUEUE_NAME", scoreboard.DefaultQueueName),
		batchSize:  getEnvInt("HISTORIAN_BATCH_SIZE", 20),
		flushDelay: time.Duration(getEnvInt("HISTORIAN_FLUSH_MS", 500)) * time.Millisecond,
		ctx:        ctx,
		cancelFn:   cancel,
	}
}

// Run connects the database, ensures the schema, and consumes the queue
// until the context is cancelled.
func (h *Historian) Run() error {
	if err := database.ConnectDB(); err != nil {
		return err
	}
	if err := database.EnsureSchema(h.ctx); err != nil {
		return err
	}

	go h.readRedisLoop()

	log.Info("wordle-historian started")
	<-h.ctx.Done()
	h.flushBatch()
	log.Info("wordle-historian shutting down")
	return nil
}

// Stop cancels the consumer loops.
func (h *Historian) Stop() {
	h.cancelFn()
}

// readRedisLoop pops records with BLPop and accumulates them, flushing on a
// timer or when the batch fills up.
func (h *Historian) readRedisLoop() {
	ticker := time.NewTicker(h.flushDelay)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return

		case <-ticker.C:
			h.flushBatch()

		default:
			// BLPop with a short timeout so cancellation is handled promptly.
			res, err := h.rdb.BLPop(h.ctx, 3*time.Second, h.queue).Result()
			if err != nil {
				if !errors.Is(err, redis.Nil) && !errors.Is(err, context.Canceled) {
					log.WithError(err).Error("blpop")
				}
				continue
			}
			if len(res) < 2 {
				continue
			}

			var rec scoreboard.Record
			if err := json.Unmarshal([]byte(res[1]), &rec); err != nil {
				log.WithError(err).Warn("invalid scoreboard record, skipping")
				continue
			}
			h.appendToBatch(rec)
		}
	}
}

// appendToBatch adds a record and flushes when the threshold is reached.
func (h *Historian) appendToBatch(rec scoreboard.Record) {
	h.batchMu.Lock()
	defer h.batchMu.Unlock()
	h.batch = append(h.batch, rec)
	if len(h.batch) >= h.batchSize {
		h.flushBatchLocked()
	}
}

// flushBatch writes the pending batch to the database in one transaction.
func (h *Historian) flushBatch() {
	h.batchMu.Lock()
	defer h.batchMu.Unlock()
	h.flushBatchLocked()
}

func (h *Historian) flushBatchLocked() {
	if len(h.batch) == 0 {
		return
	}
	batchCopy := make([]scoreboard.Record, len(h.batch))
	copy(batchCopy, h.batch)
	h.batch = h.batch[:0]

	ctx := context.Background()
	err := pgx.BeginTxFunc(ctx, database.DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, rec := range batchCopy {
			if err := database.InsertScoreTx(ctx, tx, rec); err != nil {
				return fmt.Errorf("insert score: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("flush batch")
		return
	}
	log.Infof("flushed %d scoreboard records", len(batchCopy))
}

func main() {
	h := NewHistorian()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		h.Stop()
	}()

	if err := h.Run(); err != nil {
		log.Fatalf("historian: %v", err)
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return def
	}
	return v
}
