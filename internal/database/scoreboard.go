// internal/database/scoreboard.go
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SMART-YANG1/wordle-assignment/internal/scoreboard"
)

// EnsureSchema creates the scoreboard table if it does not exist.
func EnsureSchema(ctx context.Context) error {
	q := `
		CREATE TABLE IF NOT EXISTS scoreboard (
			id          UUID PRIMARY KEY,
			game_id     TEXT NOT NULL,
			player      TEXT NOT NULL,
			rounds      INT NOT NULL,
			win         BOOLEAN NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := DB.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure scoreboard schema: %w", err)
	}
	return nil
}

// InsertScoreTx inserts one scoreboard record within an open transaction.
func InsertScoreTx(ctx context.Context, tx pgx.Tx, rec scoreboard.Record) error {
	q := `
		INSERT INTO scoreboard (id, game_id, player, rounds, win, recorded_at)
		VALUES ($1, $2, $3, $4, $5, to_timestamp($6::double precision / 1000))
		ON CONFLICT (id) DO NOTHING
	`
	_, err := tx.Exec(ctx, q, rec.ID, rec.GameID, rec.Player, rec.Rounds, rec.Win, rec.Timestamp)
	return err
}

// TopScores returns the most recent winning records, newest first.
func TopScores(ctx context.Context, limit int) ([]scoreboard.Record, error) {
	q := `
		SELECT id, game_id, player, rounds, win,
		       (EXTRACT(EPOCH FROM recorded_at) * 1000)::bigint
		FROM scoreboard
		WHERE win
		ORDER BY recorded_at DESC
		LIMIT $1
	`
	rows, err := DB.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scoreboard.Record
	for rows.Next() {
		var rec scoreboard.Record
		if err := rows.Scan(&rec.ID, &rec.GameID, &rec.Player, &rec.Rounds, &rec.Win, &rec.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
