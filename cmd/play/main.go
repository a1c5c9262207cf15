// cmd/play/main.go is a local single-player colored CLI game. It exercises
// the same engine the server uses and optionally records the result to the
// scoreboard queue when REDIS_ADDR is set.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"

	"github.com/SMART-YANG1/wordle-assignment/internal/config"
	"github.com/SMART-YANG1/wordle-assignment/internal/game"
	"github.com/SMART-YANG1/wordle-assignment/internal/scoreboard"
	"github.com/SMART-YANG1/wordle-assignment/internal/words"
)

func main() {
	cfg := config.FromEnv()

	vocab := words.Default()
	if cfg.WordsFile != "" {
		var err error
		vocab, err = words.Load(cfg.WordsFile)
		if err != nil {
			log.Fatalf("load word list: %v", err)
		}
	}

	g := game.NewNormal("", vocab)

	fmt.Printf("Wordle: you have %d chances to guess a %d-letter word.\n",
		game.MaxAttempts, words.WordLength)
	fmt.Print("Enter your name: ")
	in := bufio.NewScanner(os.Stdin)
	player := "anon"
	if in.Scan() {
		if name := strings.TrimSpace(in.Text()); name != "" {
			player = name
		}
	}

	attempt := 1
	for {
		fmt.Printf("Guess #%d: ", attempt)
		if !in.Scan() {
			return
		}
		word := strings.ToLower(strings.TrimSpace(in.Text()))
		if word == "" {
			continue
		}
		res, err := g.Apply(player, word)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		attempt++
		fmt.Printf("%s  (remaining attempts: %d)\n", colorize(res.Tokens, word), res.Remaining)

		if res.Won {
			rounds := game.MaxAttempts - res.Remaining
			fmt.Printf("congratulations %s, you guessed it in %d rounds.\n", player, rounds)
			record(cfg, player, rounds, true)
			return
		}
		if res.Over {
			fmt.Printf("game over, the answer was %s.\n", strings.ToUpper(g.Answer()))
			record(cfg, player, game.MaxAttempts, false)
			return
		}
	}
}

// colorize renders the guess with per-letter feedback colors: green hit,
// yellow present, gray miss.
func colorize(tokens []game.Token, word string) string {
	var b strings.Builder
	for i, t := range tokens {
		var color string
		switch t {
		case game.TokenHit:
			color = "\033[92m"
		case game.TokenPresent:
			color = "\033[93m"
		default:
			color = "\033[90m"
		}
		b.WriteString(color)
		b.WriteByte(word[i] - 'a' + 'A')
		b.WriteString("\033[0m")
	}
	return b.String()
}

// record publishes the result to the scoreboard queue if one is configured.
func record(cfg config.Config, player string, rounds int, win bool) {
	if cfg.RedisAddr == "" {
		return
	}
	p, err := scoreboard.NewPublisher(cfg.RedisAddr, cfg.ScoreQueue)
	if err != nil {
		log.WithError(err).Warn("scoreboard unavailable, result not recorded")
		return
	}
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rec := scoreboard.Record{GameID: "local", Player: player, Rounds: rounds, Win: win}
	if err := p.Publish(ctx, rec); err != nil {
		log.WithError(err).Warn("scoreboard publish failed")
		return
	}
	fmt.Println("result recorded to the scoreboard queue.")
}
