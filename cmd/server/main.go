// cmd/server/main.go
package main

import (
	"net"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/SMART-YANG1/wordle-assignment/internal/config"
	"github.com/SMART-YANG1/wordle-assignment/internal/scoreboard"
	"github.com/SMART-YANG1/wordle-assignment/internal/server"
	"github.com/SMART-YANG1/wordle-assignment/internal/words"
)

func main() {
	cfg := config.FromEnv()

	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	vocab := loadWords(cfg, logger)

	var scores *scoreboard.Publisher
	if cfg.RedisAddr != "" {
		var err error
		scores, err = scoreboard.NewPublisher(cfg.RedisAddr, cfg.ScoreQueue)
		if err != nil {
			logger.WithError(err).Warn("scoreboard queue unavailable, continuing without it")
		} else {
			defer scores.Close()
			logger.WithField("queue", cfg.ScoreQueue).Info("scoreboard queue connected")
		}
	}

	srv := server.New(cfg, logger, vocab, scores)

	l, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		logger.Fatalf("failed to listen: %v", err)
	}
	logger.WithFields(logrus.Fields{"addr": l.Addr().String(), "words": vocab.Len()}).
		Info("wordle server listening")

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(l)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	select {
	case err := <-errc:
		if err != nil {
			logger.Errorf("failed to serve: %v", err)
		}
	case sig := <-sigs:
		logger.Infof("terminating: %v", sig)
	}
	l.Close()
}

func loadWords(cfg config.Config, logger *logrus.Logger) *words.List {
	if cfg.WordsFile == "" {
		logger.Info("WORDS_FILE not set, using embedded word list")
		return words.Default()
	}
	vocab, err := words.Load(cfg.WordsFile)
	if err != nil {
		logger.Fatalf("failed to load word list: %v", err)
	}
	logger.WithFields(logrus.Fields{"path": cfg.WordsFile, "count": vocab.Len()}).
		Info("word list loaded")
	return vocab
}
