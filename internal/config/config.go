// internal/config/config.go
//
// Environment-backed configuration. Entrypoints blank-import
// godotenv/autoload so a local .env file is picked up in development.
package config

import (
	"os"
	"strconv"
)

// Config holds the server process settings.
type Config struct {
	Host       string // listen host
	Port       string // listen port
	WordsFile  string // optional path to a word list; embedded default if empty
	RedisAddr  string // optional scoreboard queue address; disabled if empty
	ScoreQueue string // Redis list name for scoreboard records
	LogLevel   string // logrus level name
	ConnBuffer int    // per-connection outbound message buffer
}

// FromEnv builds a Config from environment variables with sane defaults.
func FromEnv() Config {
	return Config{
		Host:       getEnv("WORDLE_HOST", "127.0.0.1"),
		Port:       getEnv("WORDLE_PORT", "5050"),
		WordsFile:  getEnv("WORDS_FILE", ""),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		ScoreQueue: getEnv("SCORE_QUEUE_NAME", "wordle_scores"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		ConnBuffer: getEnvInt("CONN_BUFFER", 32),
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt parses an environment variable as an integer, else a default.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
