package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// StatsURL is the endpoint the probe checks. It is fixed on purpose and has
// no environment override.
const StatsURL = "http://localhost:5001/api/stats"

type Config struct {
	LogDir      string        // empty logs JSON to stderr; otherwise a rotated file in this dir
	HTTPTimeout time.Duration // 0 disables the client timeout
	StubAddr    string        // bind address for cmd/stubstats
	StubSeed    int           // demo students seeded by cmd/stubstats
}

// LoadDotEnv reads a .env file from the working directory if one exists.
// A missing file is not an error.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

func FromEnv() Config {
	logDir := os.Getenv("LOG_DIR")

	timeout := 10 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	addr := os.Getenv("STUB_ADDR")
	if addr == "" {
		addr = "127.0.0.1:5001"
	}

	seed := 3
	if v := os.Getenv("STUB_SEED"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			seed = n
		}
	}

	return Config{
		LogDir:      logDir,
		HTTPTimeout: timeout,
		StubAddr:    addr,
		StubSeed:    seed,
	}
}
