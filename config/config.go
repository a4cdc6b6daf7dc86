package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel   string
	LayoutPath string
	Plain      bool
	RandomSeed int64
}

// Load reads the optional .env file and then the SEEDGARDEN_* environment variables.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit .env path. A missing file is not an error.
func LoadFile(envPath string) (Config, error) {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	cfg := Config{
		LogLevel:   "info",
		LayoutPath: os.Getenv("SEEDGARDEN_LAYOUT"),
	}

	if level := os.Getenv("SEEDGARDEN_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if plain := os.Getenv("SEEDGARDEN_PLAIN"); plain != "" {
		v, err := strconv.ParseBool(plain)
		if err != nil {
			return Config{}, fmt.Errorf("SEEDGARDEN_PLAIN must be a boolean, got %q", plain)
		}
		cfg.Plain = v
	}

	if seed := strings.TrimSpace(os.Getenv("SEEDGARDEN_RANDOM_SEED")); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SEEDGARDEN_RANDOM_SEED must be an integer, got %q", seed)
		}
		cfg.RandomSeed = v
	}

	return cfg, nil
}
