// Package config resolves runtime settings for the notify service from the
// environment, with a .env file honored when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort is the fixed port external tooling expects.
	DefaultPort = 8765

	configDirName = "tars"
	soundsSubDir  = "sounds"
)

// Config holds the resolved process settings. It is built once at startup
// and passed explicitly into the server and player.
type Config struct {
	Port      int
	SoundsDir string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	soundsDir := os.Getenv("TARS_SOUNDS_DIR")
	if soundsDir == "" {
		d, err := defaultSoundsDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve sounds dir: %w", err)
		}
		soundsDir = d
	}

	return Config{
		Port:      envInt("TARS_PORT", DefaultPort),
		SoundsDir: soundsDir,
	}, nil
}

// BaseURL is the HTTP address control clients use to reach the service.
func (c Config) BaseURL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

func defaultSoundsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", configDirName, soundsSubDir), nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
