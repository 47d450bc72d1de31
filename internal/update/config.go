package update

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/tuido/internal/storage"
)

// LogDisabled as LogPath turns logging off.
const LogDisabled = "-"

type RuntimeConfig struct {
	StorePath   string
	Backend     string
	LogPath     string
	AltScreen   bool
	SaveTimeout time.Duration
	StatusTTL   time.Duration
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:     string(storage.BackendJSON),
		AltScreen:   true,
		SaveTimeout: 5 * time.Second,
		StatusTTL:   4 * time.Second,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TUIDO_STORE")); v != "" {
		cfg.StorePath = v
	}
	if v := strings.TrimSpace(os.Getenv("TUIDO_BACKEND")); v != "" {
		cfg.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("TUIDO_LOG_FILE")); v != "" {
		cfg.LogPath = v
	}
	if v, ok := getEnvBool("TUIDO_ALT_SCREEN"); ok {
		cfg.AltScreen = v
	}
	if v, ok := getEnvInt("TUIDO_SAVE_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.SaveTimeout = time.Duration(v) * time.Second
	}
	if v, ok := getEnvInt("TUIDO_STATUS_SECONDS"); ok && v >= 0 {
		cfg.StatusTTL = time.Duration(v) * time.Second
	}
	return cfg
}

// Resolve fills the store and log paths that were left empty with their
// defaults under the user config directory.
func (c RuntimeConfig) Resolve() (RuntimeConfig, error) {
	backend, err := storage.ParseBackend(c.Backend)
	if err != nil {
		return c, err
	}
	c.Backend = string(backend)
	if c.StorePath == "" {
		path, err := storage.DefaultPath(backend)
		if err != nil {
			return c, err
		}
		c.StorePath = path
	}
	if c.LogPath == "" {
		dir, err := storage.DefaultDir()
		if err != nil {
			return c, err
		}
		c.LogPath = filepath.Join(dir, "tuido.log")
	}
	return c, nil
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
