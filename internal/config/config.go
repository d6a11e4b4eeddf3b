// Package config loads graphderiv settings from a TOML file.
//
// Every field has a default from [Default]; a file only needs to list what
// it changes:
//
//	[server]
//	addr = ":8080"
//	static_dir = "./public"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "12h"
//
//	[generate]
//	max_vertices = 30
//
// The file is located with [Resolve]: an explicit path wins, then the
// GRAPHDERIV_CONFIG environment variable. Without either, defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "GRAPHDERIV_CONFIG"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full configuration.
type Config struct {
	Server   Server   `toml:"server"`
	Cache    Cache    `toml:"cache"`
	Generate Generate `toml:"generate"`
	Analysis Analysis `toml:"analysis"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string        `toml:"addr"`
	StaticDir    string        `toml:"static_dir"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	CORSOrigins  []string      `toml:"cors_origins"`
}

// Cache selects and configures the result cache.
type Cache struct {
	Backend       string        `toml:"backend"`
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
	Prefix        string        `toml:"prefix"`
	TTL           time.Duration `toml:"ttl"`
}

// Generate bounds random graph generation requests.
type Generate struct {
	MaxVertices  int    `toml:"max_vertices"`
	MaxSnapshots int    `toml:"max_snapshots"`
	Seed         *int64 `toml:"seed"`
}

// Analysis holds analysis defaults.
type Analysis struct {
	DefaultDelta int `toml:"default_delta"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Addr:         ":5000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		Cache: Cache{
			Backend: BackendFile,
			Dir:     DefaultCacheDir(),
			TTL:     24 * time.Hour,
		},
		Generate: Generate{
			MaxVertices:  30,
			MaxSnapshots: 20,
		},
		Analysis: Analysis{
			DefaultDelta: 2,
		},
	}
}

// Load overlays the TOML file at path onto [Default] and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve picks the config file path: explicit, else $GRAPHDERIV_CONFIG.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(EnvVar)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return fmt.Errorf("%w: cache.backend %q (must be file, redis or none)", ErrInvalid, c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return fmt.Errorf("%w: cache.redis_addr is required for the redis backend", ErrInvalid)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache.ttl must not be negative", ErrInvalid)
	}
	if c.Generate.MaxVertices < 1 || c.Generate.MaxSnapshots < 1 {
		return fmt.Errorf("%w: generate limits must be positive", ErrInvalid)
	}
	if c.Analysis.DefaultDelta < 1 {
		return fmt.Errorf("%w: analysis.default_delta must be >= 1", ErrInvalid)
	}
	return nil
}

// DefaultCacheDir returns the XDG cache directory (~/.cache/graphderiv/).
func DefaultCacheDir() string {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "graphderiv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "graphderiv")
	}
	return filepath.Join(home, ".cache", "graphderiv")
}
