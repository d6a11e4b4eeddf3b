package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graphderiv.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendFile, cfg.Cache.Backend)
	assert.Equal(t, 30, cfg.Generate.MaxVertices)
	assert.Equal(t, 20, cfg.Generate.MaxSnapshots)
	assert.Equal(t, 2, cfg.Analysis.DefaultDelta)
	assert.Nil(t, cfg.Generate.Seed)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlay(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9090"
read_timeout = "5s"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
redis_db = 2
ttl = "90m"

[generate]
seed = 7

[analysis]
default_delta = 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout, "unset keys keep defaults")
	assert.Equal(t, BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, 2, cfg.Cache.RedisDB)
	assert.Equal(t, 90*time.Minute, cfg.Cache.TTL)
	require.NotNil(t, cfg.Generate.Seed)
	assert.Equal(t, int64(7), *cfg.Generate.Seed)
	assert.Equal(t, 30, cfg.Generate.MaxVertices)
	assert.Equal(t, 3, cfg.Analysis.DefaultDelta)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown backend", "[cache]\nbackend = \"memcached\"\n"},
		{"redis without addr", "[cache]\nbackend = \"redis\"\n"},
		{"bad delta", "[analysis]\ndefault_delta = 0\n"},
		{"bad limits", "[generate]\nmax_vertices = 0\n"},
		{"unknown key", "[server]\nport = 80\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Load(writeConfig(t, "[server\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvVar, "/etc/graphderiv.toml")
	assert.Equal(t, "/tmp/x.toml", Resolve("/tmp/x.toml"))
	assert.Equal(t, "/etc/graphderiv.toml", Resolve(""))
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "graphderiv"), DefaultCacheDir())
}
