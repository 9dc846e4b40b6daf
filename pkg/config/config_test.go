package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wordgrid/pkg/cache"
	apperr "github.com/matzehuels/wordgrid/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	b, err := cfg.Board()
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd", "efgh", "ijkl", "mnop"}, b.Rows())
	assert.Equal(t, "common", cfg.Dictionary.Builtin)
	assert.Equal(t, cache.BackendFile, cfg.Cache.Backend)
	assert.Equal(t, cache.TTLResult, cfg.Cache.TTL)
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Zero(t, cfg.Server.MaxVisits)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[board]
width = 3
height = 2
letters = "catdog"

[dictionary]
builtin = "exact:cat"

[cache]
backend = "redis"
ttl = "90m"
redis_addr = "cache:6379"

[server]
addr = "127.0.0.1:9000"
max_visits = 50000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	b, err := cfg.Board()
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, b.Rows())
	assert.Equal(t, "exact:cat", cfg.Dictionary.Builtin)
	assert.Equal(t, cache.BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, 90*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 50000, cfg.Server.MaxVisits)

	// Unset keys keep their defaults
	assert.Equal(t, DefaultMongoURI, cfg.Cache.MongoURI)
}

func TestLoadRows(t *testing.T) {
	path := writeConfig(t, `
[board]
rows = ["kno", "iop"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Board.Letters)

	b, err := cfg.Board()
	require.NoError(t, err)
	assert.Equal(t, 3, b.Topology().Width)
	assert.Equal(t, 2, b.Topology().Height)

	opts := cfg.SolveOptions()
	assert.Equal(t, []string{"kno", "iop"}, opts.Rows)
	assert.Empty(t, opts.Letters)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[board\nwidth = 4"},
		{"unknown key", "[board]\ncolour = \"red\""},
		{"bad letters", "[board]\nletters = \"abc\""},
		{"rows and letters", "[board]\nletters = \"ab\"\nrows = [\"ab\"]"},
		{"ragged rows", "[board]\nrows = [\"ab\", \"c\"]"},
		{"bad builtin", "[dictionary]\nbuiltin = \"klingon\""},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"negative ttl", "[cache]\nttl = \"-1h\""},
		{"negative max visits", "[server]\nmax_visits = -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Equal(t, apperr.ErrCodeInvalidConfig, apperr.GetCode(err))
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Equal(t, apperr.ErrCodeFileNotFound, apperr.GetCode(err))
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, AppName), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, AppName, "config.toml"),
		[]byte("[server]\naddr = \":9999\"\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}

func TestSolveOptions(t *testing.T) {
	cfg := Default()
	cfg.Dictionary.Path = "/usr/share/dict/words"

	opts := cfg.SolveOptions()
	assert.Equal(t, 4, opts.Width)
	assert.Equal(t, "abcdefghijklmnop", opts.Letters)
	assert.Equal(t, "/usr/share/dict/words", opts.DictionaryPath)
	assert.Empty(t, opts.Builtin, "path overrides builtin")
}

func TestCacheOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.CacheOptions("/tmp/wordgrid")
	assert.Equal(t, "/tmp/wordgrid", opts.Dir)
	assert.Equal(t, DefaultRedisAddr, opts.Redis.Addr)
	assert.Equal(t, "wordgrid:", opts.Redis.Prefix)
	assert.Equal(t, DefaultMongoDatabase, opts.Mongo.Database)

	cfg.Cache.Dir = "/var/cache/wordgrid"
	assert.Equal(t, "/var/cache/wordgrid", cfg.CacheOptions("/tmp/wordgrid").Dir)
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/config", AppName, "config.toml"), p)

	d, err := CacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/cache", AppName), d)
}

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := CacheDir()
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".cache", AppName), dir)
}
