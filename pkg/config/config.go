// Package config loads wordgrid settings from a TOML file.
//
// The default location is $XDG_CONFIG_HOME/wordgrid/config.toml, falling back
// to ~/.config/wordgrid/config.toml. A missing file at the default location
// yields [Default]; command-line flags override whatever the file sets.
//
//	[board]
//	width = 4
//	height = 4
//	letters = "abcdefghijklmnop"
//
//	[dictionary]
//	builtin = "common"
//
//	[cache]
//	backend = "file"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//	max_visits = 2000000
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordgrid/pkg/cache"
	apperr "github.com/matzehuels/wordgrid/pkg/errors"
	"github.com/matzehuels/wordgrid/pkg/grid"
	"github.com/matzehuels/wordgrid/pkg/solve"
)

// AppName names the configuration and cache directories.
const AppName = "wordgrid"

// Defaults.
const (
	DefaultServerAddr    = ":8080"
	DefaultRedisAddr     = "localhost:6379"
	DefaultMongoURI      = "mongodb://localhost:27017"
	DefaultMongoDatabase = "wordgrid"
)

// Config is the decoded configuration file.
type Config struct {
	Board      BoardConfig      `toml:"board"`
	Dictionary DictionaryConfig `toml:"dictionary"`
	Cache      CacheConfig      `toml:"cache"`
	Server     ServerConfig     `toml:"server"`
}

// BoardConfig describes the board to search. Rows, when set, replace
// letters and the dimensions.
type BoardConfig struct {
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Letters string   `toml:"letters"`
	Rows    []string `toml:"rows"`
}

// DictionaryConfig selects the word list. Path overrides Builtin.
type DictionaryConfig struct {
	Builtin string `toml:"builtin"`
	Path    string `toml:"path"`
}

// CacheConfig selects the result cache backend.
type CacheConfig struct {
	Backend       string        `toml:"backend"`
	TTL           time.Duration `toml:"ttl"`
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr"`
	MongoURI      string        `toml:"mongo_uri"`
	MongoDatabase string        `toml:"mongo_database"`
}

// ServerConfig configures `wordgrid serve`.
type ServerConfig struct {
	Addr string `toml:"addr"`

	// MaxVisits bounds the paths one solve request may visit. Zero leaves
	// the server default.
	MaxVisits int `toml:"max_visits"`
}

// Default returns the configuration used when no file exists: the 4×4
// reference board, the common dictionary and a file cache.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Width:   grid.StandardWidth,
			Height:  grid.StandardHeight,
			Letters: string(grid.Reference().Letters()),
		},
		Dictionary: DictionaryConfig{Builtin: solve.DefaultBuiltin},
		Cache: CacheConfig{
			Backend:       cache.BackendFile,
			TTL:           cache.TTLResult,
			RedisAddr:     DefaultRedisAddr,
			MongoURI:      DefaultMongoURI,
			MongoDatabase: DefaultMongoDatabase,
		},
		Server: ServerConfig{Addr: DefaultServerAddr},
	}
}

// Load reads the file at path over the defaults. An empty path means the
// default location, where a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := Decode(data, cfg); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses TOML data into cfg and validates the result. Keys absent
// from data keep their current values.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	// Rows replace the letters inherited from the defaults.
	if len(cfg.Board.Rows) > 0 && !md.IsDefined("board", "letters") {
		cfg.Board.Letters = ""
	}
	return cfg.Validate()
}

// Validate checks the board, the dictionary selection, the cache backend
// and the server limits.
func (c *Config) Validate() error {
	if _, err := c.Board(); err != nil {
		return err
	}
	if err := solve.ValidateBuiltin(c.Dictionary.Builtin); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "", cache.BackendNone, cache.BackendMemory, cache.BackendFile, cache.BackendRedis, cache.BackendMongo:
	default:
		return apperr.New(apperr.ErrCodeInvalidConfig,
			"unknown cache backend %q (must be one of: none, memory, file, redis, mongo)", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "cache ttl cannot be negative")
	}
	if c.Server.MaxVisits < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "server max_visits cannot be negative")
	}
	return nil
}

// Board builds the configured board.
func (c *Config) Board() (*grid.Board, error) {
	if len(c.Board.Rows) > 0 {
		if c.Board.Letters != "" {
			return nil, apperr.New(apperr.ErrCodeInvalidConfig, "board: letters and rows are mutually exclusive")
		}
		return grid.ParseRows(c.Board.Rows)
	}
	return grid.ParseBoard(c.Board.Width, c.Board.Height, c.Board.Letters)
}

// SolveOptions converts the board and dictionary sections into solve options.
func (c *Config) SolveOptions() solve.Options {
	opts := solve.Options{
		Builtin:        c.Dictionary.Builtin,
		DictionaryPath: c.Dictionary.Path,
	}
	if len(c.Board.Rows) > 0 {
		opts.Rows = append([]string(nil), c.Board.Rows...)
	} else {
		opts.Width = c.Board.Width
		opts.Height = c.Board.Height
		opts.Letters = c.Board.Letters
	}
	if opts.DictionaryPath != "" {
		opts.Builtin = ""
	}
	return opts
}

// CacheOptions converts the cache section into cache.Open options. The file
// backend uses dir when the section does not name one.
func (c *Config) CacheOptions(dir string) cache.Options {
	if c.Cache.Dir != "" {
		dir = c.Cache.Dir
	}
	return cache.Options{
		Backend: c.Cache.Backend,
		Dir:     dir,
		Redis: cache.RedisConfig{
			Addr:   c.Cache.RedisAddr,
			Prefix: AppName + ":",
		},
		Mongo: cache.MongoConfig{
			URI:      c.Cache.MongoURI,
			Database: c.Cache.MongoDatabase,
		},
	}
}

// DefaultPath returns the XDG location of the configuration file.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the XDG cache directory (~/.cache/wordgrid/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
