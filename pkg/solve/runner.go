package solve

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordgrid/pkg/cache"
	"github.com/matzehuels/wordgrid/pkg/dict"
	apperr "github.com/matzehuels/wordgrid/pkg/errors"
	"github.com/matzehuels/wordgrid/pkg/grid"
	"github.com/matzehuels/wordgrid/pkg/observability"
	"github.com/matzehuels/wordgrid/pkg/search"
)

// cacheKeyType labels result entries in cache hooks.
const cacheKeyType = "result"

// Runner encapsulates solving with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long results stay cached; zero means cache.TTLResult.
	TTL time.Duration

	// MaxVisits bounds the paths one search may visit; zero means no bound.
	// A search that reaches it fails with INVALID_INPUT instead of a partial
	// result.
	MaxVisits int
}

// CacheScope prefixes the keys of the default keyer. It changes whenever the
// cached payload does, so old entries are never decoded into the new shape.
const CacheScope = "v1:"

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer scoped by CacheScope is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), CacheScope)
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedResult is the cache payload of a solve.
type cachedResult struct {
	Matches []search.Match `json:"matches"`
	Stats   search.Stats   `json:"stats"`
}

// Solve builds the board and the dictionary, then returns the cached result
// or runs the search.
//
// The search checks ctx every search.StopInterval visited paths, so a
// cancelled or expired context ends it early with ctx.Err().
func (r *Runner) Solve(ctx context.Context, opts Options) (res *Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	start := time.Now()
	b, err := opts.Board()
	if err != nil {
		return nil, err
	}
	if len(opts.Start) > 0 {
		if err := apperr.ValidatePath(opts.Start, b.Cells()); err != nil {
			return nil, err
		}
	}
	d, dictHash, err := opts.Dictionary()
	if err != nil {
		return nil, err
	}

	observability.Solve().OnSolveStart(ctx, b.Cells())
	defer func() {
		words := 0
		if res != nil {
			words = len(res.Matches)
		}
		observability.Solve().OnSolveComplete(ctx, b.Cells(), words, time.Since(start), err)
	}()

	key := r.Keyer.ResultKey(BoardHash(b), dictHash, cache.ResultKeyOpts{Start: opts.Start, Traced: true})
	res = &Result{Board: b}

	if !opts.Refresh {
		if cached, ok := r.lookup(ctx, logger, key); ok {
			res.Matches = cached.Matches
			res.Stats = cached.Stats
			res.CacheHit = true
		}
	}

	if !res.CacheHit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.Matches, res.Stats, err = r.search(ctx, b, d, opts.Start)
		if err != nil {
			return nil, err
		}
		r.store(ctx, logger, key, cachedResult{Matches: res.Matches, Stats: res.Stats})
	}

	res.Words = make([]string, len(res.Matches))
	for i, m := range res.Matches {
		res.Words[i] = m.Word
	}
	if opts.Unique {
		res.Words = Unique(res.Words)
	}
	res.Duration = time.Since(start)

	logger.Debug("solved board",
		"cells", b.Cells(),
		"words", len(res.Words),
		"visited", res.Stats.Visited,
		"pruned", res.Stats.Pruned,
		"cached", res.CacheHit,
		"duration", res.Duration)

	return res, nil
}

// search runs the walk from start, or from every cell when start is empty,
// stopping early when ctx is done or MaxVisits is exceeded.
func (r *Runner) search(ctx context.Context, b *grid.Board, d dict.Dictionary, start []int) ([]search.Match, search.Stats, error) {
	stop := func(s search.Stats) bool {
		return ctx.Err() != nil || (r.MaxVisits > 0 && s.Visited >= r.MaxVisits)
	}

	var (
		matches []search.Match
		stats   search.Stats
		done    bool
	)
	if len(start) > 0 {
		matches, stats, done = search.TraceFromUntil(grid.NewPath(start...), b, d, stop)
	} else {
		matches, stats, done = search.TraceAllUntil(b, d, stop)
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	if !done {
		return nil, stats, apperr.New(apperr.ErrCodeInvalidInput,
			"search stopped after %d paths (limit %d); use a smaller board or a more selective dictionary",
			stats.Visited, r.MaxVisits)
	}
	return matches, stats, nil
}

// lookup reads a cached result. Cache errors and corrupt entries are misses.
func (r *Runner) lookup(ctx context.Context, logger *log.Logger, key string) (cachedResult, bool) {
	var cached cachedResult
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Debug("cache read failed", "key", key, "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return cached, false
	}
	if err := json.Unmarshal(data, &cached); err != nil {
		logger.Debug("discarding corrupt cache entry", "key", key, "error", err)
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return cached, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return cached, true
}

// store writes a result to the cache. Failures are logged and ignored.
func (r *Runner) store(ctx context.Context, logger *log.Logger, key string, v cachedResult) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Debug("encode cache entry", "error", err)
		return
	}
	ttl := r.TTL
	if ttl == 0 {
		ttl = cache.TTLResult
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Debug("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

// BoardHash identifies a board by its shape and letters.
func BoardHash(b *grid.Board) string {
	t := b.Topology()
	return cache.Hash([]byte(fmt.Sprintf("%dx%d:%s", t.Width, t.Height, string(b.Letters()))))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
