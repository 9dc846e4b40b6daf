package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordgrid/pkg/observability"
)

// logHooks reports solve and cache events at debug level. They are
// registered by --verbose.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnSolveStart(_ context.Context, cells int) {
	h.logger.Debug("solve started", "cells", cells)
}

func (h logHooks) OnSolveComplete(_ context.Context, cells, words int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("solve failed", "cells", cells, "duration", d, "error", err)
		return
	}
	h.logger.Debug("solve finished", "cells", cells, "words", words, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache write", "type", keyType, "bytes", size)
}

// registerLogHooks routes observability events to logger.
func registerLogHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetSolveHooks(h)
	observability.SetCacheHooks(h)
}

var (
	_ observability.SolveHooks = logHooks{}
	_ observability.CacheHooks = logHooks{}
)
