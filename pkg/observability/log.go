package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event as a debug line on a charm logger. It
// implements [AnalysisHooks], [CacheHooks] and [HTTPHooks].
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnDifferentialStart(_ context.Context, t, delta int) {
	h.logger.Debug("expanding window", "t", t, "delta", delta)
}

func (h *LogHooks) OnDifferentialComplete(_ context.Context, t, delta, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("expansion failed", "t", t, "delta", delta, "err", err)
		return
	}
	h.logger.Debug("expanded window", "t", t, "delta", delta, "nodes", nodeCount, "took", d)
}

func (h *LogHooks) OnAnalyzeStart(_ context.Context, vertexCount, lifetime int) {
	h.logger.Debug("analyzing", "vertices", vertexCount, "lifetime", lifetime)
}

func (h *LogHooks) OnAnalyzeComplete(_ context.Context, d time.Duration, err error) {
	h.logger.Debug("analysis done", "took", d, "err", err)
}

func (h *LogHooks) OnGenerateComplete(_ context.Context, vertexCount, lifetime int, d time.Duration, err error) {
	h.logger.Debug("generated graph", "vertices", vertexCount, "lifetime", lifetime, "took", d, "err", err)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "kind", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "kind", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "kind", keyType, "bytes", size)
}

func (h *LogHooks) OnCacheError(_ context.Context, keyType string, err error) {
	h.logger.Warn("cache error", "kind", keyType, "err", err)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d)
}

func (h *LogHooks) OnError(_ context.Context, method, path, code string) {
	h.logger.Debug("request rejected", "method", method, "path", path, "code", code)
}

var (
	_ AnalysisHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
