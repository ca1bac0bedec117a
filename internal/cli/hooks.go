package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks writes observability events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnParseStart(_ context.Context, size int) {
	h.logger.Debug("parse start", "bytes", size)
}

func (h *logHooks) OnParseComplete(_ context.Context, cases, rows int, d time.Duration, err error) {
	h.logger.Debug("parse complete", "cases", cases, "rows", rows, "duration", d, "error", err)
}

func (h *logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render start", "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.logger.Debug("render complete", "format", format, "bytes", size, "duration", d, "error", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("http request", "method", method, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "path", path, "status", status, "duration", d)
}

func (h *logHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Debug("http error", "method", method, "path", path, "error", err)
}
