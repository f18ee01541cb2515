package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/touchmatrix/pkg/observability"
)

// logHooks reports pipeline events as debug logs.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnLayoutStart(_ context.Context, screenCount, target int) {
	h.logger.Debug("layout started", "screens", screenCount, "index", target)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, w, hgt int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "err", err)
		return
	}
	h.logger.Debug("layout complete", "canvas_width", w, "canvas_height", hgt, "duration", d)
}

func (h *logHooks) OnMatrixStart(_ context.Context, rotation string) {
	h.logger.Debug("matrix started", "rotation", rotation)
}

func (h *logHooks) OnMatrixComplete(_ context.Context, rotation string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("matrix failed", "rotation", rotation, "err", err)
		return
	}
	h.logger.Debug("matrix complete", "rotation", rotation, "duration", d)
}

func (h *logHooks) OnWrite(_ context.Context, format string, size int, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size)
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.OutputHooks   = (*logHooks)(nil)
)
