// Package logging holds slog helpers shared by the hxassets packages.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelHandler drops records below its level before handing them to the
// wrapped handler.
type LevelHandler struct {
	level slog.Leveler
	slog.Handler
}

func NewLevelHandler(level slog.Leveler, h slog.Handler) *LevelHandler {
	// avoid stacking level handlers
	if lh, ok := h.(*LevelHandler); ok {
		h = lh.Handler
	}
	return &LevelHandler{
		level:   level,
		Handler: h,
	}
}

func (h *LevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.Handler.Enabled(ctx, level)
}

func (h *LevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewLevelHandler(h.level, h.Handler.WithAttrs(attrs))
}

func (h *LevelHandler) WithGroup(name string) slog.Handler {
	return NewLevelHandler(h.level, h.Handler.WithGroup(name))
}

// ParseLevel reads a level name such as "debug" or "WARN", falling back to
// info when raw is empty or unknown.
func ParseLevel(raw string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	return slog.New(NewLevelHandler(level, slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	})))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
