package odlog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes access events to an slog.Logger. Useful for
// development when you want dictionary traffic in the console log.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Debug level, or Warn when it carries an
// error.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("op", event.Op.String()),
	}
	if event.Object != "" {
		attrs = append(attrs, slog.String("object", event.Object))
	}
	if event.Address != 0 {
		attrs = append(attrs, slog.String("address", hexAddr(event.Address)))
	}
	if event.Op == OpRead || event.Op == OpWrite {
		attrs = append(attrs, slog.Uint64("sub", uint64(event.Sub)))
	}
	if event.Detail != "" {
		attrs = append(attrs, slog.String("detail", event.Detail))
	}

	level := slog.LevelDebug
	if event.Err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	a.logger.LogAttrs(context.Background(), level, "dictionary access", attrs...)
}

func hexAddr(addr uint16) string {
	const digits = "0123456789ABCDEF"
	return "0x" + string([]byte{
		digits[addr>>12&0xF],
		digits[addr>>8&0xF],
		digits[addr>>4&0xF],
		digits[addr&0xF],
	})
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
