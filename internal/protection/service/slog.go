package service

import (
	"log/slog"
)

// ReplaceAttr returns a slog.HandlerOptions.ReplaceAttr hook that masks attributes
// whose keys name sensitive fields.
func ReplaceAttr(m Masker) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Value.Kind() == slog.KindGroup {
			return a
		}
		if masked, ok := m.MaskField(a.Key, a.Value.Any()); ok {
			return slog.Any(a.Key, masked)
		}
		return a
	}
}
