package logx

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// NewLogger returns a colored console logger.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	}))
}

// Truncate cuts b to maxLen bytes. Zero or less keeps b whole.
func Truncate(b []byte, maxLen int) []byte {
	if maxLen > 0 && len(b) > maxLen {
		return b[:maxLen]
	}

	return b
}
