package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// NewLogger returns a logger writing to w at level.
//
// Colour follows mode: "always" and "never" are explicit, "auto" colours only
// when w is a terminal. Coloured output goes through tint; plain output uses
// slog's text handler so it stays machine-readable.
func NewLogger(w io.Writer, level slog.Leveler, mode string) *slog.Logger {
	out, tty := w, false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		if tty {
			out = colorable.NewColorable(f)
		}
	}

	color := mode == "always" || (mode == "auto" && tty)
	if !color {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(out, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
	}))
}
