// Package logger defines the logging contract the blocktree engine emits
// through. The engine never logs on its own account unless a Logger is
// injected, so embedding applications keep full control of their output.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger accepts a message plus alternating key/value pairs, the log/slog
// calling convention. Adapters for other backends only need these four
// methods; see the slog subpackage for one.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ZeroLogger logs through zerolog.
type ZeroLogger struct {
	logger zerolog.Logger
}

// New builds a timestamped JSON logger writing to w.
func New(w io.Writer) *ZeroLogger {
	return &ZeroLogger{logger: zerolog.New(w).With().Timestamp().Logger()}
}

// NewWithLogger wraps an already configured zerolog.Logger, for callers that
// manage their own sinks and levels.
func NewWithLogger(l zerolog.Logger) *ZeroLogger {
	return &ZeroLogger{logger: l}
}

func (z *ZeroLogger) Debug(msg string, args ...any) {
	z.logger.Debug().Fields(args).Msg(msg)
}

func (z *ZeroLogger) Info(msg string, args ...any) {
	z.logger.Info().Fields(args).Msg(msg)
}

func (z *ZeroLogger) Warn(msg string, args ...any) {
	z.logger.Warn().Fields(args).Msg(msg)
}

func (z *ZeroLogger) Error(msg string, args ...any) {
	z.logger.Error().Fields(args).Msg(msg)
}

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }
