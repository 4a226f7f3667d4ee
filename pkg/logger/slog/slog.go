// Package slog adapts a standard library log/slog handler to the engine's
// logger.Logger interface.
package slog

import (
	"log/slog"
)

type SlogHandler struct {
	logger *slog.Logger
}

// New wraps h so slog-based applications can feed the engine's logs into
// their existing handler chain.
func New(h slog.Handler) *SlogHandler {
	return &SlogHandler{logger: slog.New(h)}
}

func (handler *SlogHandler) Debug(msg string, args ...any) {
	handler.logger.Debug(msg, args...)
}

func (handler *SlogHandler) Info(msg string, args ...any) {
	handler.logger.Info(msg, args...)
}

func (handler *SlogHandler) Warn(msg string, args ...any) {
	handler.logger.Warn(msg, args...)
}

func (handler *SlogHandler) Error(msg string, args ...any) {
	handler.logger.Error(msg, args...)
}
