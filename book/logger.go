package book

import "go.uber.org/zap"

// Logger is the narrow logging surface the engine needs off its hot path:
// pool growth, rejected operations, and construction. It is satisfied by
// *zap.SugaredLogger directly, and intentionally excludes anything the
// crossing loop itself would call, since structured logging on every
// trade would defeat the engine's microsecond budget.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

// nopLogger is the zero-cost default when no logger is configured.
type nopLogger struct{}

func (nopLogger) Debugw(string, ...interface{}) {}
func (nopLogger) Warnw(string, ...interface{})  {}

// NewZapLogger adapts a *zap.Logger to the book.Logger interface.
func NewZapLogger(l *zap.Logger) Logger {
	return l.Sugar()
}
