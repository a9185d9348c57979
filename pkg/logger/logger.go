package logger

import "go.uber.org/zap"

// New returns a sugared zap logger tagged with the service name.
// Services pass this single instance down; packages never construct
// their own loggers.
func New(service string) *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if err != nil {
		panic("cannot initialize zap: " + err.Error())
	}
	return l.Sugar().With("service", service)
}

// NewNop returns a no-op logger for tests.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
