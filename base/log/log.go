package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields to be added to a logger
type Fields map[string]interface{}

// Logger carries a sugared zap logger and the key/value pairs bound to it
type Logger struct {
	logger *zap.SugaredLogger
	fields []interface{}
}

var (
	mu               sync.RWMutex
	zapSugaredLogger *zap.SugaredLogger
	level            = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	zapLogger, _ := cfg.Build(zap.AddCallerSkip(1))
	zapSugaredLogger = zapLogger.Sugar()
}

// SetDebug switches the process-wide level between debug and info.
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Replace swaps the underlying zap logger, tests use it with zaptest/observer.
func Replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	zapSugaredLogger = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// Log returns an empty field logger
func Log() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return Logger{
		logger: zapSugaredLogger,
		fields: []interface{}{},
	}
}

// WithField add a key/value pair to its fields
func (l Logger) WithField(key string, value interface{}) Logger {
	fields := make([]interface{}, 0, len(l.fields)+2)
	fields = append(fields, l.fields...)
	l.fields = append(fields, key, value)
	return l
}

// WithFields add multiple key/value pairs to its fields
func (l Logger) WithFields(kvs Fields) Logger {
	for k, v := range kvs {
		l = l.WithField(k, v)
	}
	return l
}

// WithError is a shorthand for WithField("err", err)
func (l Logger) WithError(err error) Logger {
	return l.WithField("err", err)
}

func (l Logger) Debug(args ...interface{}) {
	l.logger.With(l.fields...).Debug(args...)
}

func (l Logger) Info(args ...interface{}) {
	l.logger.With(l.fields...).Info(args...)
}

func (l Logger) Warn(args ...interface{}) {
	l.logger.With(l.fields...).Warn(args...)
}

func (l Logger) Error(args ...interface{}) {
	l.logger.With(l.fields...).Error(args...)
}

func (l Logger) Panic(args ...interface{}) {
	l.logger.With(l.fields...).Panic(args...)
}
