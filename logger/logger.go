// Package logger is the zap-backed logger shared by the commands. Numerical
// packages do not log; they return errors.
package logger

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrInit = errors.New("logger: can't initialize zap logger")

var log *zap.SugaredLogger

// Init installs a development logger when debug is set, a production
// logger otherwise.
func Init(debug bool) error {
	if debug {
		return build(zap.NewDevelopmentConfig())
	}
	return build(zap.NewProductionConfig())
}

func build(cfg zap.Config) error {
	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInit, err)
	}
	log = zapLogger.Sugar()
	return nil
}

// SetLogger replaces the package logger, mostly for tests.
func SetLogger(l *zap.Logger) {
	log = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// Logger returns the sugared logger, a no-op logger before Init.
func Logger() *zap.SugaredLogger {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Debugf(template string, args ...interface{}) {
	Logger().Debugf(template, args...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	Logger().Debugw(msg, keysAndValues...)
}

func Infof(template string, args ...interface{}) {
	Logger().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	Logger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	Logger().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	Logger().Errorw(msg, keysAndValues...)
}
