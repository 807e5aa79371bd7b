// Package rlog is a small internal logging wrapper built on
// go.uber.org/zap.
//
// It only ever produces output when enabled: that means a SugaredLogger
// has been installed with SetLogger; the zero value is a safe no-op so
// library code can log freely without forcing every caller to configure
// a logger.
package rlog

import "go.uber.org/zap"

var logger *zap.SugaredLogger

// SetLogger installs the logger used for internal diagnostics. Passing nil
// reverts to the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	logger = l
}

// Debugf logs a debug-level diagnostic if a logger has been installed.
func Debugf(format string, args ...interface{}) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Debugw logs a debug-level diagnostic with structured key/value pairs.
func Debugw(msg string, keysAndValues ...interface{}) {
	if logger != nil {
		logger.Debugw(msg, keysAndValues...)
	}
}

// Warnf logs a warn-level diagnostic if a logger has been installed.
func Warnf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warnf(format, args...)
	}
}
