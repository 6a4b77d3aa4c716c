// Package debug carries the debug logging of the bitinfo packages.
//
// Logging is disabled by default and turned on with Toggle.
package debug

import (
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	enabled int32 = 0
	logger        = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	return l
}

// Toggle turns on/off debug mode
func Toggle(on bool) {
	val := int32(0)
	if on {
		val = 1
	}
	atomic.StoreInt32(&enabled, val)
}

// Enabled reports whether debug mode is on.
func Enabled() bool {
	return atomic.LoadInt32(&enabled) == 1
}

// Format a log line and writes it to stderr if debug is enabled
func Format(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	logger.Debugf(format, args...)
}

// Log writes msg with the given fields to stderr if debug is enabled
func Log(fields logrus.Fields, msg string) {
	if !Enabled() {
		return
	}
	logger.WithFields(fields).Debug(msg)
}
