// Package logger provides the package-level leveled loggers used throughout
// this repository, in the call-site convention of logger.Warn.Println(...)
// rather than threading a logger value through every function signature.
// Backed by logrus instead of a bespoke writer.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Level-scoped loggers. Each wraps the same underlying logrus.Logger at a
// fixed level, so call sites read as logger.Warn.Println("...") the way the
// teacher's logger.Trace/logger.Info/logger.Error package-level vars do.
var (
	base  = newBase()
	Trace = &leveled{base, logrus.TraceLevel}
	Debug = &leveled{base, logrus.DebugLevel}
	Info  = &leveled{base, logrus.InfoLevel}
	Warn  = &leveled{base, logrus.WarnLevel}
	Error = &leveled{base, logrus.ErrorLevel}
)

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel adjusts the minimum level that reaches the output, e.g. raising
// it to logrus.TraceLevel/DebugLevel under --debug.
func SetLevel(level logrus.Level) {
	base.SetLevel(level)
}

type leveled struct {
	l     *logrus.Logger
	level logrus.Level
}

func (lv *leveled) Println(args ...interface{}) {
	lv.l.Log(lv.level, args...)
}

func (lv *leveled) Printf(format string, args ...interface{}) {
	lv.l.Logf(lv.level, format, args...)
}
