// Package logger provides structured, leveled logging.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger handles writing structured log messages. Messages carry a
// namespace ("ns" field) plus variadic key-value fields.
type Logger struct {
	base  *logrus.Logger
	entry *logrus.Entry
}

// NewLogger returns a new Logger instance with the given namespace,
// configured by conf.
func NewLogger(ns string, conf Config) *Logger {
	base := logrus.New()
	log := &Logger{base: base, entry: base.WithField("ns", ns)}
	log.Configure(conf)
	return log
}

// Sub returns a child logger with the given namespace and fields.
// The child shares the parent's output, level, and formatter.
func (l *Logger) Sub(ns string, args ...interface{}) *Logger {
	f := fields(args...)
	f["ns"] = ns
	return &Logger{base: l.base, entry: l.base.WithFields(f)}
}

// WithFields returns a new Logger with the given fields added to all messages.
func (l *Logger) WithFields(args ...interface{}) *Logger {
	return &Logger{base: l.base, entry: l.entry.WithFields(fields(args...))}
}

// Debug logs a debug message.
//
// After the first argument, arguments are key-value pairs:
//
//	log.Debug("Some message here", "key1", value1, "key2", value2)
func (l *Logger) Debug(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry.WithFields(fields(args...)).Debug(msg)
}

// Info logs an info message. Arguments follow the same key-value
// convention as Debug.
func (l *Logger) Info(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry.WithFields(fields(args...)).Info(msg)
}

// Warn logs a warning message. Arguments follow the same key-value
// convention as Debug.
func (l *Logger) Warn(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry.WithFields(fields(args...)).Warn(msg)
}

// Error logs an error message.
//
// Error has a two-argument shortcut for wrapping an error value:
//
//	err := sim.Run(ctx)
//	log.Error("Simulation failed", err)
func (l *Logger) Error(msg string, args ...interface{}) {
	defer recoverLogErr()
	var f logrus.Fields
	if len(args) == 1 {
		f = fields("error", args[0])
	} else {
		f = fields(args...)
	}
	l.entry.WithFields(f).Error(msg)
}

// SetLevel sets the logging level by name: "debug", "info", "warn", "error".
// Unknown names fall back to "info".
func (l *Logger) SetLevel(lvl string) {
	switch strings.ToLower(lvl) {
	case "debug":
		l.base.SetLevel(logrus.DebugLevel)
	case "info":
		l.base.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		l.base.SetLevel(logrus.WarnLevel)
	case "error":
		l.base.SetLevel(logrus.ErrorLevel)
	default:
		l.base.SetLevel(logrus.InfoLevel)
	}
}

// SetFormatter sets the formatter.
func (l *Logger) SetFormatter(f logrus.Formatter) {
	l.base.SetFormatter(f)
}

// SetOutput sets the output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.base.SetOutput(w)
}

// Discard configures the logger to discard all messages. Useful in tests.
func (l *Logger) Discard() {
	l.base.SetOutput(io.Discard)
}

// Configure applies the given configuration to the logger.
func (l *Logger) Configure(conf Config) {
	l.SetLevel(conf.Level)

	switch conf.Formatter {
	case "json":
		l.SetFormatter(&jsonFormatter{conf: conf.JSONFormat})
	default:
		l.SetFormatter(&textFormatter{
			conf: conf.TextFormat,
			json: jsonFormatter{conf: conf.JSONFormat},
		})
	}

	if conf.OutputFile != "" {
		f, err := os.OpenFile(
			conf.OutputFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666,
		)
		if err != nil {
			l.Error("Can't open log output file", "output", conf.OutputFile)
		} else {
			l.SetOutput(f)
		}
	}
}

// PrintSimpleError prints out an error message with a red "ERROR:" prefix.
func PrintSimpleError(err error) {
	fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m %s\n", "ERROR:", err.Error())
}

// recoverLogErr recovers from any panic during logging. Logging should
// never crash the program.
func recoverLogErr() {
	if r := recover(); r != nil {
		fmt.Println("Recovered from logging panic", r)
	}
}

func fields(args ...interface{}) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	if len(args) == 1 {
		f["unknown"] = args[0]
		return f
	}
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			k = fmt.Sprint(args[i])
		}
		f[k] = args[i+1]
	}
	if len(args)%2 != 0 {
		f["unknown"] = args[len(args)-1]
	}
	return f
}
