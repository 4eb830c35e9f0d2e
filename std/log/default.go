package log

import (
	"fmt"
	"os"
)

var defaultLogger *Logger = NewText(os.Stderr)

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// Trace level message.
func Trace(t any, msg string, v ...any) {
	defaultLogger.Trace(t, msg, v...)
}

// Debug level message.
func Debug(t any, msg string, v ...any) {
	defaultLogger.Debug(t, msg, v...)
}

// Info level message.
func Info(t any, msg string, v ...any) {
	defaultLogger.Info(t, msg, v...)
}

// Warn level message.
func Warn(t any, msg string, v ...any) {
	defaultLogger.Warn(t, msg, v...)
}

// Error level message.
func Error(t any, msg string, v ...any) {
	defaultLogger.Error(t, msg, v...)
}

// Fatal level message, followed by an exit.
func Fatal(t any, msg string, v ...any) {
	defaultLogger.Fatal(t, msg, v...)
}

// Tracef level formatted message, with no tag.
func Tracef(msg string, v ...any) {
	defaultLogger.Trace(nil, fmt.Sprintf(msg, v...))
}

// Debugf level formatted message, with no tag.
func Debugf(msg string, v ...any) {
	defaultLogger.Debug(nil, fmt.Sprintf(msg, v...))
}

// Infof level formatted message, with no tag.
func Infof(msg string, v ...any) {
	defaultLogger.Info(nil, fmt.Sprintf(msg, v...))
}

// Warnf level formatted message, with no tag.
func Warnf(msg string, v ...any) {
	defaultLogger.Warn(nil, fmt.Sprintf(msg, v...))
}

// Errorf level formatted message, with no tag.
func Errorf(msg string, v ...any) {
	defaultLogger.Error(nil, fmt.Sprintf(msg, v...))
}

// Fatalf level formatted message, with no tag, followed by an exit.
func Fatalf(msg string, v ...any) {
	defaultLogger.Fatal(nil, fmt.Sprintf(msg, v...))
}

// HasTrace returns if trace level is enabled.
func HasTrace() bool {
	return defaultLogger.level <= LevelTrace
}
