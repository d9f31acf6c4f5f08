package common

import (
	"log"
)

// StdLogger 使用标准库封装的logger,不区分级别
type StdLogger struct {
}

// Debugf debug
func (l *StdLogger) Debugf(format string, params ...interface{}) {
	log.Printf("[DEBUG] "+format, params...)
}

// DebugEnabled always true
func (l *StdLogger) DebugEnabled() bool { return true }

// Infof info
func (l *StdLogger) Infof(format string, params ...interface{}) {
	log.Printf("[INFO] "+format, params...)
}

// InfoEnabled always true
func (l *StdLogger) InfoEnabled() bool { return true }

// Warnf warn
func (l *StdLogger) Warnf(format string, params ...interface{}) {
	log.Printf("[WARN] "+format, params...)
}

// WarnEnabled always true
func (l *StdLogger) WarnEnabled() bool { return true }

// Errorf error
func (l *StdLogger) Errorf(format string, params ...interface{}) {
	log.Printf("[ERROR] "+format, params...)
}

// ErrorEnabled always true
func (l *StdLogger) ErrorEnabled() bool { return true }

// Criticalf critical
func (l *StdLogger) Criticalf(format string, params ...interface{}) {
	log.Printf("[CRITICAL] "+format, params...)
}

// SetLevel is a no-op
func (l *StdLogger) SetLevel(level LogLevel) {
}

// Sync sync
func (l *StdLogger) Sync() {
}
