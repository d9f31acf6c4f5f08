package common

import (
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// LogLevel 日志级别
type LogLevel string

// 日志级别
const (
	Debug    LogLevel = "debug"
	Info     LogLevel = "info"
	Warn     LogLevel = "warn"
	Error    LogLevel = "error"
	Critical LogLevel = "critical"
)

// 运行环境
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

func (p LogLevel) zapLevel() (level zapcore.Level, ok bool) {
	switch LogLevel(strings.ToLower(string(p))) {
	case Debug:
		return zapcore.DebugLevel, true
	case Info:
		return zapcore.InfoLevel, true
	case Warn:
		return zapcore.WarnLevel, true
	case Error:
		return zapcore.ErrorLevel, true
	case Critical:
		return zapcore.DPanicLevel, true
	}
	return zapcore.InfoLevel, false
}

// Logger 日志接口
type Logger interface {
	Debugf(format string, params ...interface{})
	DebugEnabled() bool
	Infof(format string, params ...interface{})
	InfoEnabled() bool
	Warnf(format string, params ...interface{})
	WarnEnabled() bool
	Errorf(format string, params ...interface{})
	ErrorEnabled() bool
	Criticalf(format string, params ...interface{})
	SetLevel(level LogLevel)
	Sync()
}

var (
	logger   Logger = NewZapLogger(&LogConfig{Env: EnvDevelopment})
	loggerMu sync.RWMutex
)

func current() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger 替换全局的logger
func SetLogger(l Logger) {
	if l == nil {
		return
	}
	loggerMu.Lock()
	old := logger
	logger = l
	loggerMu.Unlock()
	old.Sync()
}

// SetLogLevel 设置全局logger的级别,无效的级别会被忽略
func SetLogLevel(level LogLevel) {
	current().SetLevel(level)
}

// Debugf debug
func Debugf(format string, params ...interface{}) {
	current().Debugf(format, params...)
}

// DebugEnabled debug级别是否有效
func DebugEnabled() bool {
	return current().DebugEnabled()
}

// Infof info
func Infof(format string, params ...interface{}) {
	current().Infof(format, params...)
}

// InfoEnabled info级别是否有效
func InfoEnabled() bool {
	return current().InfoEnabled()
}

// Warnf warn
func Warnf(format string, params ...interface{}) {
	current().Warnf(format, params...)
}

// WarnEnabled warn级别是否有效
func WarnEnabled() bool {
	return current().WarnEnabled()
}

// Errorf error
func Errorf(format string, params ...interface{}) {
	current().Errorf(format, params...)
}

// ErrorEnabled error级别是否有效
func ErrorEnabled() bool {
	return current().ErrorEnabled()
}

// Criticalf critical
func Criticalf(format string, params ...interface{}) {
	current().Criticalf(format, params...)
}

// Logf 以指定的级别记录日志
func Logf(level LogLevel, format string, params ...interface{}) {
	switch level {
	case Debug:
		Debugf(format, params...)
	case Warn:
		Warnf(format, params...)
	case Error:
		Errorf(format, params...)
	case Critical:
		Criticalf(format, params...)
	default:
		Infof(format, params...)
	}
}

// SyncLog 刷新日志缓冲
func SyncLog() {
	current().Sync()
}

func initLogger(conf *LogConfig) error {
	if conf == nil {
		return nil
	}
	SetLogger(NewZapLogger(conf))
	return nil
}
