package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel 日志级别
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	default:
		return "info"
	}
}

// Logger 全局日志管理器
type Logger struct {
	level   LogLevel
	verbose bool
	sugar   *zap.SugaredLogger
}

var globalLogger *Logger

// Init 初始化日志管理器
func Init(levelStr string, verbose bool) {
	level := parseLogLevel(levelStr)

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zcfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	zcfg.OutputPaths = []string{"stdout"}
	zcfg.DisableStacktrace = true

	zl, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		zl = zap.NewExample()
	}

	globalLogger = &Logger{
		level:   level,
		verbose: verbose,
		sugar:   zl.Sugar(),
	}

	Info("📋 Logger initialized | level=%s verbose=%v", level, verbose)
}

// Sync flushes buffered entries; call before exit.
func Sync() {
	if globalLogger == nil {
		return
	}
	_ = globalLogger.sugar.Sync()
}

// parseLogLevel 解析日志级别字符串
func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Debug 输出 DEBUG 级别日志
func Debug(format string, v ...interface{}) {
	if globalLogger == nil || globalLogger.level > DEBUG {
		return
	}
	globalLogger.sugar.Debugf(format, v...)
}

// Info 输出 INFO 级别日志
func Info(format string, v ...interface{}) {
	if globalLogger == nil || globalLogger.level > INFO {
		return
	}
	globalLogger.sugar.Infof(format, v...)
}

// Warn 输出 WARN 级别日志
func Warn(format string, v ...interface{}) {
	if globalLogger == nil || globalLogger.level > WARN {
		return
	}
	globalLogger.sugar.Warnf(format, v...)
}

// Error 输出 ERROR 级别日志
func Error(format string, v ...interface{}) {
	if globalLogger == nil || globalLogger.level > ERROR {
		return
	}
	globalLogger.sugar.Errorf(format, v...)
}

// Verbose 输出详细日志 (仅在 VERBOSE_LOGGING=true 时输出)
func Verbose(format string, v ...interface{}) {
	if globalLogger == nil || !globalLogger.verbose {
		return
	}
	globalLogger.sugar.Infof(format, v...)
}

// Fatal 输出 FATAL 日志并以状态码 1 退出
func Fatal(format string, v ...interface{}) {
	if globalLogger == nil {
		zap.NewExample().Sugar().Fatalf(format, v...)
		return
	}
	globalLogger.sugar.Fatalf(format, v...)
}

// IsVerbose 返回是否启用详细日志
func IsVerbose() bool {
	if globalLogger == nil {
		return false
	}
	return globalLogger.verbose
}

// GetLevel 获取当前日志级别
func GetLevel() LogLevel {
	if globalLogger == nil {
		return INFO
	}
	return globalLogger.level
}
