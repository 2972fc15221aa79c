package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerContextKey is the context key under which a request-scoped logger is stored.
type loggerContextKey struct{}

//nolint:gochecknoglobals // Global logger state is intentional: it provides a process-wide default.
var (
	globalMutex  sync.RWMutex
	globalLogger *zap.Logger
)

//nolint:gochecknoglobals // Global logger state is intentional: it provides a process-wide default.
var atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

//nolint:gochecknoinits // The package must provide a usable logger before any configuration is loaded.
func init() {
	globalLogger = New(atomicLevel)
}

// New creates a new zap logger writing human-readable output to stderr.
// If level is nil, the package-wide atomic level is used.
func New(level zapcore.LevelEnabler) *zap.Logger {
	if level == nil {
		level = atomicLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
}

// ParseLogLevel parses a textual log level ("debug", "info", ...) into a zapcore.Level.
// Parsing is case-insensitive and ignores surrounding whitespace.
// It returns the parsed level and true on success, or InfoLevel and false otherwise.
func ParseLogLevel(level string) (zapcore.Level, bool) {
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zapcore.InfoLevel, false
	}

	return parsed, true
}

// Logger returns the current global logger.
func Logger() *zap.Logger {
	globalMutex.RLock()
	defer globalMutex.RUnlock()

	return globalLogger
}

// SetLogger replaces the global logger.
func SetLogger(logger *zap.Logger) {
	globalMutex.Lock()
	defer globalMutex.Unlock()

	globalLogger = logger
}

// Level returns the current global log level.
func Level() zapcore.Level {
	return atomicLevel.Level()
}

// SetLevel changes the global log level at runtime.
func SetLevel(level zapcore.Level) {
	atomicLevel.SetLevel(level)
}

// ToContext returns a copy of ctx carrying the provided logger.
// Subsequent logging calls with that context use the stored logger
// instead of the global one.
func ToContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the global logger if none is stored.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(*zap.Logger); ok {
		return logger
	}

	return Logger()
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, args ...any) {
	FromContext(ctx).Sugar().Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Sugar().Debugf(format, args...)
}

// DebugKV logs a message with key-value pairs at debug level.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Sugar().Debugw(message, kvs...)
}

// Info logs a message at info level.
func Info(ctx context.Context, args ...any) {
	FromContext(ctx).Sugar().Info(args...)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Sugar().Infof(format, args...)
}

// InfoKV logs a message with key-value pairs at info level.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Sugar().Infow(message, kvs...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, args ...any) {
	FromContext(ctx).Sugar().Warn(args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Sugar().Warnf(format, args...)
}

// WarnKV logs a message with key-value pairs at warn level.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Sugar().Warnw(message, kvs...)
}

// Error logs a message at error level.
func Error(ctx context.Context, args ...any) {
	FromContext(ctx).Sugar().Error(args...)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Sugar().Errorf(format, args...)
}

// ErrorKV logs a message with key-value pairs at error level.
func ErrorKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Sugar().Errorw(message, kvs...)
}

// Fatal logs a message at fatal level and exits the process.
func Fatal(ctx context.Context, args ...any) {
	FromContext(ctx).Sugar().Fatal(args...)
}

// Fatalf logs a formatted message at fatal level and exits the process.
func Fatalf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Sugar().Fatalf(format, args...)
}

// FatalKV logs a message with key-value pairs at fatal level and exits the process.
func FatalKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Sugar().Fatalw(message, kvs...)
}
