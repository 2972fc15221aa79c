// Package logger wraps the Zap logging library behind a small global API.
// It manages a shared logger with an atomically adjustable level, carries
// loggers through context, and exposes leveled helpers in plain, formatted,
// and key-value flavors.
package logger
