// Package logger builds configured slog.Logger instances for the validation
// engine and its hosts.
//
// The engine separates user-presentable validation messages from detailed
// diagnostic messages; the diagnostic channel is emitted through a logger
// built here. Defaults are production-safe (JSON, info level) and can be
// overridden with options or the LOG_FORMAT / LOG_LEVEL environment
// variables.
package logger
