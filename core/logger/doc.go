// Package logger provides slog attribute helpers shared across the
// correlation engine. Helpers return an empty slog.Attr for nil or empty
// input, making zero values safe to log without guards.
package logger
