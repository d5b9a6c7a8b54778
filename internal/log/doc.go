// Package log provides the slog setup used across uxscan: a handler
// wrapper that truncates oversized attribute values so captured page
// text, scripts, and console payloads never flood the log output.
package log
