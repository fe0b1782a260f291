// Package diag sets up structured logging for plsteno.
//
// Loggers are plain *slog.Logger values. Every record carries a "run"
// attribute holding a random id, so log lines of one build can be told
// apart when several runs append to the same file.
package diag
