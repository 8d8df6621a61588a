// Package logging provides structured logging construction using Go's
// standard library log/slog. Library code in this module logs through the
// process-default logger only; nothing here is required for providers to
// work.
package logging
