// Package logging assembles structured slog loggers and formatting helpers used
// across fitframes.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so conversion code can tag log lines with
// the CLI run ID and the file being converted. The package also provides a
// no-op logger for library callers and tests that do not care about output.
package logging
