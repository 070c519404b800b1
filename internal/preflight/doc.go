// Package preflight provides readiness checks for the inputs and paths that
// fitframes depends on.
//
// The CLI "fitframes check" command runs RunAll and renders each Result.
// Checks are gated by configuration; the log directory is only inspected
// when file logging is enabled.
package preflight
