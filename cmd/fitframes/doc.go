// Package main hosts the fitframes CLI entrypoint and command graph.
//
// The Cobra command tree converts FIT files into lap and point tables,
// reprojects coordinates between EPSG systems, runs input preflight checks,
// and scaffolds configuration. Configuration resolution and logger setup
// live in commandContext so subcommands only deal with presentation.
package main
