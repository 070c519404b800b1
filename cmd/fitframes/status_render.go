package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"fitframes/internal/preflight"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

const checkLabelWidth = 16

// renderCheck formats one preflight result as "  Label:  [OK] detail".
func renderCheck(r preflight.Result, colorize bool) string {
	badge, color := "[OK]", ansiGreen
	if !r.Passed {
		badge, color = "[ERROR]", ansiRed
	}
	line := fmt.Sprintf("  %-*s %s", checkLabelWidth, r.Name+":", badge)
	if r.Detail != "" {
		line += " " + r.Detail
	}
	if !colorize {
		return line
	}
	return color + line + ansiReset
}

func renderSectionHeader(title string, colorize bool) []string {
	line := "== " + strings.TrimSpace(title) + " =="
	rule := strings.Repeat("-", len(line))
	if colorize {
		return []string{ansiBlue + line + ansiReset, ansiBlue + rule + ansiReset}
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
