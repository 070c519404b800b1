package preflight

import (
	"fitframes/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config and
// FIT input. An empty path skips the input checks.
func RunAll(cfg *config.Config, path string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	if path != "" {
		input := CheckFITFile("Input file", path)
		results = append(results, input)
		if input.Passed {
			results = append(results, CheckFITIntegrity("FIT integrity", path))
		}
	}

	if cfg.Logging.File {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	results = append(results, CheckProjection("Projection", cfg.Projection.SourceEPSG, cfg.Projection.TargetEPSG))
	return results
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
