package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fitframes/internal/preflight"
)

var errPreflightFailed = errors.New("preflight checks failed")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE]",
		Short: "Verify a FIT input and the local environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			results := preflight.RunAll(cfg, path)
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, r := range results {
				fmt.Fprintln(out, renderCheck(r, colorize))
			}
			if !preflight.Passed(results) {
				return errPreflightFailed
			}
			return nil
		},
	}
}
