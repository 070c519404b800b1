package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fitframes/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var statusFlag bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "fitframes",
		Short:         "Convert FIT activity files into lap and point tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(logging.WithRunID(cmd.Context(), uuid.NewString()))
			if shouldSkipConfig(cmd) {
				return nil
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("status") {
				cfg.Converter.StatusMessages = statusFlag
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&statusFlag, "status", false, "Log a status summary for each converted file")

	rootCmd.AddCommand(newLapsCommand(ctx))
	rootCmd.AddCommand(newPointsCommand(ctx))
	rootCmd.AddCommand(newProjectCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
