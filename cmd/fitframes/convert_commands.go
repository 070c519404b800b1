package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fitframes/internal/fit2df"
	"fitframes/internal/spatial"
	frames "fitframes/internal/table"
)

func newLapsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "laps FILE",
		Short: "Show the lap table of a FIT file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := ctx.converter()
			if err != nil {
				return err
			}
			laps, points, err := conv.FitToDataframes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer laps.Release()
			points.Release()

			if jsonOutput {
				return writeJSON(cmd, frameRecords(laps, 0))
			}
			headers, rows, aligns := frameGrid(laps, 0)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			fmt.Fprintf(out, "%d lap(s)\n", laps.NumRows())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newPointsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var limit int
	var epsg int

	cmd := &cobra.Command{
		Use:   "points FILE",
		Short: "Show the track point table of a FIT file",
		Long: "Show the track point table of a FIT file.\n\n" +
			"With --epsg, x and y columns are appended holding each point projected from\n" +
			"projection.source_epsg to the requested EPSG code.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be zero or positive")
			}
			conv, err := ctx.converter()
			if err != nil {
				return err
			}
			laps, points, err := conv.FitToDataframes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			laps.Release()
			defer points.Release()

			var extra []extraColumn
			if cmd.Flags().Changed("epsg") {
				extra, err = projectedColumns(cmd, ctx, points, epsg)
				if err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, frameRecords(points, limit, extra...))
			}
			headers, rows, aligns := frameGrid(points, limit, extra...)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			if len(rows) < points.NumRows() {
				fmt.Fprintf(out, "Showing %d of %d point(s)\n", len(rows), points.NumRows())
			} else {
				fmt.Fprintf(out, "%d point(s)\n", points.NumRows())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most N points (0 shows all)")
	cmd.Flags().IntVar(&epsg, "epsg", 0, "Append x/y columns projected to this EPSG code")
	return cmd
}

func projectedColumns(cmd *cobra.Command, ctx *commandContext, points *frames.Table, target int) ([]extraColumn, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return nil, err
	}
	xs, ys, err := spatial.ConvertEPSGPoints(
		cmd.Context(),
		logger,
		points.Float64s(fit2df.ColLongitude),
		points.Float64s(fit2df.ColLatitude),
		cfg.Projection.SourceEPSG,
		target,
	)
	if err != nil {
		return nil, err
	}
	return []extraColumn{{name: "x", values: xs}, {name: "y", values: ys}}, nil
}
