package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"fitframes/internal/spatial"
)

func newProjectCommand(ctx *commandContext) *cobra.Command {
	var from int
	var to int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "project X,Y...",
		Short: "Reproject coordinate pairs between EPSG systems",
		Long: "Reproject coordinate pairs between EPSG systems.\n\n" +
			"Pairs are always x,y; for geographic systems that is longitude,latitude.\n" +
			"--from and --to default to the projection section of the configuration.\n" +
			"Put -- before the pairs when the first one starts with a minus sign.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("from") {
				from = cfg.Projection.SourceEPSG
			}
			if !cmd.Flags().Changed("to") {
				to = cfg.Projection.TargetEPSG
			}

			xs, ys, err := parsePairs(args)
			if err != nil {
				return err
			}
			outX, outY, err := spatial.ConvertEPSGPoints(cmd.Context(), logger, xs, ys, from, to)
			if err != nil {
				return err
			}

			if jsonOutput {
				type point struct {
					X float64 `json:"x"`
					Y float64 `json:"y"`
				}
				out := make([]point, len(outX))
				for i := range outX {
					out[i] = point{X: outX[i], Y: outY[i]}
				}
				return writeJSON(cmd, out)
			}

			rows := make([][]string, len(xs))
			for i := range xs {
				rows[i] = []string{
					formatCell(xs[i]),
					formatCell(ys[i]),
					formatCell(outX[i]),
					formatCell(outY[i]),
				}
			}
			headers := []string{
				fmt.Sprintf("X (EPSG:%d)", from),
				fmt.Sprintf("Y (EPSG:%d)", from),
				fmt.Sprintf("X (EPSG:%d)", to),
				fmt.Sprintf("Y (EPSG:%d)", to),
			}
			aligns := []columnAlignment{alignRight, alignRight, alignRight, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "Source EPSG code")
	cmd.Flags().IntVar(&to, "to", 0, "Target EPSG code")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// parsePairs splits "x,y" arguments into parallel slices.
func parsePairs(args []string) ([]float64, []float64, error) {
	xs := make([]float64, 0, len(args))
	ys := make([]float64, 0, len(args))
	for _, arg := range args {
		xText, yText, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, nil, fmt.Errorf("invalid coordinate %q: expected x,y", arg)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xText), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid x in %q: %w", arg, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(yText), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid y in %q: %w", arg, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}
