package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"welltrack/pkg/ingest"
	"welltrack/pkg/wellog/band"
	"welltrack/pkg/wellog/measure"
)

// newInspectCmd creates the inspect command for examining a dataset
// without rendering it. By default it prints a summary; with
// --interactive it opens a measurement browser.
func newInspectCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize or browse a well-log data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse measurements interactively")

	return cmd
}

// runInspect loads and normalizes the dataset, then either prints a
// summary or starts the interactive browser.
func runInspect(ctx context.Context, input string, interactive bool) error {
	logger := loggerFromContext(ctx)

	records, err := ingest.Read(ctx, input)
	if err != nil {
		return err
	}
	ds, err := measure.Normalize(records)
	if err != nil {
		return err
	}
	logger.Debug("normalized dataset", "records", len(ds.Records))

	if interactive {
		model := newMeasurementListModel(ds)
		_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
		return err
	}

	printSummary(input, ds)
	return nil
}

// printSummary writes the non-interactive dataset overview.
func printSummary(input string, ds measure.Dataset) {
	printNewline()
	fmt.Println(StyleTitle.Render("Dataset: " + input))
	printNewline()

	printKeyValue("Records", fmt.Sprintf("%d", len(ds.Records)))
	printKeyValue("Depth", formatRange(ds.DepthRange.Min, ds.DepthRange.Max))
	printKeyValue("Gamma ray", formatRange(ds.GammaRange.Min, ds.GammaRange.Max))
	printKeyValue("Porosity", formatRange(ds.PorosityRange.Min, ds.PorosityRange.Max))
	printNewline()

	lithologies := ds.Lithologies()
	counts := make(map[string]int, len(lithologies))
	for _, m := range ds.Records {
		counts[m.Lithology]++
	}

	colors := band.NewAssignment(lithologies)
	fmt.Println(StyleHighlight.Render("Lithologies"))
	for _, lith := range lithologies {
		swatch := StyleDim.Render(colors.Color(lith))
		printDetail("%-20s %4d  %s", lith, counts[lith], swatch)
	}
	printNewline()
}

// formatRange formats an interval for summary output.
func formatRange(min, max float64) string {
	if min == max {
		return fmt.Sprintf("%g", min)
	}
	return fmt.Sprintf("%g to %g", min, max)
}
