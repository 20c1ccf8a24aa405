package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phoenix-ui/phoenix/internal/report"
	"github.com/phoenix-ui/phoenix/merge"
)

var mergeCmd = &cobra.Command{
	Use:   "merge CLASSES...",
	Short: "Merge class lists, dropping overridden classes",
	Long: `Join the arguments into one class list and print it with conflicting
classes removed. Later classes win over earlier classes of the same family.`,
	Example: `  phoenix merge "ui:p-2 ui:m-4" ui:p-4
  phoenix merge --explain --stylesheet web/static/ui.css "phx-input ui:border-2"`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runMerge,
}

func init() {
	f := mergeCmd.Flags()
	f.StringSlice("stylesheet", nil, "Compiled CSS files whose classes take part in merging")
	f.Bool("explain", false, "List the dropped classes")
}

func runMerge(cmd *cobra.Command, args []string) error {
	m := merge.NewMerger()
	for _, path := range getStringsWithFallback("stylesheet", "merge.stylesheets", nil) {
		if err := loadStylesheet(m, path); err != nil {
			return err
		}
	}

	values := make([]any, len(args))
	for i, a := range args {
		values[i] = a
	}
	joined := merge.Join(values...)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, m.Merge(joined))

	explain, _ := cmd.Flags().GetBool("explain")
	if !explain {
		return nil
	}
	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))
	for _, c := range m.Conflicts(joined) {
		line := fmt.Sprintf("  - %s (overridden by %s)", c.Dropped, c.Winner)
		if c.Dropped == c.Winner {
			line = fmt.Sprintf("  - %s (duplicate)", c.Dropped)
		}
		fmt.Fprintln(out, report.RenderStyle(report.StyleGray, line, useColors))
	}
	return nil
}

func loadStylesheet(m *merge.Merger, path string) error {
	// #nosec G304 - path comes from trusted configuration
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open stylesheet: %w", err)
	}
	defer f.Close()
	return m.LoadStylesheet(f)
}
