package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phoenix-ui/phoenix"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate component stories, guides and a manifest",
	Long: `Render an HTML story page and a Markdown guide for every catalog component
matching --components, plus manifest.json. Existing guides are kept unless
--overwrite is set.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runDocs,
}

func init() {
	f := docsCmd.Flags()
	f.String("out", "docs/components", "Output directory")
	f.StringSlice("components", []string{"*"}, "Component name patterns")
	f.String("stylesheet", "", "Stylesheet URL linked from story pages")
	f.Bool("overwrite", false, "Rewrite existing guides")
	f.Int("workers", 0, "Concurrent renders (0 = one per component)")
}

func runDocs(cmd *cobra.Command, _ []string) error {
	config := buildDocsConfig()

	result, err := phoenix.GenerateDocsContext(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("docs failed: %w", err)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Documented %d components in %s\n", len(result.Components), config.OutputDir)
	fmt.Fprintf(out, "  Stories written: %d\n", result.StoriesWritten)
	fmt.Fprintf(out, "  Guides written: %d\n", result.GuidesWritten)
	if result.GuidesKept > 0 {
		fmt.Fprintf(out, "  Guides kept: %d (use --overwrite to replace)\n", result.GuidesKept)
	}
	fmt.Fprintf(out, "  Manifest: %s\n", result.Manifest)
	return nil
}
