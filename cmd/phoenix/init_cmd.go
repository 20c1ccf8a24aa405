package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .phoenix.yaml config file",
	Long:  `Create a .phoenix.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# phoenix configuration

verbose: false
color: false

# Component documentation
docs:
  out: docs/components
  components:
    - "*"
  stylesheet: ""           # URL linked from story pages
  overwrite: false         # keep hand-edited guides
  workers: 0               # 0 = one per component

# Class linting
lint:
  paths:
    - "**/*.templ"
    - "**/*.go"
  stylesheets: []          # compiled CSS whose classes are known
  allow: []                # extra classes, wildcards allowed
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# phoenix merge
merge:
  stylesheets: []
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
