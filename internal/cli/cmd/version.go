package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/spatialnav/internal/cli/styles"
	"github.com/bnema/spatialnav/internal/infrastructure/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		theme := styles.NewTheme(config.DefaultConfig())
		_, err := fmt.Fprintln(cmd.OutOrStdout(), styles.NewVersionRenderer(theme).Render(buildInfo))
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
