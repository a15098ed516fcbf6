package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/spatialnav/internal/cli/styles"
	"github.com/bnema/spatialnav/internal/infrastructure/config"
	"github.com/bnema/spatialnav/internal/infrastructure/layout"
)

var errInvalidLayouts = errors.New("invalid layouts")

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Work with layout files",
}

var layoutValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check layout files for errors",
	Long: `Load each layout file and report every problem found: unknown fields,
duplicate or empty element ids, negative sizes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLayoutValidate,
}

var layoutSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the layout JSON schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := layout.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutValidateCmd, layoutSchemaCmd)
}

func runLayoutValidate(cmd *cobra.Command, args []string) error {
	theme := styles.NewTheme(config.DefaultConfig())
	if app := GetApp(); app != nil {
		theme = app.Theme
	}
	renderer := styles.NewLayoutRenderer(theme)
	out := cmd.OutOrStdout()

	invalid := 0
	for _, path := range args {
		l, err := layout.Load(path)
		if err != nil {
			invalid++
			_, _ = fmt.Fprintln(out, renderer.RenderInvalid(path, err))
			continue
		}
		_, _ = fmt.Fprintln(out, renderer.RenderValid(path, l))
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidLayouts, invalid, len(args))
	}
	return nil
}
