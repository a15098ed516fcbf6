// Package cmd provides Cobra CLI commands for spatialnav.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/spatialnav/internal/cli"
	"github.com/bnema/spatialnav/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string

	// tuiCommands own the terminal, so their logs go to a file.
	tuiCommands = map[string]bool{"preview": true}

	rootCmd = &cobra.Command{
		Use:   "spatialnav",
		Short: "Spatial focus navigation for TV interfaces",
		Long: `spatialnav moves focus between on-screen elements the way a TV remote does.

Describe a screen as a layout file (TOML or JSON) listing each focusable
element's position, size, group and layer, then:

  - preview it interactively and move focus with the arrow keys
  - replay a key sequence against it and record the focus trace
  - inspect recorded traces

Navigation weights and key bindings are read from the config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				LogToFile:  tuiCommands[cmd.Name()],
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/spatialnav/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
