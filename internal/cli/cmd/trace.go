package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/spatialnav/internal/application/usecase"
	"github.com/bnema/spatialnav/internal/cli/styles"
)

const defaultTraceLimit = 20

var (
	traceLimit int
	traceJSON  bool
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Inspect recorded focus traces",
	Long: `List, show and delete focus traces recorded with 'spatialnav replay --record'.

Sessions can be addressed by a unique prefix of their id.`,
}

var traceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runTraceList,
}

var traceShowCmd = &cobra.Command{
	Use:   "show <session>",
	Short: "Show the focus transitions of a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runTraceShow,
}

var traceDeleteCmd = &cobra.Command{
	Use:   "delete <session>",
	Short: "Delete a session and its transitions",
	Args:  cobra.ExactArgs(1),
	RunE:  runTraceDelete,
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.AddCommand(traceListCmd, traceShowCmd, traceDeleteCmd)

	traceListCmd.Flags().IntVarP(&traceLimit, "limit", "n", defaultTraceLimit, "maximum sessions to show")
	traceListCmd.Flags().BoolVar(&traceJSON, "json", false, "output as JSON")
	traceShowCmd.Flags().BoolVar(&traceJSON, "json", false, "output as JSON")
}

func traceUseCase() (*usecase.InspectTracesUseCase, *styles.TraceRenderer, error) {
	app := GetApp()
	if app == nil {
		return nil, nil, fmt.Errorf("app not initialized")
	}
	return usecase.NewInspectTracesUseCase(app.Traces), styles.NewTraceRenderer(app.Theme), nil
}

func runTraceList(cmd *cobra.Command, _ []string) error {
	uc, renderer, err := traceUseCase()
	if err != nil {
		return err
	}

	sessions, err := uc.List(GetApp().Ctx(), traceLimit)
	if err != nil {
		return fmt.Errorf("list traces: %w", err)
	}

	if traceJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sessions)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSessions(sessions))
	return err
}

func runTraceShow(cmd *cobra.Command, args []string) error {
	uc, renderer, err := traceUseCase()
	if err != nil {
		return err
	}

	out, err := uc.Show(GetApp().Ctx(), args[0])
	if err != nil {
		return fmt.Errorf("show trace: %w", err)
	}

	if traceJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderTransitions(out.Session, out.Transitions))
	return err
}

func runTraceDelete(cmd *cobra.Command, args []string) error {
	uc, renderer, err := traceUseCase()
	if err != nil {
		return err
	}

	session, err := uc.Delete(GetApp().Ctx(), args[0])
	if err != nil {
		return fmt.Errorf("delete trace: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderDeleted(session))
	return err
}
