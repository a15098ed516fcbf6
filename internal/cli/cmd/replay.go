package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bnema/spatialnav/internal/application/usecase"
	"github.com/bnema/spatialnav/internal/cli"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/infrastructure/layout"
	"github.com/bnema/spatialnav/internal/logging"
)

var (
	replayKeys    string
	replayKeyFile string
	replayRecord  bool
	replaySession string
	replayJSON    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <layout>",
	Short: "Replay a key sequence against a layout",
	Long: `Register every element of a layout, feed it a key sequence and print
where focus lands after each key.

Keys are key names (up, down, enter, ...) or remote key codes (38, 13, ...),
separated by commas or spaces. With --record the focus changes are stored
as a trace that 'spatialnav trace' can inspect.

Examples:
  spatialnav replay home.toml --keys "down right right enter"
  spatialnav replay home.toml --keys 40,39,13 --record
  spatialnav replay home.toml --key-file keys.txt --json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replayKeys, "keys", "k", "", "keys to replay")
	replayCmd.Flags().StringVar(&replayKeyFile, "key-file", "", "read keys from a file (- for stdin)")
	replayCmd.Flags().BoolVarP(&replayRecord, "record", "r", false, "store the focus trace")
	replayCmd.Flags().StringVar(&replaySession, "session", "", "trace session id (default: random UUID)")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "output as JSON")
	replayCmd.MarkFlagsMutuallyExclusive("keys", "key-file")
}

func runReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	keys, err := replayInput(cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys to replay: use --keys or --key-file")
	}

	l, err := layout.Load(args[0])
	if err != nil {
		return err
	}

	nav, err := cli.NewNavigator(ctx, app.Config)
	if err != nil {
		return err
	}
	cli.SyncLayout(ctx, nav, l, func(ctx context.Context, el entity.LayoutElement) {
		logging.FromContext(ctx).Debug().Str("element", el.ID).Msg("element selected")
	})

	var recorder *usecase.RecordTraceUseCase
	if replayRecord {
		session := replaySession
		if session == "" {
			session = uuid.NewString()
		}
		recorder = usecase.NewRecordTraceUseCase(app.Traces, session, l.Name)
		if err := recorder.Start(ctx); err != nil {
			return err
		}
		unsubscribe := nav.Subscribe(recorder)
		defer unsubscribe()
	}

	steps := cli.Replay(ctx, nav, keys)

	out := cmd.OutOrStdout()
	if replayJSON {
		return outputReplayJSON(out, steps, recorder)
	}
	if err := outputReplayTable(out, steps); err != nil {
		return err
	}
	if recorder != nil {
		_, err = fmt.Fprintf(out, "\nrecorded %d transitions in session %s\n", recorder.Recorded(), recorder.Session())
	}
	return err
}

func replayInput(stdin io.Reader) ([]string, error) {
	if replayKeyFile == "" {
		return cli.ParseKeys(replayKeys), nil
	}

	var (
		data []byte
		err  error
	)
	if replayKeyFile == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(replayKeyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}
	return cli.ParseKeys(string(data)), nil
}

type replayOutput struct {
	Session string           `json:"session,omitempty"`
	Steps   []cli.ReplayStep `json:"steps"`
}

func outputReplayJSON(w io.Writer, steps []cli.ReplayStep, recorder *usecase.RecordTraceUseCase) error {
	out := replayOutput{Steps: steps}
	if recorder != nil {
		out.Session = recorder.Session()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputReplayTable(w io.Writer, steps []cli.ReplayStep) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "#\tKEY\tFROM\tFOCUSED\tRESULT")

	for i, s := range steps {
		result := "moved"
		switch {
		case !s.Handled:
			result = "ignored"
		case s.Selected:
			result = "selected"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1, s.Key, orDash(string(s.From)), orDash(string(s.Focused)), result)
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
