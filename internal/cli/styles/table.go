package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/spatialnav/internal/domain/entity"
)

const traceTimeFormat = "2006-01-02 15:04:05"

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// TraceSessionColumns returns columns for the trace session list.
func TraceSessionColumns() []table.Column {
	return []table.Column{
		{Title: "Session", Width: 36},
		{Title: "Layout", Width: 20},
		{Title: "Moves", Width: 7},
		{Title: "Started", Width: 19},
	}
}

// TraceSessionRow converts a session summary to a table row.
func TraceSessionRow(s entity.TraceSummary) table.Row {
	return table.Row{s.Session, s.Layout, strconv.Itoa(s.Transitions), s.StartedAt.Local().Format(traceTimeFormat)}
}

// TransitionColumns returns columns for a session's focus transitions.
func TransitionColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "From", Width: 18},
		{Title: "To", Width: 18},
		{Title: "Cause", Width: 11},
		{Title: "Dir", Width: 6},
		{Title: "At", Width: 12},
	}
}

// TransitionRow converts a focus transition to a table row. Empty ids render as "-".
func TransitionRow(t entity.FocusTransition) table.Row {
	return table.Row{
		strconv.Itoa(t.Seq),
		orDash(string(t.From)),
		orDash(string(t.To)),
		string(t.Cause),
		orDash(string(t.Direction)),
		t.At.Local().Format("15:04:05.000"),
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
