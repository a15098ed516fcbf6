package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/spatialnav/internal/domain/entity"
)

// TraceRenderer renders recorded focus sessions.
type TraceRenderer struct {
	theme *Theme
}

// NewTraceRenderer creates a new trace renderer with the given theme.
func NewTraceRenderer(theme *Theme) *TraceRenderer {
	return &TraceRenderer{theme: theme}
}

// RenderSessions renders the session list as a table.
func (r *TraceRenderer) RenderSessions(sessions []entity.TraceSummary) string {
	if len(sessions) == 0 {
		return r.theme.Subtle.Render("  No recorded sessions. Record one with 'spatialnav replay --record'.")
	}
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = TraceSessionRow(s)
	}
	return r.renderTable(TraceSessionColumns(), rows)
}

// RenderTransitions renders one session's transitions as a table.
func (r *TraceRenderer) RenderTransitions(session string, transitions []entity.FocusTransition) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconDatabase),
		r.theme.Title.Render("Session"),
		r.theme.Subtle.Render(session),
	)
	if len(transitions) == 0 {
		return header + r.theme.Subtle.Render("  No focus transitions recorded.")
	}
	rows := make([]table.Row, len(transitions))
	for i, t := range transitions {
		rows[i] = TransitionRow(t)
	}
	return header + r.renderTable(TransitionColumns(), rows)
}

// RenderDeleted renders a delete confirmation.
func (r *TraceRenderer) RenderDeleted(session string) string {
	return fmt.Sprintf("  %s Deleted session %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(session),
	)
}

// RenderError renders an error line.
func (r *TraceRenderer) RenderError(err error) string {
	return fmt.Sprintf("  %s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

func (r *TraceRenderer) renderTable(columns []table.Column, rows []table.Row) string {
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	// Height includes the two header lines.
	t := NewStyledTable(r.theme, columns, rows, width, len(rows)+2)
	return strings.TrimRight(t.View(), "\n")
}
