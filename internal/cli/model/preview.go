// Package model holds bubbletea models for interactive CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/spatialnav/internal/cli"
	"github.com/bnema/spatialnav/internal/cli/styles"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/infrastructure/config"
	"github.com/bnema/spatialnav/internal/logging"
	"github.com/bnema/spatialnav/pkg/spatialnav"
)

const (
	activityLimit = 5
	defaultCols   = 80
	defaultRows   = 24
	chromeRows    = 4 + activityLimit
	minCanvasRows = 6
	minCanvasCols = 20
)

// LayoutReloadedMsg carries a layout re-read from disk.
type LayoutReloadedMsg struct {
	Layout *entity.Layout
	Err    error
}

// ConfigReloadedMsg carries a reloaded configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// activity records what happened on the navigator. It is shared by pointer so
// observer and select callbacks can write to it from any model copy.
type activity struct {
	mu       sync.Mutex
	changes  []entity.FocusChange
	selected string
}

func (a *activity) recordChange(c entity.FocusChange) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.changes = append(a.changes, c)
	if len(a.changes) > activityLimit {
		a.changes = a.changes[len(a.changes)-activityLimit:]
	}
}

func (a *activity) recordSelect(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selected = id
}

func (a *activity) snapshot() ([]entity.FocusChange, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]entity.FocusChange, len(a.changes))
	copy(out, a.changes)
	return out, a.selected
}

// PreviewModel renders a layout and lets the user move focus around it with
// the configured navigation keys.
type PreviewModel struct {
	ctx    context.Context
	nav    *spatialnav.Navigator
	layout *entity.Layout
	theme  *styles.Theme
	help   help.Model
	keys   styles.PreviewKeyMap

	activity    *activity
	unsubscribe func()

	width  int
	height int
	status string
	err    error
}

// NewPreviewModel registers l on nav and returns a model driving it.
func NewPreviewModel(ctx context.Context, nav *spatialnav.Navigator, l *entity.Layout, theme *styles.Theme, km *spatialnav.KeyMap) PreviewModel {
	act := &activity{}
	m := PreviewModel{
		ctx:      ctx,
		nav:      nav,
		layout:   l,
		theme:    theme,
		help:     styles.NewStyledHelp(theme),
		keys:     styles.NewPreviewKeyMap(km),
		activity: act,
		width:    defaultCols,
		height:   defaultRows,
	}
	m.unsubscribe = nav.Subscribe(spatialnav.ObserverFunc(func(_ context.Context, c spatialnav.FocusChange) {
		act.recordChange(c)
	}))
	cli.SyncLayout(ctx, nav, l, m.onSelect)
	return m
}

func (m PreviewModel) onSelect(ctx context.Context, el entity.LayoutElement) {
	m.activity.recordSelect(el.ID)
	logging.FromContext(ctx).Info().Str("element", el.ID).Msg("element selected")
}

// Close detaches the model from the navigator.
func (m PreviewModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case LayoutReloadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		if msg.Layout == nil {
			return m, nil
		}
		m.err = nil
		registered, removed := cli.SyncLayout(m.ctx, m.nav, msg.Layout, m.onSelect)
		m.layout = msg.Layout
		m.status = fmt.Sprintf("layout reloaded: %d registered, %d removed", registered, removed)
		return m, nil

	case ConfigReloadedMsg:
		if err := cli.ApplyConfig(m.ctx, m.nav, msg.Config); err != nil {
			m.err = err
			return m, nil
		}
		if km, err := msg.Config.Keymap.KeyMap(); err == nil {
			m.keys = styles.NewPreviewKeyMap(km)
		}
		m.theme = styles.NewTheme(msg.Config)
		m.help = styles.NewStyledHelp(m.theme)
		m.help.Width = m.width
		m.status = "config reloaded"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PreviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Blur):
		m.nav.Blur(m.ctx)
		m.status = "focus cleared"
		return m, nil
	}

	if m.nav.HandleKey(m.ctx, msg.String()) {
		m.status = ""
	} else {
		m.status = fmt.Sprintf("%q: nothing to do", msg.String())
	}
	return m, nil
}

// Focused returns the focused element id, or "" when nothing is focused.
func (m PreviewModel) Focused() entity.ElementID {
	id, _ := m.nav.Focused()
	return id
}

// Selected returns the id of the last selected element.
func (m PreviewModel) Selected() string {
	_, sel := m.activity.snapshot()
	return sel
}

// Err returns the last layout or config reload error.
func (m PreviewModel) Err() error {
	return m.err
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	t := m.theme
	focused := m.Focused()

	focusLabel := t.Subtle.Render("none")
	if focused != "" {
		focusLabel = t.Highlight.Render(string(focused))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		t.Title.Render(styles.IconLayout+" "+m.layout.Name),
		"  ",
		t.Subtle.Render(fmt.Sprintf("%d elements", m.nav.Len())),
		"  ",
		t.Normal.Render(styles.IconCursor+" "),
		focusLabel,
	)

	cols := max(m.width-2, minCanvasCols)
	rows := max(m.height-chromeRows, minCanvasRows)
	canvas := RenderCanvas(m.layout, focused, cols, rows, t)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		canvas,
		m.renderActivity(),
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

func (m PreviewModel) renderActivity() string {
	t := m.theme
	changes, selected := m.activity.snapshot()

	var sb strings.Builder
	for i, c := range changes {
		if i > 0 {
			sb.WriteByte('\n')
		}
		from, to := string(c.Previous), string(c.Current)
		if from == "" {
			from = "-"
		}
		if to == "" {
			to = "-"
		}
		sb.WriteString(t.Subtle.Render(fmt.Sprintf("%s %s %s", from, styles.IconArrow, to)))
	}
	if selected != "" {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(t.SuccessStyle.Render(styles.IconCheck + " selected " + selected))
	}
	return sb.String()
}

func (m PreviewModel) renderStatus() string {
	if m.err != nil {
		return m.theme.ErrorStyle.Render(styles.IconX + " " + m.err.Error())
	}
	return m.theme.Subtle.Render(m.status)
}

// Ensure interface compliance.
var _ tea.Model = (*PreviewModel)(nil)
