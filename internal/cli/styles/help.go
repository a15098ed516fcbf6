package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/spatialnav/internal/ui/input"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PreviewKeyMap defines keybindings for the layout preview.
// Navigation bindings mirror the configured input key map.
type PreviewKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Blur   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Blur},
		{k.Help, k.Quit},
	}
}

// NewPreviewKeyMap builds the preview help bindings from km.
func NewPreviewKeyMap(km *input.KeyMap) PreviewKeyMap {
	bind := func(action input.Action, desc string) key.Binding {
		var keys []string
		for _, k := range km.KeysFor(action) {
			if _, err := strconv.Atoi(k); err == nil {
				continue // remote key codes never reach a terminal
			}
			keys = append(keys, k)
		}
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		)
	}
	return PreviewKeyMap{
		Up:     bind(input.ActionNavUp, "up"),
		Down:   bind(input.ActionNavDown, "down"),
		Left:   bind(input.ActionNavLeft, "left"),
		Right:  bind(input.ActionNavRight, "right"),
		Select: bind(input.ActionSelect, "select"),
		Blur: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "clear focus"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
