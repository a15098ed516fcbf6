package model

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spatialnav/internal/cli/styles"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/infrastructure/config"
	"github.com/bnema/spatialnav/pkg/spatialnav"
)

func homeLayout() *entity.Layout {
	return &entity.Layout{Name: "home", Width: 700, Height: 200, Elements: []entity.LayoutElement{
		{ID: "menu-home", X: 0, Y: 0, Width: 100, Height: 40, Group: "menu", Selectable: true},
		{ID: "menu-live", X: 0, Y: 60, Width: 100, Height: 40, Group: "menu", Selectable: true},
		{ID: "card-1", X: 200, Y: 0, Width: 200, Height: 100, Group: "grid", Selectable: true},
		{ID: "card-2", X: 450, Y: 0, Width: 200, Height: 100, Group: "grid"},
	}}
}

func plainTheme() *styles.Theme {
	return &styles.Theme{
		Element:        lipgloss.NewStyle(),
		ElementFocused: lipgloss.NewStyle(),
		ElementOverlay: lipgloss.NewStyle(),
	}
}

func newPreview(t *testing.T) PreviewModel {
	t.Helper()
	ctx := context.Background()
	cfg := config.DefaultConfig()
	km, err := cfg.Keymap.KeyMap()
	require.NoError(t, err)

	nav := spatialnav.New(ctx, spatialnav.WithKeyMap(km), spatialnav.WithGroupScoping(true))
	m := NewPreviewModel(ctx, nav, homeLayout(), styles.NewTheme(cfg), km)
	t.Cleanup(m.Close)
	return m
}

func press(t *testing.T, m PreviewModel, msg tea.KeyMsg) (PreviewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PreviewModel)
	require.True(t, ok)
	return pm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewModel_NavigatesAndSelects(t *testing.T) {
	m := newPreview(t)
	assert.Equal(t, 4, m.nav.Len())
	assert.Empty(t, m.Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, entity.ElementID("menu-home"), m.Focused(), "fallback to first registered")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, entity.ElementID("card-1"), m.Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "card-1", m.Selected())

	m, _ = press(t, m, runes("l"))
	assert.Equal(t, entity.ElementID("card-2"), m.Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "card-1", m.Selected(), "card-2 is not selectable")
	assert.Contains(t, m.status, "nothing to do")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Empty(t, m.Focused())
}

func TestPreviewModel_Quit(t *testing.T) {
	m := newPreview(t)
	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestPreviewModel_HelpToggle(t *testing.T) {
	m := newPreview(t)
	m, _ = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	m, _ = press(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestPreviewModel_LayoutReloaded(t *testing.T) {
	m := newPreview(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, entity.ElementID("menu-home"), m.Focused())

	next, _ := m.Update(LayoutReloadedMsg{Err: errors.New("bad toml")})
	m = next.(PreviewModel)
	require.Error(t, m.Err())
	assert.Contains(t, m.View(), "bad toml")
	assert.Equal(t, 4, m.nav.Len(), "failed reload keeps the current layout")

	reloaded := &entity.Layout{Name: "home", Elements: []entity.LayoutElement{
		{ID: "card-1", X: 200, Y: 0, Width: 200, Height: 100, Group: "grid"},
		{ID: "card-9", X: 450, Y: 0, Width: 200, Height: 100, Group: "grid"},
	}}
	next, _ = m.Update(LayoutReloadedMsg{Layout: reloaded})
	m = next.(PreviewModel)
	assert.NoError(t, m.Err())
	assert.Equal(t, 2, m.nav.Len())
	assert.Empty(t, m.Focused(), "focused element was removed")
	assert.Contains(t, m.status, "2 registered, 3 removed")
}

func TestPreviewModel_ConfigReloaded(t *testing.T) {
	m := newPreview(t)

	cfg := config.DefaultConfig()
	cfg.Keymap.Right = []string{"d"}
	next, _ := m.Update(ConfigReloadedMsg{Config: cfg})
	m = next.(PreviewModel)
	require.NoError(t, m.Err())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, runes("d"))
	assert.Equal(t, entity.ElementID("card-1"), m.Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, entity.ElementID("card-1"), m.Focused(), "old binding is gone")

	bad := config.DefaultConfig()
	bad.Navigation.PrimaryWeight = -1
	next, _ = m.Update(ConfigReloadedMsg{Config: bad})
	m = next.(PreviewModel)
	assert.Error(t, m.Err())
}

func TestPreviewModel_View(t *testing.T) {
	m := newPreview(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(PreviewModel)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	view := m.View()
	assert.Contains(t, view, "home")
	assert.Contains(t, view, "4 elements")
	assert.Contains(t, view, "card-1")
	assert.Contains(t, view, "menu-home")
	assert.Contains(t, view, "┏", "focused element is drawn with heavy borders")
}

func TestRenderCanvas(t *testing.T) {
	l := &entity.Layout{Width: 100, Height: 50, Elements: []entity.LayoutElement{
		{ID: "a", X: 0, Y: 0, Width: 50, Height: 50},
		{ID: "b", X: 50, Y: 0, Width: 50, Height: 50, Layer: 1},
	}}

	lines := strings.Split(RenderCanvas(l, "a", 20, 10, plainTheme()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "┏━━━━━━━━┓┌────────┐", lines[0])
	assert.Equal(t, "┃   a    ┃│   b    │", lines[4])
	assert.Equal(t, "┗━━━━━━━━┛└────────┘", lines[9])
}

func TestRenderCanvas_HigherLayerOnTop(t *testing.T) {
	l := &entity.Layout{Width: 100, Height: 50, Elements: []entity.LayoutElement{
		{ID: "modal", X: 25, Y: 10, Width: 50, Height: 30, Layer: 1, Label: "ok"},
		{ID: "bg", X: 0, Y: 0, Width: 100, Height: 50, Label: "background"},
	}}

	out := RenderCanvas(l, "", 20, 10, plainTheme())
	assert.Contains(t, out, "ok")
	lines := strings.Split(out, "\n")
	assert.Equal(t, "│    ┌────────┐    │", lines[2])
}

func TestRenderCanvas_Empty(t *testing.T) {
	assert.Empty(t, RenderCanvas(nil, "", 20, 10, plainTheme()))
	assert.Empty(t, RenderCanvas(&entity.Layout{}, "", 20, 10, plainTheme()))
	assert.Empty(t, RenderCanvas(homeLayout(), "", 1, 1, plainTheme()))
}
