package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/spatialnav/internal/domain/entity"
)

// LayoutRenderer renders layout validation results.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderValid renders a summary line for a layout that loaded cleanly.
func (r *LayoutRenderer) RenderValid(path string, l *entity.Layout) string {
	groups := make(map[string]struct{})
	layers := make(map[int]struct{})
	for _, e := range l.Elements {
		if e.Group != "" {
			groups[e.Group] = struct{}{}
		}
		layers[e.Layer] = struct{}{}
	}
	return fmt.Sprintf("  %s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(path),
		r.theme.Subtle.Render(fmt.Sprintf("%q: %d elements, %d groups, %d layers", l.Name, len(l.Elements), len(groups), len(layers))),
	)
}

// RenderInvalid renders every problem of a layout that failed to load.
func (r *LayoutRenderer) RenderInvalid(path string, err error) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s %s\n", r.theme.ErrorStyle.Render(IconX), r.theme.Highlight.Render(path)))
	bullet := lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconCursor)
	for _, line := range strings.Split(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			sb.WriteString(fmt.Sprintf("    %s %s\n", bullet, line))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
