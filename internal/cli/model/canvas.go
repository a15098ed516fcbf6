package model

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/spatialnav/internal/cli/styles"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/infrastructure/layout"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellElement
	cellOverlay
	cellFocused
)

type boxRunes struct {
	h, v, tl, tr, bl, br rune
}

var (
	lightBox = boxRunes{'─', '│', '┌', '┐', '└', '┘'}
	heavyBox = boxRunes{'━', '┃', '┏', '┓', '┗', '┛'}
)

// canvas is a character grid the layout is scaled onto.
type canvas struct {
	cols, rows int
	cells      [][]rune
	kinds      [][]cellKind
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([][]rune, rows), kinds: make([][]cellKind, rows)}
	for y := range rows {
		c.cells[y] = []rune(strings.Repeat(" ", cols))
		c.kinds[y] = make([]cellKind, cols)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, k cellKind) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells[y][x] = r
	c.kinds[y][x] = k
}

func (c *canvas) box(x0, y0, x1, y1 int, label string, k cellKind) {
	b := lightBox
	if k == cellFocused {
		b = heavyBox
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			var r rune
			switch {
			case y == y0 && x == x0:
				r = b.tl
			case y == y0 && x == x1:
				r = b.tr
			case y == y1 && x == x0:
				r = b.bl
			case y == y1 && x == x1:
				r = b.br
			case y == y0 || y == y1:
				r = b.h
			case x == x0 || x == x1:
				r = b.v
			default:
				r = ' '
			}
			c.set(x, y, r, k)
		}
	}

	// Label goes inside the box when there is room, on the top edge otherwise.
	ly := y0
	if y1-y0 >= 2 {
		ly = y0 + (y1-y0)/2
	}
	room := x1 - x0 - 1
	if room <= 0 {
		return
	}
	runes := []rune(label)
	if len(runes) > room {
		runes = runes[:room]
	}
	start := x0 + 1 + (room-len(runes))/2
	for i, r := range runes {
		c.set(start+i, ly, r, k)
	}
}

func (c *canvas) render(theme *styles.Theme) string {
	styleFor := map[cellKind]lipgloss.Style{
		cellElement: theme.Element,
		cellOverlay: theme.ElementOverlay,
		cellFocused: theme.ElementFocused,
	}

	var sb strings.Builder
	for y := range c.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= c.cols; x++ {
			if x < c.cols && c.kinds[y][x] == c.kinds[y][start] {
				continue
			}
			run := string(c.cells[y][start:x])
			if k := c.kinds[y][start]; k != cellEmpty {
				run = styleFor[k].Render(run)
			}
			sb.WriteString(run)
			start = x
		}
	}
	return sb.String()
}

// RenderCanvas draws l scaled to cols x rows. Higher layers are drawn on top;
// the focused element uses heavy borders.
func RenderCanvas(l *entity.Layout, focused entity.ElementID, cols, rows int, theme *styles.Theme) string {
	if l == nil || cols < 2 || rows < 2 {
		return ""
	}
	bounds := layout.Bounds(l)
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return ""
	}
	sx := float64(cols) / bounds.Width
	sy := float64(rows) / bounds.Height

	elements := make([]entity.LayoutElement, len(l.Elements))
	copy(elements, l.Elements)
	sort.SliceStable(elements, func(i, j int) bool { return elements[i].Layer < elements[j].Layer })

	c := newCanvas(cols, rows)
	for _, e := range elements {
		x0 := int(e.X * sx)
		y0 := int(e.Y * sy)
		x1 := max(int((e.X+e.Width)*sx)-1, x0+1)
		y1 := max(int((e.Y+e.Height)*sy)-1, y0+1)

		kind := cellElement
		switch {
		case entity.ElementID(e.ID) == focused:
			kind = cellFocused
		case e.Layer > 0:
			kind = cellOverlay
		}
		c.box(x0, y0, min(x1, cols-1), min(y1, rows-1), e.DisplayName(), kind)
	}
	return c.render(theme)
}
