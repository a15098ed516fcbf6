package styles

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/spatialnav/internal/domain/build"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/infrastructure/config"
	"github.com/bnema/spatialnav/internal/ui/input"
)

func TestNewTheme_UsesPreviewColors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Preview.AccentColor = "#ff0000"

	theme := NewTheme(cfg)

	assert.Equal(t, "#ff0000", string(theme.Accent))
	assert.Equal(t, cfg.Preview.MutedColor, string(theme.Muted))
	assert.Equal(t, DefaultDarkPalette().Accent, string(NewTheme(nil).Accent))
}

func TestNewPreviewKeyMap_SkipsKeyCodes(t *testing.T) {
	km := NewPreviewKeyMap(input.DefaultKeyMap())

	assert.Equal(t, []string{"k", "up"}, km.Up.Keys())
	assert.Equal(t, "k/up", km.Up.Help().Key)
	assert.ElementsMatch(t, []string{"enter", "ok", "space"}, km.Select.Keys())
}

func TestTransitionRow(t *testing.T) {
	row := TransitionRow(entity.FocusTransition{Seq: 3, To: "card-1", Cause: entity.FocusCauseFallback, At: time.Now()})

	assert.Equal(t, "3", row[0])
	assert.Equal(t, "-", row[1])
	assert.Equal(t, "card-1", row[2])
	assert.Equal(t, "fallback", row[3])
	assert.Equal(t, "-", row[4])
}

func TestTraceRenderer(t *testing.T) {
	r := NewTraceRenderer(NewTheme(nil))

	assert.Contains(t, r.RenderSessions(nil), "No recorded sessions")
	out := r.RenderSessions([]entity.TraceSummary{{Session: "abc", Layout: "home", Transitions: 4, StartedAt: time.Now()}})
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "home")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestLayoutRenderer(t *testing.T) {
	r := NewLayoutRenderer(NewTheme(nil))

	valid := r.RenderValid("home.toml", &entity.Layout{Name: "home", Elements: []entity.LayoutElement{
		{ID: "a", Group: "menu"}, {ID: "b", Group: "grid", Layer: 1},
	}})
	assert.Contains(t, valid, "2 elements, 2 groups, 2 layers")

	invalid := r.RenderInvalid("bad.toml", errors.New("first\nsecond"))
	assert.Contains(t, invalid, "first")
	assert.Contains(t, invalid, "second")
}

func TestVersionRenderer(t *testing.T) {
	out := NewVersionRenderer(NewTheme(nil)).Render(build.Info{Version: "v1.2.3"})

	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, build.RepoURL())
}
