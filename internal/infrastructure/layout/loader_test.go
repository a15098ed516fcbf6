package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spatialnav/internal/domain/entity"
)

func TestLoad_TOML(t *testing.T) {
	l, err := Load(filepath.Join("testdata", "home.toml"))
	require.NoError(t, err)

	assert.Equal(t, "home", l.Name)
	require.Len(t, l.Elements, 4)
	assert.Equal(t, "menu-home", l.Elements[0].ID)
	assert.Equal(t, "Home", l.Elements[0].DisplayName())

	el := l.Elements[2].Element()
	assert.Equal(t, entity.ElementID("card-1"), el.ID)
	assert.Equal(t, entity.Point{X: 520, Y: 212.5}, el.Center)
	assert.Equal(t, "grid", el.Group)
}

func TestLoad_JSON(t *testing.T) {
	l, err := Load(filepath.Join("testdata", "modal.json"))
	require.NoError(t, err)

	confirm, ok := l.Find("confirm")
	require.True(t, ok)
	assert.Equal(t, 1, confirm.Layer)
	assert.True(t, confirm.Selectable)
	assert.Equal(t, "background", l.Elements[0].DisplayName())
}

func TestLoad_NameDefaultsToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[elements]]\nid = \"a\"\n"), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "settings", l.Name)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{name: "yaml", path: write("screen.yaml", "elements: []"), target: ErrUnsupportedLayoutFormat},
		{name: "empty", path: write("empty.toml", "name = \"x\"\n"), target: ErrEmptyLayout},
		{
			name:   "duplicate",
			path:   write("dup.json", `{"elements":[{"id":"a"},{"id":"a"}]}`),
			target: ErrDuplicateElementID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{"elements":[{"id":"a","colour":"red"}]}`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("[[elements]]\nid = \"a\"\ncolour = \"red\"\n"), FormatTOML)
	assert.Error(t, err)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	err := Validate(&entity.Layout{Elements: []entity.LayoutElement{
		{ID: ""},
		{ID: "a", Width: -1},
		{ID: "b"},
		{ID: "b"},
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateElementID)
	assert.Contains(t, err.Error(), "id is required")
	assert.Contains(t, err.Error(), "non-negative")
}

func TestBounds(t *testing.T) {
	l := &entity.Layout{Elements: []entity.LayoutElement{
		{ID: "a", X: 10, Y: 10, Width: 100, Height: 50},
		{ID: "b", X: 300, Y: 200, Width: 20, Height: 20},
	}}
	assert.Equal(t, entity.Size{Width: 320, Height: 220}, Bounds(l))

	l.Width, l.Height = 1920, 1080
	assert.Equal(t, entity.Size{Width: 1920, Height: 1080}, Bounds(l))
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "spatialnav layout")
	assert.Contains(t, string(data), "selectable")
}
