package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_DescribesSections(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "spatialnav configuration", doc["title"])
	assert.Contains(t, string(data), "primary_weight")
	assert.Contains(t, string(data), "accent_color")
}

func TestGenerateSchemaFile(t *testing.T) {
	configHome, _ := isolateXDG(t)

	path, err := GenerateSchemaFile()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configHome, "spatialnav", "config.schema.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestWriteConfig_LoadsBack(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Navigation.DefaultGroup = "menu"
	require.NoError(t, WriteConfig(cfg, path))

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(path)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "menu", mgr.Get().Navigation.DefaultGroup)
}
