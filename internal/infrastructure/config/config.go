// Package config loads, validates and watches spatialnav configuration with Viper.
package config

import (
	"github.com/bnema/spatialnav/internal/application/usecase"
	"github.com/bnema/spatialnav/internal/ui/input"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for spatialnav.
type Config struct {
	// Navigation controls scoring and focus behaviour of the resolver.
	Navigation NavigationConfig `mapstructure:"navigation" toml:"navigation" json:"navigation"`
	// Keymap binds key names to navigation actions.
	Keymap KeymapConfig `mapstructure:"keymap" toml:"keymap" json:"keymap"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Trace controls where recorded focus sessions are stored.
	Trace TraceConfig `mapstructure:"trace" toml:"trace" json:"trace"`
	// Preview styles the terminal layout preview.
	Preview PreviewConfig `mapstructure:"preview" toml:"preview" json:"preview"`
}

// NavigationConfig holds the directional resolver weights and focus options.
type NavigationConfig struct {
	// PrimaryWeight multiplies the distance along the travel axis.
	PrimaryWeight float64 `mapstructure:"primary_weight" toml:"primary_weight" json:"primary_weight" jsonschema:"minimum=0"`
	// LateralWeight multiplies the distance across the travel axis.
	LateralWeight float64 `mapstructure:"lateral_weight" toml:"lateral_weight" json:"lateral_weight" jsonschema:"exclusiveMinimum=0"`
	// MisalignmentPenalty is added to candidates lying more to the side than in the travel direction.
	MisalignmentPenalty float64 `mapstructure:"misalignment_penalty" toml:"misalignment_penalty" json:"misalignment_penalty" jsonschema:"minimum=0"`
	// GroupScoping prefers candidates in the focused element's group.
	GroupScoping bool `mapstructure:"group_scoping" toml:"group_scoping" json:"group_scoping"`
	// AutoFocus focuses the first registered element when nothing is focused.
	AutoFocus bool `mapstructure:"auto_focus" toml:"auto_focus" json:"auto_focus"`
	// DefaultGroup is used for the fallback when nothing is focused.
	DefaultGroup string `mapstructure:"default_group" toml:"default_group" json:"default_group"`
}

// Scoring converts the configured weights to resolver scoring.
func (n NavigationConfig) Scoring() usecase.Scoring {
	return usecase.Scoring{
		PrimaryWeight:       n.PrimaryWeight,
		LateralWeight:       n.LateralWeight,
		MisalignmentPenalty: n.MisalignmentPenalty,
	}
}

// KeymapConfig lists key names per action.
type KeymapConfig struct {
	Up     []string `mapstructure:"up" toml:"up" json:"up"`
	Down   []string `mapstructure:"down" toml:"down" json:"down"`
	Left   []string `mapstructure:"left" toml:"left" json:"left"`
	Right  []string `mapstructure:"right" toml:"right" json:"right"`
	Select []string `mapstructure:"select" toml:"select" json:"select"`
}

// Bindings returns the keymap in the form accepted by input.NewKeyMap.
func (k KeymapConfig) Bindings() map[input.Action][]string {
	return map[input.Action][]string{
		input.ActionNavUp:    k.Up,
		input.ActionNavDown:  k.Down,
		input.ActionNavLeft:  k.Left,
		input.ActionNavRight: k.Right,
		input.ActionSelect:   k.Select,
	}
}

// KeyMap builds the input key map.
func (k KeymapConfig) KeyMap() (*input.KeyMap, error) {
	return input.NewKeyMap(k.Bindings())
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// TraceConfig holds focus trace storage settings.
type TraceConfig struct {
	// DatabasePath is the SQLite file; empty means $XDG_STATE_HOME/spatialnav/trace.sqlite.
	DatabasePath string `mapstructure:"database_path" toml:"database_path" json:"database_path"`
}

// PreviewConfig styles the preview canvas.
type PreviewConfig struct {
	AccentColor string `mapstructure:"accent_color" toml:"accent_color" json:"accent_color"`
	MutedColor  string `mapstructure:"muted_color" toml:"muted_color" json:"muted_color"`
}
