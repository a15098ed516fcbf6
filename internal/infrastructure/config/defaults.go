package config

import "github.com/bnema/spatialnav/internal/application/usecase"

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultAccentColor = "#7D56F4"
	defaultMutedColor  = "#626262"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Navigation: NavigationConfig{
			PrimaryWeight:       usecase.DefaultPrimaryWeight,
			LateralWeight:       usecase.DefaultLateralWeight,
			MisalignmentPenalty: usecase.DefaultMisalignmentPenalty,
			GroupScoping:        true,
		},
		Keymap: KeymapConfig{
			Up:     []string{"up", "k"},
			Down:   []string{"down", "j"},
			Left:   []string{"left", "h"},
			Right:  []string{"right", "l"},
			Select: []string{"enter", "ok", "space"},
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Preview: PreviewConfig{
			AccentColor: defaultAccentColor,
			MutedColor:  defaultMutedColor,
		},
	}
}
