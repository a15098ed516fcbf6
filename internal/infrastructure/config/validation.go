package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateNavigation(config)...)
	validationErrors = append(validationErrors, validateKeymap(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePreview(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks cfg the same way Load does.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(cfg)
}

func validateNavigation(config *Config) []string {
	if err := config.Navigation.Scoring().Validate(); err != nil {
		return []string{fmt.Sprintf("navigation: %v", err)}
	}
	return nil
}

func validateKeymap(config *Config) []string {
	if _, err := config.Keymap.KeyMap(); err != nil {
		return []string{fmt.Sprintf("keymap: %v", err)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return nil
	default:
		return []string{fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error", config.Logging.Level)}
	}
}

func validatePreview(config *Config) []string {
	var validationErrors []string
	if !validColor(config.Preview.AccentColor) {
		validationErrors = append(validationErrors, fmt.Sprintf("preview.accent_color %q must be a hex color or ANSI code", config.Preview.AccentColor))
	}
	if !validColor(config.Preview.MutedColor) {
		validationErrors = append(validationErrors, fmt.Sprintf("preview.muted_color %q must be a hex color or ANSI code", config.Preview.MutedColor))
	}
	return validationErrors
}

// validColor accepts the color forms lipgloss understands: hex or an ANSI 256 index.
func validColor(s string) bool {
	if hexColorPattern.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
