package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	explicit  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// SPATIALNAV_NAVIGATION_PRIMARY_WEIGHT, SPATIALNAV_TRACE_DATABASE_PATH, ...
	v.SetEnvPrefix("SPATIALNAV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SPATIALNAV_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SPATIALNAV_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SPATIALNAV_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SPATIALNAV_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// SetConfigFile pins the manager to an explicit file instead of the search paths.
// A missing explicit file is an error rather than being created.
func (m *Manager) SetConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		m.viper.SetConfigType(ext)
	}
	m.explicit = true
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if errors.As(err, &configFileNotFoundError) && !m.explicit {
		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile, _ = GetConfigFile()
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

// reload rebuilds m.config from viper. Must be called with m.mu held for write.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureTracePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureTracePath(config *Config) error {
	if config.Trace.DatabasePath != "" {
		return nil
	}
	dbPath, err := GetTraceDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get trace database path: %w", err)
	}
	config.Trace.DatabasePath = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Navigation.DefaultGroup = strings.TrimSpace(config.Navigation.DefaultGroup)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to the XDG config file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	return WriteConfig(DefaultConfig(), configFile)
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("navigation.primary_weight", defaults.Navigation.PrimaryWeight)
	m.viper.SetDefault("navigation.lateral_weight", defaults.Navigation.LateralWeight)
	m.viper.SetDefault("navigation.misalignment_penalty", defaults.Navigation.MisalignmentPenalty)
	m.viper.SetDefault("navigation.group_scoping", defaults.Navigation.GroupScoping)
	m.viper.SetDefault("navigation.auto_focus", defaults.Navigation.AutoFocus)
	m.viper.SetDefault("navigation.default_group", defaults.Navigation.DefaultGroup)

	m.viper.SetDefault("keymap.up", defaults.Keymap.Up)
	m.viper.SetDefault("keymap.down", defaults.Keymap.Down)
	m.viper.SetDefault("keymap.left", defaults.Keymap.Left)
	m.viper.SetDefault("keymap.right", defaults.Keymap.Right)
	m.viper.SetDefault("keymap.select", defaults.Keymap.Select)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("trace.database_path", "")

	m.viper.SetDefault("preview.accent_color", defaults.Preview.AccentColor)
	m.viper.SetDefault("preview.muted_color", defaults.Preview.MutedColor)
}
