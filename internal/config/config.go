package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"selectbox/internal/eventbus"
)

// EnvPrefix is the prefix for environment overrides (SELECTBOX_UI_LOG_LEVEL, ...)
const EnvPrefix = "SELECTBOX"

// ErrNotFound is returned when a config path does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version int        `mapstructure:"version" toml:"version"`
	UI      UISettings `mapstructure:"ui" toml:"ui"`
	Fields  []Field    `mapstructure:"fields" toml:"fields"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	LogLevel       string `mapstructure:"log_level" toml:"log_level"`
	LogFile        string `mapstructure:"log_file" toml:"log_file,omitempty"`
	Filter         string `mapstructure:"filter" toml:"filter"`             // substring | fuzzy
	Escape         string `mapstructure:"escape" toml:"escape"`             // keep_search | clear_search
	SelectAll      string `mapstructure:"select_all" toml:"select_all"`     // replace | merge
	AllSelected    string `mapstructure:"all_selected" toml:"all_selected"` // count | members
	AutosaveValues bool   `mapstructure:"autosave_values" toml:"autosave_values"`
	MaxRows        int    `mapstructure:"max_rows" toml:"max_rows"`
	Mouse          bool   `mapstructure:"mouse" toml:"mouse"`
	IDStyle        string `mapstructure:"id_style" toml:"id_style"` // sequence | uuid
}

// Field describes one select widget
type Field struct {
	Name        string `mapstructure:"name" toml:"name"`
	Label       string `mapstructure:"label" toml:"label,omitempty"`
	Type        string `mapstructure:"type" toml:"type"`
	Placeholder string `mapstructure:"placeholder" toml:"placeholder,omitempty"`
	// SelectAllText labels the select-all row of a multiple field. Unset
	// means the default label; an empty string hides the row.
	SelectAllText *string        `mapstructure:"select_all_text" toml:"select_all_text,omitempty"`
	Value         any            `mapstructure:"value" toml:"value,omitempty"`
	Options       []OptionConfig `mapstructure:"options" toml:"options"`
	// Attributes are passed through to the widget frame (width, border, ...)
	Attributes map[string]string `mapstructure:"attributes" toml:"attributes,omitempty"`
}

// OptionConfig is one label/value pair of a field
type OptionConfig struct {
	Label string `mapstructure:"label" toml:"label"`
	Value any    `mapstructure:"value" toml:"value"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "selectbox", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Path returns the default config file path
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the default path. A missing file
// yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Fields: len(cfg.Fields)})
	}
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Environment
// variables prefixed with SELECTBOX_ override the [ui] section.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("ui.log_level", defaults.UI.LogLevel)
	v.SetDefault("ui.log_file", defaults.UI.LogFile)
	v.SetDefault("ui.filter", defaults.UI.Filter)
	v.SetDefault("ui.escape", defaults.UI.Escape)
	v.SetDefault("ui.select_all", defaults.UI.SelectAll)
	v.SetDefault("ui.all_selected", defaults.UI.AllSelected)
	v.SetDefault("ui.autosave_values", defaults.UI.AutosaveValues)
	v.SetDefault("ui.max_rows", defaults.UI.MaxRows)
	v.SetDefault("ui.mouse", defaults.UI.Mouse)
	v.SetDefault("ui.id_style", defaults.UI.IDStyle)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// FieldValues returns the current value of every field keyed by name
func (c *Config) FieldValues() map[string]any {
	values := make(map[string]any, len(c.Fields))
	for _, f := range c.Fields {
		values[f.Name] = f.Value
	}
	return values
}

// SetFieldValue updates a field's stored value. It returns false when no
// field has that name.
func (c *Config) SetFieldValue(name string, value any) bool {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			c.Fields[i].Value = value
			return true
		}
	}
	return false
}

// DefaultConfig returns the default configuration with two demo fields
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			LogLevel:       "info",
			Filter:         FilterSubstring,
			Escape:         EscapeKeepSearch,
			SelectAll:      SelectAllReplace,
			AllSelected:    AllSelectedCount,
			AutosaveValues: true,
			MaxRows:        8,
			Mouse:          true,
			IDStyle:        IDStyleSequence,
		},
		Fields: []Field{
			{
				Name:        "color",
				Label:       "Color",
				Type:        "single",
				Placeholder: "Pick a color",
				Options: []OptionConfig{
					{Label: "Red", Value: 1},
					{Label: "Green", Value: 2},
					{Label: "Blue", Value: 3},
				},
			},
			{
				Name:        "fruits",
				Label:       "Fruits",
				Type:        "multiple",
				Placeholder: "Pick fruits",
				Options: []OptionConfig{
					{Label: "Apple", Value: "apple"},
					{Label: "Banana", Value: "banana"},
					{Label: "Cherry", Value: "cherry"},
					{Label: "Grape", Value: "grape"},
				},
			},
		},
	}
}
