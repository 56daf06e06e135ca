package config

import (
	"os"
	"path/filepath"

	"minigrep/internal/errors"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Settings represents the optional settings file. It only affects logging
// and how the report is styled; it never changes how tokens are validated.
type Settings struct {
	Log struct {
		Debug  bool   `yaml:"debug"`  // Log at debug level
		Format string `yaml:"format"` // Log format: text or json
		File   string `yaml:"file"`   // Extra log file, appended to
	} `yaml:"log"`
	Output struct {
		Color bool   `yaml:"color"` // Style the echoed query and path
		Theme string `yaml:"theme"` // Theme name, see GetTheme
	} `yaml:"output"`
}

// DefaultSettingsPath returns ~/.config/minigrep/config.yaml.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewSettingsError("cannot locate home directory", "", errors.SettingsNotFound, err)
	}
	return filepath.Join(home, ".config", "minigrep", "config.yaml"), nil
}

// LoadSettings loads settings from the default location on fs.
func LoadSettings(fs afero.Fs) (*Settings, error) {
	path, err := DefaultSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFile(fs, path)
}

// LoadSettingsFile loads settings from a specific file path on fs.
// If the file doesn't exist, returns the default settings.
func LoadSettingsFile(fs afero.Fs, path string) (*Settings, error) {
	s := defaultSettings()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.NewSettingsError("error reading settings file", path, errors.InvalidSettings, err)
	}

	// Keys missing from the file keep their defaults
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.NewSettingsError("error parsing settings file", path, errors.InvalidSettings, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func defaultSettings() *Settings {
	s := &Settings{}
	s.Log.Debug = false
	s.Log.Format = "text"
	s.Output.Color = true
	s.Output.Theme = "default"
	return s
}

// NewSettings returns the default settings.
func NewSettings() *Settings {
	return defaultSettings()
}

// Validate checks that the log format and theme are known.
func (s *Settings) Validate() error {
	if s == nil {
		return errors.NewSettingsError("nil settings", "", errors.InvalidSettings, nil)
	}

	switch s.Log.Format {
	case "text", "json":
	default:
		return errors.NewSettingsError("invalid log format", s.Log.Format, errors.InvalidSettings, nil)
	}

	if _, ok := themes[s.Output.Theme]; !ok {
		return errors.NewSettingsError("unknown theme", s.Output.Theme, errors.InvalidSettings, nil)
	}

	return nil
}

var themes = map[string]map[string]string{
	"default": {
		"primary":  "213", // Purple
		"info":     "39",  // Blue
		"error":    "196", // Red
		"emphasis": "212", // Light Pink
	},
	"dark": {
		"primary":  "105",
		"info":     "33",
		"error":    "160",
		"emphasis": "147",
	},
	"light": {
		"primary":  "135",
		"info":     "117",
		"error":    "210",
		"emphasis": "219",
	},
	"monochrome": {
		"primary":  "245",
		"info":     "248",
		"error":    "232",
		"emphasis": "255",
	},
	"ocean": {
		"primary":  "31",
		"info":     "33",
		"error":    "196",
		"emphasis": "51",
	},
	"sunset": {
		"primary":  "208",
		"info":     "69",
		"error":    "196",
		"emphasis": "203",
	},
}

// GetTheme returns the colours of the named theme, or the default theme if
// the name is unknown.
func GetTheme(name string) map[string]string {
	if theme, exists := themes[name]; exists {
		return theme
	}
	return themes["default"]
}
