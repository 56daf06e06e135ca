package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"minigrep/internal/config"
	"minigrep/internal/errors"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsPath = "/home/test/.config/minigrep/config.yaml"

// Helper function to put a settings file on an in-memory filesystem
func createTestYAML(t *testing.T, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, settingsPath, []byte(content), 0644))
	return fs
}

// readFailFs fails every Open with err.
type readFailFs struct {
	afero.Fs
	err error
}

func (f readFailFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: f.err}
}

const (
	validYAML = `
log:
  debug: true
  format: json
output:
  color: false
  theme: ocean
`
	partialYAML = `
output:
  theme: dark
`
	invalidSyntaxYAML = `
log:
  debug: "not a bool"
`
	invalidFormatYAML = `
log:
  format: xml
`
	invalidThemeYAML = `
output:
  theme: neon
`
)

func TestLoadSettingsFile(t *testing.T) {
	t.Run("load valid settings", func(t *testing.T) {
		s, err := config.LoadSettingsFile(createTestYAML(t, validYAML), settingsPath)
		require.NoError(t, err)

		assert.True(t, s.Log.Debug)
		assert.Equal(t, "json", s.Log.Format)
		assert.False(t, s.Output.Color)
		assert.Equal(t, "ocean", s.Output.Theme)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		s, err := config.LoadSettingsFile(createTestYAML(t, partialYAML), settingsPath)
		require.NoError(t, err)

		assert.Equal(t, "dark", s.Output.Theme)
		assert.Equal(t, "text", s.Log.Format)
		assert.True(t, s.Output.Color)
		assert.False(t, s.Log.Debug)
	})

	t.Run("load non-existent file", func(t *testing.T) {
		s, err := config.LoadSettingsFile(afero.NewMemMapFs(), settingsPath)
		require.NoError(t, err, "a missing settings file yields the defaults")
		assert.Equal(t, config.NewSettings(), s)
	})

	t.Run("unreadable file", func(t *testing.T) {
		fs := readFailFs{Fs: afero.NewMemMapFs(), err: os.ErrPermission}
		_, err := config.LoadSettingsFile(fs, settingsPath)
		require.Error(t, err)
		assert.Equal(t, errors.InvalidSettings, errors.KindOf(err))
		assert.Contains(t, err.Error(), "error reading settings file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.LoadSettingsFile(createTestYAML(t, invalidSyntaxYAML), settingsPath)
		require.Error(t, err)
		assert.Equal(t, errors.InvalidSettings, errors.KindOf(err))
		assert.Contains(t, err.Error(), "error parsing settings file")
	})

	t.Run("invalid log format", func(t *testing.T) {
		_, err := config.LoadSettingsFile(createTestYAML(t, invalidFormatYAML), settingsPath)
		require.Error(t, err)
		assert.Equal(t, errors.InvalidSettings, errors.KindOf(err))
		assert.Contains(t, err.Error(), "invalid log format: xml")
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := config.LoadSettingsFile(createTestYAML(t, invalidThemeYAML), settingsPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown theme: neon")
	})
}

func TestLoadSettingsDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := config.DefaultSettingsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "minigrep", "config.yaml"), path)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, path, []byte(partialYAML), 0644))

	s, err := config.LoadSettings(fs)
	require.NoError(t, err)
	assert.Equal(t, "dark", s.Output.Theme)
}

func TestSettingsValidate(t *testing.T) {
	var nilSettings *config.Settings
	assert.Error(t, nilSettings.Validate())
	assert.NoError(t, config.NewSettings().Validate())

	for _, name := range []string{"default", "dark", "light", "monochrome", "ocean", "sunset"} {
		s := config.NewSettings()
		s.Output.Theme = name
		assert.NoError(t, s.Validate(), name)
	}
}

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "31", config.GetTheme("ocean")["primary"])
	assert.Equal(t, config.GetTheme("default"), config.GetTheme("no-such-theme"))
}
