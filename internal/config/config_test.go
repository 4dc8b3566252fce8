package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impractical.co/adaptable"
	"impractical.co/adaptable/internal/config"
)

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adaptable.yml")
	err := os.WriteFile(path, []byte(`site:
  wwwroot: https://school.example.com
  fullname: Example School
settings:
  fontname: Lato
  displaylogin: button
  alerts:
    - enabled: true
      type: warning
      text: "**Maintenance** tonight"
`), 0o600)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://school.example.com", cfg.Site.WWWRoot)
	assert.Equal(t, "Example School", cfg.Site.FullName)
	assert.Equal(t, "Lato", cfg.Settings.FontName)
	assert.Equal(t, adaptable.LoginButton, cfg.Settings.DisplayLogin)
	require.Len(t, cfg.Settings.Alerts, 1)
	assert.Equal(t, adaptable.Alert{Enabled: true, Type: "warning", Text: "**Maintenance** tonight"}, cfg.Settings.Alerts[0])

	// values the file doesn't mention keep their defaults
	assert.Equal(t, "Roboto", cfg.Settings.FontHeaderName)
	assert.True(t, cfg.Settings.StickyNavbar)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ADAPTABLE_SETTINGS_FONTNAME", "Merriweather")
	t.Setenv("ADAPTABLE_SITE_WWWROOT", "https://env.example.com")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "Merriweather", cfg.Settings.FontName)
	assert.Equal(t, "https://env.example.com", cfg.Site.WWWRoot)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adaptable.yml")
	cfg := config.DefaultConfig()
	cfg.Site.LoginHTTPS = true
	cfg.Settings.HeaderBgImage = "https://cdn.example.com/bg.jpg"
	cfg.Settings.Alerts = []adaptable.Alert{{Enabled: true, Type: "info", Text: "Welcome back"}}

	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		mutate func(cfg *config.Config)
		err    error
	}{
		"defaults": {
			mutate: func(_ *config.Config) {},
		},
		"missing wwwroot": {
			mutate: func(cfg *config.Config) { cfg.Site.WWWRoot = "" },
			err:    config.ErrMissingWWWRoot,
		},
		"relative wwwroot": {
			mutate: func(cfg *config.Config) { cfg.Site.WWWRoot = "/moodle" },
			err:    config.ErrInvalidWWWRoot,
		},
		"ftp wwwroot": {
			mutate: func(cfg *config.Config) { cfg.Site.WWWRoot = "ftp://school.example.com" },
			err:    config.ErrInvalidWWWRoot,
		},
		"bad color": {
			mutate: func(cfg *config.Config) { cfg.Settings.MainColor = "blue" },
			err:    config.ErrInvalidColor,
		},
		"short color": {
			mutate: func(cfg *config.Config) { cfg.Settings.MainColor = "#fff" },
		},
		"unknown login style": {
			mutate: func(cfg *config.Config) { cfg.Settings.DisplayLogin = "popup" },
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestThemeCustomStrings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("hideblocks: Collapse blocks\n"), 0o600))

	cfg := config.DefaultConfig()
	cfg.StringsDir = dir
	theme, err := cfg.Theme()
	require.NoError(t, err)
	assert.Equal(t, "Collapse blocks", theme.Strings.Get("en", "hideblocks"))

	cfg.StringsDir = filepath.Join(dir, "missing")
	_, err = cfg.Theme()
	require.Error(t, err)
}
