// Package config loads the site configuration and theme settings used to
// build an adaptable.Theme.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"impractical.co/adaptable"
)

// EnvPrefix is the prefix of environment variables that override the file.
// ADAPTABLE_SETTINGS_FONTNAME sets settings.fontname.
const EnvPrefix = "ADAPTABLE_"

var (
	// ErrMissingWWWRoot is returned by Validate when no site root is set.
	ErrMissingWWWRoot = errors.New("site.wwwroot is required")

	// ErrInvalidWWWRoot is returned by Validate when the site root isn't
	// an absolute http or https URL.
	ErrInvalidWWWRoot = errors.New("site.wwwroot must be an absolute http or https URL")

	// ErrInvalidColor is returned by Validate when the main color isn't a
	// hex color.
	ErrInvalidColor = errors.New("settings.maincolor must be a hex color like #3a454b")
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config is everything needed to build a Theme.
type Config struct {
	Site     adaptable.SiteConfig `koanf:"site"`
	Settings adaptable.Settings   `koanf:"settings"`

	// StringsDir is a directory of "<lang>.yaml" language packs to use
	// instead of the bundled ones.
	StringsDir string `koanf:"stringsdir"`
}

// DefaultConfig returns the theme's out-of-the-box configuration.
func DefaultConfig() *Config {
	return &Config{
		Site: adaptable.SiteConfig{
			WWWRoot:  "http://localhost",
			FullName: "Adaptable",
		},
		Settings: adaptable.Settings{
			MainColor:            "#3a454b",
			FontName:             "Open Sans",
			FontHeaderName:       "Roboto",
			FontTitleName:        "Audiowide",
			StickyNavbar:         true,
			EnableZoom:           true,
			EnableShowHideBlocks: true,
			DisplayLogin:         adaptable.LoginBox,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ADAPTABLE_*). A missing file leaves the
// defaults in place.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// ADAPTABLE_SITE_WWWROOT -> site.wwwroot
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values. Settings
// the theme can fall back from, like an unknown login style, aren't errors.
func (c *Config) Validate() error {
	if c.Site.WWWRoot == "" {
		return ErrMissingWWWRoot
	}
	root, err := url.Parse(c.Site.WWWRoot)
	if err != nil || (root.Scheme != "http" && root.Scheme != "https") || root.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidWWWRoot, c.Site.WWWRoot)
	}
	if c.Settings.MainColor != "" && !hexColor.MatchString(c.Settings.MainColor) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Settings.MainColor)
	}
	return nil
}

// Theme builds the adaptable.Theme described by the configuration.
func (c *Config) Theme() (*adaptable.Theme, error) {
	var strs *adaptable.StringTable
	if c.StringsDir != "" {
		var err error
		strs, err = adaptable.LoadStrings(os.DirFS(c.StringsDir), ".", adaptable.DefaultLang)
		if err != nil {
			return nil, fmt.Errorf("loading strings from %s: %w", c.StringsDir, err)
		}
	}
	return adaptable.NewTheme(c.Site, c.Settings, strs)
}
