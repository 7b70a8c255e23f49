// Package config loads viewer settings from the user's TOML config file.
// A missing file yields the defaults; a malformed one is an error so typos
// do not silently revert colors.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/kk-code-lab/vat/internal/textutil"
	"github.com/kk-code-lab/vat/internal/ui"
)

// Config is the on-disk configuration shape.
type Config struct {
	TabWidth int         `toml:"tab_width"`
	Paging   string      `toml:"paging"`
	Theme    ThemeConfig `toml:"theme"`
}

// ThemeConfig holds "#rrggbb" color overrides. Empty fields keep the
// built-in color.
type ThemeConfig struct {
	Selection  string `toml:"selection"`
	Visual     string `toml:"visual"`
	Match      string `toml:"match"`
	LineNumber string `toml:"line_number"`
	Border     string `toml:"border"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		TabWidth: textutil.DefaultTabWidth,
		Paging:   "auto",
	}
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vat", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vat", "config.toml")
}

// Load reads the config at path. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = textutil.DefaultTabWidth
	}
	switch cfg.Paging {
	case "auto", "always", "never":
	case "":
		cfg.Paging = "auto"
	default:
		return Default(), fmt.Errorf("config %s: paging must be auto, always or never, got %q", path, cfg.Paging)
	}
	return cfg, nil
}

// ApplyTheme overlays the configured colors onto a theme. Colors that fail
// to parse are skipped.
func (tc ThemeConfig) ApplyTheme(theme ui.Theme) ui.Theme {
	if c, ok := ui.ParseColor(tc.Selection); ok {
		theme.Selection = theme.Selection.Background(c)
	}
	if c, ok := ui.ParseColor(tc.Visual); ok {
		theme.Visual = theme.Visual.Background(c)
	}
	if c, ok := ui.ParseColor(tc.Match); ok {
		theme.Match = theme.Match.Foreground(c)
	}
	if c, ok := ui.ParseColor(tc.LineNumber); ok {
		theme.LineNumber = theme.LineNumber.Foreground(c)
	}
	if c, ok := ui.ParseColor(tc.Border); ok {
		theme.Border = theme.Border.Foreground(c)
	}
	return theme
}
