// Package config loads manlink's TOML configuration from the XDG config
// directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/kk-code-lab/manlink/internal/textutil"
)

// Config holds user-tunable settings.
type Config struct {
	// ManCommand is the program invoked for link jumps.
	ManCommand string `toml:"man_command"`
	// MouseMode is the startup mouse mode: "links" or "select".
	MouseMode string `toml:"mouse_mode"`
	// TabWidth is the tab stop interval used when expanding piped text.
	TabWidth int `toml:"tab_width"`
	// DebugLog, when set, is a file path that receives debug logging.
	DebugLog string `toml:"debug_log"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ManCommand: "man",
		MouseMode:  "links",
		TabWidth:   textutil.DefaultTabWidth,
	}
}

// GetConfigPath returns the configuration file path, creating parent
// directories as needed.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile("manlink/config.toml")
}

// Load reads the configuration file. A missing file is not an error and
// yields the defaults. A malformed file also yields the defaults, along
// with the parse error so the caller can warn without refusing to start.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := GetConfigPath()
	if err != nil {
		return cfg, fmt.Errorf("could not determine config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("could not parse %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.ManCommand == "" {
		c.ManCommand = "man"
	}
	if c.MouseMode != "links" && c.MouseMode != "select" {
		c.MouseMode = "links"
	}
	if c.TabWidth < 1 {
		c.TabWidth = textutil.DefaultTabWidth
	}
}

// WriteDefault writes a commented default configuration file. It refuses
// to overwrite an existing file.
func WriteDefault() (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists at %s", path)
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	header := "# manlink configuration file\n" +
		"# Location: " + path + "\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
