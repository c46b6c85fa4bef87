package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig holds render defaults loaded from a TOML file. Flags given on
// the command line always win over file values.
type fileConfig struct {
	Scale     int    `toml:"scale"`
	Frame     bool   `toml:"frame"`
	DarkChar  string `toml:"dark_char"`
	LightChar string `toml:"light_char"`
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	PNGScale  int    `toml:"png_scale"`
	Color     string `toml:"color"`
}

// defaultConfigPath returns the per-user config location, or "" when the
// user config dir cannot be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "qrgen", "config.toml")
}

// applyConfig merges TOML defaults into the flag variables. A missing file
// at the default path is fine; a missing file named by --config is an error.
func applyConfig(cmd *cobra.Command) error {
	path := flagConfig
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return nil
		}
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config %s: %w", path, err)
	}

	flags := cmd.Flags()
	if cfg.Scale != 0 && !flags.Changed("scale") {
		flagScale = cfg.Scale
	}
	if cfg.Frame && !flags.Changed("frame") {
		flagFrame = cfg.Frame
	}
	if cfg.DarkChar != "" && !flags.Changed("dark-char") {
		flagDarkChar = cfg.DarkChar
	}
	if cfg.LightChar != "" && !flags.Changed("light-char") {
		flagLightChar = cfg.LightChar
	}
	if cfg.Fg != "" && !flags.Changed("fg") {
		flagFg = cfg.Fg
	}
	if cfg.Bg != "" && !flags.Changed("bg") {
		flagBg = cfg.Bg
	}
	if cfg.PNGScale != 0 && !flags.Changed("png-scale") {
		flagPNGScale = cfg.PNGScale
	}
	if cfg.Color != "" && !flags.Changed("color") {
		flagColor = cfg.Color
		setupColor()
	}
	return nil
}
