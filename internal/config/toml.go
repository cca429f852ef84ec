// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Window WindowConfig `toml:"window"`
	View   ViewConfig   `toml:"view"`
	Steps  StepsConfig  `toml:"steps"`
	Graph  GraphConfig  `toml:"graph"`
}

// WindowConfig maps window settings.
type WindowConfig struct {
	Width  *int `toml:"width"`
	Height *int `toml:"height"`
	TPS    *int `toml:"tps"`
}

// ViewConfig maps the initial view.
type ViewConfig struct {
	Phase     *int     `toml:"phase"`
	Amplitude *float64 `toml:"amplitude"`
	Origin    *int     `toml:"origin"`
}

// StepsConfig maps the per-frame view increments.
type StepsConfig struct {
	Phase        *int     `toml:"phase"`
	Amplitude    *float64 `toml:"amplitude"`
	Origin       *int     `toml:"origin"`
	MinAmplitude *float64 `toml:"min-amplitude"`
}

// GraphConfig maps the plotted function and axis labelling.
type GraphConfig struct {
	Expression *string `toml:"expression"`
	Builtin    *string `toml:"builtin"`
	Ticks      *int    `toml:"ticks"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
