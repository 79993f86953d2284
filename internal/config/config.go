// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the configuration for the composite CLI.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config is the complete composite CLI configuration.
type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Show   ShowConfig   `mapstructure:"show"`
}

// RenderConfig controls the render command and the built-in
// demonstration scene.
type RenderConfig struct {
	// Before is the default opening marker of the demonstration scene's
	// decorator.
	Before string `mapstructure:"before"`
	// After is the default closing marker of the demonstration scene's
	// decorator.
	After string `mapstructure:"after"`
	// Scene is the default scene file used when no -f flag is given.
	// Empty means the built-in demonstration scene.
	Scene string `mapstructure:"scene"`
}

// ShowConfig controls the show command.
type ShowConfig struct {
	// Color enables styled output for structural listings.
	Color bool `mapstructure:"color"`
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault("render.before", "<<<")
	viper.SetDefault("render.after", ">>>")
	viper.SetDefault("render.scene", "")
	viper.SetDefault("show.color", false)
}

// Dir returns the directory searched for the config file.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "composite")
}

// Load unmarshals the current viper state into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshalling")
	}
	return cfg, nil
}
