// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later


package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the shell. Everything can be
// overridden through environment variables with the SEQUEL_ prefix
// (e.g. SEQUEL_TOAST_DURATION=5s).
type Config struct {
	Debug         bool          `mapstructure:"debug"`
	LogFile       string        `mapstructure:"log_file"`
	ToastDuration time.Duration `mapstructure:"toast_duration"`
	RefreshDelay  time.Duration `mapstructure:"refresh_delay"`
}

var defaultConfig = Config{
	Debug:         false,
	ToastDuration: 3 * time.Second,
	RefreshDelay:  1500 * time.Millisecond,
}

// Load builds the configuration from defaults and environment variables.
// This phase has no config file: the environment is the only source, the
// same way the original settings were sourced.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("SEQUEL")
	v.AutomaticEnv()

	v.SetDefault("debug", defaultConfig.Debug)
	v.SetDefault("log_file", defaultConfig.LogFile)
	v.SetDefault("toast_duration", defaultConfig.ToastDuration)
	v.SetDefault("refresh_delay", defaultConfig.RefreshDelay)

	// Unmarshal only sees keys viper already knows about, so bind each
	// one explicitly.
	for _, key := range []string{"debug", "log_file", "toast_duration", "refresh_delay"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.ToastDuration <= 0 {
		config.ToastDuration = defaultConfig.ToastDuration
	}
	if config.RefreshDelay <= 0 {
		config.RefreshDelay = defaultConfig.RefreshDelay
	}

	return &config, nil
}
