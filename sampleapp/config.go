package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// appConfig holds the demo settings.
type appConfig struct {
	Tag      string
	Message  string
	LogLevel string
}

type fileConfig struct {
	Tag      string `toml:"tag"`
	Message  string `toml:"message"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() appConfig {
	return appConfig{
		Tag:      "ruSt",
		Message:  "This is where your secret message will be!",
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. Keys absent from the file keep
// their default values.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return appConfig{}, err
	}

	if meta.IsDefined("tag") {
		tag := strings.TrimSpace(raw.Tag)
		if tag != "" {
			cfg.Tag = tag
		}
	}

	if meta.IsDefined("message") {
		cfg.Message = raw.Message
	}

	if meta.IsDefined("log_level") {
		level := strings.TrimSpace(strings.ToLower(raw.LogLevel))
		if level == "" {
			return appConfig{}, fmt.Errorf("log_level must not be blank")
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
