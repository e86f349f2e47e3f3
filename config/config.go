// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration documents made of named sections.
// Usage: Load a document, let each package register its section defaults,
//   then read typed values. Nothing here is global; callers own the Config.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// Load reads a config document. A missing file yields an empty config so
// registered defaults apply.
func Load(path string) (Config, error) {
	cfg, found, err := readConfig(path)
	if err != nil {
		return make(Config), fmt.Errorf("load config %s: %w", path, err)
	}
	if !found {
		return make(Config), nil
	}
	return cfg, nil
}

// Save writes cfg as indented JSON, creating parent directories.
func Save(path string, cfg Config) error {
	if err := writeConfig(path, cfg); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	if cfg == nil {
		cfg = make(Config)
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
