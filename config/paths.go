// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Default location of the configuration document.

package config

import (
	"os"
	"path/filepath"
)

const (
	configDirName  = "tilegui"
	configFileName = "tilegui.json"
)

// DefaultPath returns <user config dir>/tilegui/tilegui.json.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configDirName, configFileName), nil
}
