// SPDX-FileCopyrightText: 2025 The cpmod Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "cpmod"

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// GetConfigPath returns the config file path, honoring CPMOD_CONFIG.
func GetConfigPath() string {
	return GetConfigPathWithEnv(os.Getenv("CPMOD_CONFIG"), GetXDGConfigHome())
}

// GetConfigPathWithEnv returns the config file path from explicit values for testing.
func GetConfigPathWithEnv(override, configHome string) string {
	if override != "" {
		return ExpandPath(override)
	}

	if configHome == "" {
		return ""
	}

	return filepath.Join(configHome, appName, "config.toml")
}

// GetLockPath returns the per-user run lock path, preferring XDG_RUNTIME_DIR
// over the user cache directory. It is empty when neither is known.
func GetLockPath() string {
	cacheDir, _ := os.UserCacheDir()

	return GetLockPathWithEnv(os.Getenv("XDG_RUNTIME_DIR"), cacheDir)
}

// GetLockPathWithEnv returns the run lock path from explicit directories for testing.
func GetLockPathWithEnv(runtimeDir, cacheDir string) string {
	switch {
	case runtimeDir != "":
		return filepath.Join(runtimeDir, appName, appName+".lock")
	case cacheDir != "":
		return filepath.Join(cacheDir, appName, appName+".lock")
	default:
		return ""
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
