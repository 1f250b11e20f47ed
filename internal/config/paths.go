package config

import (
	"os"
	"path/filepath"
)

// GetTesseraHome returns TESSERA_HOME or ~/.tessera
func GetTesseraHome() string {
	home := os.Getenv("TESSERA_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".tessera"
		}
		return filepath.Join(homeDir, ".tessera")
	}
	return ExpandPath(home)
}

// GetDBPath returns $TESSERA_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetTesseraHome(), "state.db")
}

// GetSettingsPath returns $TESSERA_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetTesseraHome(), "settings.json")
}

// GetGlobalIgnorePath returns the default location of the global ignore file
func GetGlobalIgnorePath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "git", "ignore")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
