package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig maps browser binding names (e.g. "refresh") to key sequences
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown binding names and keys bound twice.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of $TESSERA_HOME/settings.json.
// Pointer fields distinguish "not set" from the zero value.
type Settings struct {
	AcquireTimeoutMs *int              `json:"acquire_timeout_ms,omitempty"`
	BusyTimeoutMs    *int              `json:"busy_timeout_ms,omitempty"`
	DBPath           string            `json:"db_path,omitempty"`
	Debug            *bool             `json:"debug,omitempty"`
	Editor           string            `json:"editor,omitempty"`
	GlobalIgnoreFile string            `json:"global_ignore_file,omitempty"`
	Keys             KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles      *int              `json:"max_log_files,omitempty"`
	MaxReaders       *int              `json:"max_readers,omitempty"`
	PathScopedLimit  *int              `json:"path_scoped_limit,omitempty"`
	StatusColors     StringArray       `json:"status_colors,omitempty"`
	StorageMode      string            `json:"storage_mode,omitempty"`
	WAL              *bool             `json:"wal,omitempty"`
	WatchDebounceMs  *int              `json:"watch_debounce_ms,omitempty"`
	WatchExclude     StringArray       `json:"watch_exclude,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseList(str)
	return nil
}

// parseList splits a comma-separated string, trimming whitespace
func parseList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $TESSERA_HOME/settings.json.
// A missing file yields empty Settings, not an error.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}
	if settings.GlobalIgnoreFile != "" {
		settings.GlobalIgnoreFile = ExpandPath(settings.GlobalIgnoreFile)
	}

	return &settings, nil
}

// SaveSettings writes settings to $TESSERA_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo writes settings under an exclusive advisory lock so two
// processes never interleave their writes.
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to lock settings file: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate settings file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return file.Sync()
}
