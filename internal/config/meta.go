package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"refresh":        "r",
			"toggle_ignored": []string{"i", "I"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "wal"
		case reflect.Int:
			switch fieldName {
			case "acquire_timeout_ms", "busy_timeout_ms":
				return 5000
			case "max_log_files":
				return 1000
			case "max_readers":
				return 10
			case "path_scoped_limit":
				return 64
			case "watch_debounce_ms":
				return 200
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "db_path":
			return "~/.tessera/state.db"
		case "editor":
			return "vim"
		case "global_ignore_file":
			return "~/.config/git/ignore"
		case "storage_mode":
			return "file"
		default:
			return "example"
		}
	case reflect.Slice:
		switch fieldName {
		case "status_colors":
			return parseList(DefaultStatusColors)
		case "watch_exclude":
			return []string{"node_modules", "target"}
		default:
			return []string{"example1", "example2"}
		}
	}

	return nil
}
