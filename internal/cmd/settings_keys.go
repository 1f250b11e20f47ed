package cmd

import (
	"fmt"
	"strings"

	"tessera/internal/config"
	"tessera/internal/logging"
	"tessera/internal/ui"
)

// SettingsKeysCmd manages browser key bindings
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List key bindings with any custom overrides" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Drop a custom binding and return to the default"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
}

// keyBinding is one row of `settings keys list`
type keyBinding struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Name    string   `json:"name"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()

	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}

	rows := make([]keyBinding, 0, len(defaults))
	for _, name := range ui.GetValidKeyNames() {
		rows = append(rows, keyBinding{Custom: custom[name], Default: defaults[name], Name: name})
	}

	if s.Format == "json" {
		return printJSON(rows)
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())
	w := newTable()
	fmt.Fprintln(w, "NAME\tDEFAULT\tCUSTOM")
	for _, row := range rows {
		customStr := "-"
		if len(row.Custom) > 0 {
			customStr = strings.Join(row.Custom, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Name, strings.Join(row.Default, ", "), customStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'tessera settings keys set <name> <value>' to customize.")
	return nil
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Binding name (e.g., refresh, toggle_ignored, quit)"`
	Value string `arg:"" help:"Key or comma-separated keys (e.g., r or up,k)"`
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	err := updateKeyBindings(func(keys config.KeyBindingsConfig) {
		keys[s.Key] = values
	})
	if err != nil {
		return err
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// SettingsKeysResetCmd removes a custom binding
type SettingsKeysResetCmd struct {
	Key string `arg:"" help:"Binding name"`
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'", s.Key)
	}
	err := updateKeyBindings(func(keys config.KeyBindingsConfig) {
		delete(keys, s.Key)
	})
	if err != nil {
		return err
	}
	fmt.Printf("Reset '%s' to: %s\n", s.Key, strings.Join(ui.GetDefaultKeyBindings()[s.Key], ", "))
	return nil
}

// updateKeyBindings applies fn to the stored bindings, checks for conflicts
// and saves the settings file
func updateKeyBindings(fn func(config.KeyBindingsConfig)) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}

	fn(settings.Keys)

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// parseKeyValues splits a comma-separated binding
func parseKeyValues(value string) []string {
	var result []string
	for _, p := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
