package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings of the browser
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "refresh", Defaults: []string{"r"}, Help: "rescan the working tree", TipFormat: "press %s to force a full rescan"},

	// Navigation keys
	{Name: "clear_filter", Defaults: []string{"esc"}, Help: "clear filter"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next entry"},
	{Name: "filter", Defaults: []string{"/"}, Help: "filter entries by name", TipFormat: "press %s to filter the current directory"},
	{Name: "open", Defaults: []string{"enter", "right", "l"}, Help: "enter directory or edit file", TipFormat: "press %s on a file to open it in your editor"},
	{Name: "parent", Defaults: []string{"backspace", "left", "h"}, Help: "go to parent directory"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous entry"},

	// View keys
	{Name: "changes_only", Defaults: []string{"c"}, Help: "show only changed entries", TipFormat: "press %s to hide clean files"},
	{Name: "toggle_ignored", Defaults: []string{"i"}, Help: "show or hide ignored entries", TipFormat: "press %s to show ignored files"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
