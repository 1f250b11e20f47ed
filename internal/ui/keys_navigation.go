package ui

import (
	"tessera/internal/config"
)

// NavigationKeys defines key bindings for moving through the tree
type NavigationKeys struct {
	ClearFilter KeyWithTip
	Down        KeyWithTip
	Filter      KeyWithTip
	Open        KeyWithTip
	Parent      KeyWithTip
	Up          KeyWithTip
}

func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		ClearFilter: buildBinding("clear_filter", defaults, customKeys),
		Down:        buildBinding("down", defaults, customKeys),
		Filter:      buildBinding("filter", defaults, customKeys),
		Open:        buildBinding("open", defaults, customKeys),
		Parent:      buildBinding("parent", defaults, customKeys),
		Up:          buildBinding("up", defaults, customKeys),
	}
}

// ViewKeys toggle what the browser shows
type ViewKeys struct {
	ChangesOnly   KeyWithTip
	ToggleIgnored KeyWithTip
}

func newViewKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ViewKeys {
	return ViewKeys{
		ChangesOnly:   buildBinding("changes_only", defaults, customKeys),
		ToggleIgnored: buildBinding("toggle_ignored", defaults, customKeys),
	}
}
