package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tessera/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	View        ViewKeys
}

// NewKeyMap creates a KeyMap; customKeys may be nil
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Navigation:  newNavigationKeys(defaults, customKeys),
		View:        newViewKeys(defaults, customKeys),
	}
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Open.Binding,
		k.Navigation.Parent.Binding,
		k.Navigation.Filter.Binding,
		k.View.ChangesOnly.Binding,
		k.View.ToggleIgnored.Binding,
		k.Application.Refresh.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// FullHelp groups every binding for the help screen
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Navigation.Up.Binding,
			k.Navigation.Down.Binding,
			k.Navigation.Open.Binding,
			k.Navigation.Parent.Binding,
			k.Navigation.Filter.Binding,
			k.Navigation.ClearFilter.Binding,
		},
		{
			k.View.ChangesOnly.Binding,
			k.View.ToggleIgnored.Binding,
		},
		{
			k.Application.Refresh.Binding,
			k.Application.Help.Binding,
			k.Application.Quit.Binding,
			k.Application.ForceQuit.Binding,
		},
	}
}
