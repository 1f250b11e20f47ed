package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tessera/internal/domain"
	"tessera/internal/theme"
)

// HelpScreen displays keyboard shortcuts and the status legend
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent renders every binding group followed by the legend
func buildHelpContent(keys *KeyMap, palette StatusColors) string {
	groups := []string{"Navigation", "View", "Application"}

	var content string
	for i, bindings := range keys.FullHelp() {
		if i > 0 {
			content += "\n"
		}
		content += theme.HelpGroupStyle.Render(groups[i]) + "\n"
		for _, b := range bindings {
			content += renderBinding(b)
		}
	}

	content += "\n" + theme.HelpGroupStyle.Render("Status") + "\n"
	for _, st := range []domain.FileStatus{
		domain.StatusConflicted,
		domain.StatusDeleted,
		domain.StatusRenamed,
		domain.StatusModified,
		domain.StatusAdded,
		domain.StatusUntracked,
		domain.StatusIgnored,
	} {
		symbol := theme.StatusStyle(palette.GetColor(st)).Render(st.Symbol())
		content += theme.HelpKeyStyle.Render(symbol) + theme.HelpDescStyle.Render(string(st)) + "\n"
	}
	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, palette StatusColors) *HelpScreen {
	vp := viewport.New(0, 0)
	vp.KeyMap.Up.SetKeys("up", "k")
	vp.KeyMap.Down.SetKeys("down", "j")
	return &HelpScreen{
		content:  buildHelpContent(keys, palette),
		keys:     keys,
		viewport: vp,
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Header: 3 lines, footer: 2 lines
		viewportHeight := msg.Height - 5
		if viewportHeight < 5 {
			viewportHeight = 5
		}
		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n" + footer
}
