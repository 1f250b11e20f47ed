package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"tessera/internal/theme"
)

// FileDelegate renders one FileItem per line: cursor, status symbol, name
type FileDelegate struct {
	palette StatusColors
}

// Height implements list.ItemDelegate
func (d FileDelegate) Height() int {
	return 1
}

// Spacing implements list.ItemDelegate
func (d FileDelegate) Spacing() int {
	return 0
}

// Update implements list.ItemDelegate
func (d FileDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d FileDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(FileItem)
	if !ok {
		return
	}

	cursor := " "
	if index == m.Index() {
		cursor = theme.CursorStyle.Render(">")
	}

	symbol := theme.StatusStyle(d.palette.GetColor(item.Status)).Render(item.Status.Symbol())

	name := theme.NormalStyle.Render(item.Name)
	if item.IsDir {
		name = theme.DirectoryStyle.Render(item.Name + "/")
	}
	if item.OrigPath != "" {
		name += theme.OrigPathStyle.Render(" ← " + item.OrigPath)
	}

	fmt.Fprintf(w, "%s %s %s", cursor, symbol, name)
}
