package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"tessera/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// tips is populated by newTip while key maps are built
var (
	tips   []Tip
	tipsMu sync.Mutex
)

// newTip registers a tip and returns its plain text.
// Format uses %s placeholders for keys, e.g. newTip("press %s to filter", "/")
func newTip(format string, keys ...string) string {
	tipsMu.Lock()
	defer tipsMu.Unlock()

	tip := Tip{Format: format, Keys: keys}
	registered := false
	for _, t := range tips {
		if t.Format == tip.Format && strings.Join(t.Keys, ",") == strings.Join(tip.Keys, ",") {
			registered = true
			break
		}
	}
	if !registered {
		tips = append(tips, tip)
	}

	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return fmt.Sprintf(format, args...)
}

// GetTips returns all registered tips
func GetTips() []Tip {
	tipsMu.Lock()
	defer tipsMu.Unlock()
	return append([]Tip(nil), tips...)
}

// RenderTip formats a tip with highlighted keys
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	result := theme.TipTextStyle.Render("tip: ")
	for i, part := range parts {
		result += theme.TipTextStyle.Render(part)
		if i < len(tip.Keys) {
			result += theme.TipKeyStyle.Render(tip.Keys[i])
		}
	}
	return result
}

// KeyWithTip wraps a key.Binding with an optional tip
type KeyWithTip struct {
	Binding key.Binding
	Tip     string
}
