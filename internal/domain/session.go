package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Session is a top-level unit of work holding an ordered set of panes
type Session struct {
	CreatedAt  time.Time `json:"created_at"`
	ID         string    `json:"id"`
	LastActive time.Time `json:"last_active"`
	LayoutID   *string   `json:"layout_id,omitempty"`
	Metadata   Blob      `json:"metadata"`
	Name       string    `json:"name"`
	PaneIDs    []string  `json:"pane_ids"` // Tab order, derived from pane creation order
}

// HasPane reports whether the session owns the pane
func (s Session) HasPane(paneID string) bool {
	for _, id := range s.PaneIDs {
		if id == paneID {
			return true
		}
	}
	return false
}

// NormalizeSessionName trims the display name and collapses inner whitespace
// runs to a single space. Control characters are dropped.
func NormalizeSessionName(name string) (string, error) {
	var result strings.Builder
	lastWasSpace := false

	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsSpace(r):
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		case unicode.IsControl(r):
			// dropped
		default:
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	normalized := strings.TrimSpace(result.String())
	if normalized == "" {
		return "", fmt.Errorf("session name %q: %w", name, ErrInvalidName)
	}
	return normalized, nil
}
