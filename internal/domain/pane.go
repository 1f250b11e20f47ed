package domain

import (
	"fmt"
	"time"
)

// PaneKind is the closed set of surfaces a pane can host
type PaneKind string

const (
	PaneKindCustomModule PaneKind = "custom-module"
	PaneKindEditor       PaneKind = "editor"
	PaneKindTerminal     PaneKind = "terminal"
)

// ParsePaneKind validates a pane kind string
func ParsePaneKind(s string) (PaneKind, error) {
	switch PaneKind(s) {
	case PaneKindCustomModule, PaneKindEditor, PaneKindTerminal:
		return PaneKind(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidPaneKind)
}

// Geometry is the position and size of a pane inside its layout, in cells
type Geometry struct {
	Height int `json:"height"`
	Width  int `json:"width"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// Pane is a single terminal, editor or module surface.
// SessionID is a back-reference only; the session does not own the pane value.
type Pane struct {
	CreatedAt time.Time `json:"created_at"`
	Geometry  Geometry  `json:"geometry"`
	ID        string    `json:"id"`
	Kind      PaneKind  `json:"kind"`
	Position  int       `json:"position"`
	SessionID string    `json:"session_id"`
	State     Blob      `json:"state"`
	Title     string    `json:"title,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
