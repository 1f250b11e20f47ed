package domain

import (
	"fmt"
	"math"
	"time"
)

// SplitOrientation describes how an interior layout node divides its area
type SplitOrientation string

const (
	SplitHorizontal SplitOrientation = "horizontal"
	SplitNone       SplitOrientation = ""
	SplitVertical   SplitOrientation = "vertical"
)

// LayoutNode is one node of a layout tree. Leaves carry a PaneID; interior
// nodes carry a split orientation, children and their ratios.
type LayoutNode struct {
	Children []LayoutNode     `json:"children,omitempty"`
	PaneID   string           `json:"pane_id,omitempty"`
	Ratios   []float64        `json:"ratios,omitempty"`
	Split    SplitOrientation `json:"split,omitempty"`
}

// IsLeaf reports whether the node references a pane
func (n LayoutNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Leaf builds a leaf node for a pane
func Leaf(paneID string) LayoutNode {
	return LayoutNode{PaneID: paneID}
}

// Split builds an interior node with evenly distributed ratios
func Split(orientation SplitOrientation, children ...LayoutNode) LayoutNode {
	ratios := make([]float64, len(children))
	for i := range ratios {
		ratios[i] = 1 / float64(len(children))
	}
	return LayoutNode{Children: children, Ratios: ratios, Split: orientation}
}

// LeafPaneIDs returns the pane identifiers referenced by the tree, left to right
func (n LayoutNode) LeafPaneIDs() []string {
	var ids []string
	var walk func(node LayoutNode)
	walk = func(node LayoutNode) {
		if node.IsLeaf() {
			ids = append(ids, node.PaneID)
			return
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(n)
	return ids
}

// Validate checks the structural shape of the tree. It does not check that
// referenced panes exist; that needs the store.
func (n LayoutNode) Validate() error {
	if n.IsLeaf() {
		if n.PaneID == "" {
			return fmt.Errorf("leaf without pane: %w", ErrInvalidLayout)
		}
		if n.Split != SplitNone {
			return fmt.Errorf("leaf %s has split %q: %w", n.PaneID, n.Split, ErrInvalidLayout)
		}
		return nil
	}

	if n.PaneID != "" {
		return fmt.Errorf("split node references pane %s: %w", n.PaneID, ErrInvalidLayout)
	}
	if n.Split != SplitHorizontal && n.Split != SplitVertical {
		return fmt.Errorf("unknown split %q: %w", n.Split, ErrInvalidLayout)
	}
	if len(n.Ratios) != len(n.Children) {
		return fmt.Errorf("%d ratios for %d children: %w", len(n.Ratios), len(n.Children), ErrInvalidLayout)
	}

	sum := 0.0
	for _, r := range n.Ratios {
		if r <= 0 || r > 1 {
			return fmt.Errorf("ratio %v out of range: %w", r, ErrInvalidLayout)
		}
		sum += r
	}
	if math.Abs(sum-1) > 0.001 {
		return fmt.Errorf("ratios sum to %v: %w", sum, ErrInvalidLayout)
	}

	for _, child := range n.Children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Layout is a named arrangement of a session's panes
type Layout struct {
	CreatedAt time.Time  `json:"created_at"`
	ID        string     `json:"id"`
	IsActive  bool       `json:"is_active"`
	Name      string     `json:"name"`
	SessionID string     `json:"session_id"`
	Tree      LayoutNode `json:"tree"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CheckOwnership verifies every leaf resolves to one of owned, and that no
// pane appears twice.
func (l Layout) CheckOwnership(owned map[string]bool) error {
	if err := l.Tree.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, id := range l.Tree.LeafPaneIDs() {
		if !owned[id] {
			return fmt.Errorf("pane %s is not owned by session %s: %w", id, l.SessionID, ErrInvalidLayout)
		}
		if seen[id] {
			return fmt.Errorf("pane %s appears twice: %w", id, ErrInvalidLayout)
		}
		seen[id] = true
	}
	return nil
}

// WithoutPane returns the tree with the pane's leaf removed. Split nodes left
// with one child collapse into that child and ratios are renormalized. The
// boolean is false when nothing remains.
func (n LayoutNode) WithoutPane(paneID string) (LayoutNode, bool) {
	if n.IsLeaf() {
		if n.PaneID == paneID {
			return LayoutNode{}, false
		}
		return n, true
	}

	var children []LayoutNode
	var ratios []float64
	for i, child := range n.Children {
		pruned, ok := child.WithoutPane(paneID)
		if !ok {
			continue
		}
		children = append(children, pruned)
		if i < len(n.Ratios) {
			ratios = append(ratios, n.Ratios[i])
		}
	}

	switch len(children) {
	case 0:
		return LayoutNode{}, false
	case 1:
		return children[0], true
	}

	sum := 0.0
	for _, r := range ratios {
		sum += r
	}
	if len(ratios) != len(children) || sum <= 0 {
		return Split(n.Split, children...), true
	}
	for i := range ratios {
		ratios[i] /= sum
	}
	return LayoutNode{Children: children, Ratios: ratios, Split: n.Split}, true
}
