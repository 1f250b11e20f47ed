package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutNode_LeafPaneIDs(t *testing.T) {
	tree := Split(SplitVertical,
		Leaf("p1"),
		Split(SplitHorizontal, Leaf("p2"), Leaf("p3")),
	)

	assert.Equal(t, []string{"p1", "p2", "p3"}, tree.LeafPaneIDs())
	require.NoError(t, tree.Validate())
}

func TestLayoutNode_Validate(t *testing.T) {
	tests := []struct {
		name string
		tree LayoutNode
	}{
		{"empty leaf", LayoutNode{}},
		{"leaf with split", LayoutNode{PaneID: "p1", Split: SplitVertical}},
		{"unknown split", LayoutNode{Split: "diagonal", Children: []LayoutNode{Leaf("a")}, Ratios: []float64{1}}},
		{"ratio count mismatch", LayoutNode{Split: SplitVertical, Children: []LayoutNode{Leaf("a"), Leaf("b")}, Ratios: []float64{1}}},
		{"ratios do not sum", LayoutNode{Split: SplitVertical, Children: []LayoutNode{Leaf("a"), Leaf("b")}, Ratios: []float64{0.5, 0.2}}},
		{"split with pane", LayoutNode{Split: SplitVertical, PaneID: "x", Children: []LayoutNode{Leaf("a")}, Ratios: []float64{1}}},
		{"bad nested leaf", Split(SplitHorizontal, Leaf("a"), LayoutNode{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.tree.Validate(), ErrInvalidLayout)
		})
	}
}

func TestLayout_CheckOwnership(t *testing.T) {
	owned := map[string]bool{"p1": true, "p2": true}

	ok := Layout{SessionID: "s1", Tree: Split(SplitVertical, Leaf("p1"), Leaf("p2"))}
	assert.NoError(t, ok.CheckOwnership(owned))

	foreign := Layout{SessionID: "s1", Tree: Split(SplitVertical, Leaf("p1"), Leaf("other"))}
	assert.ErrorIs(t, foreign.CheckOwnership(owned), ErrInvalidLayout)

	duplicate := Layout{SessionID: "s1", Tree: Split(SplitVertical, Leaf("p1"), Leaf("p1"))}
	assert.ErrorIs(t, duplicate.CheckOwnership(owned), ErrInvalidLayout)
}

func TestStrongest_Precedence(t *testing.T) {
	assert.Equal(t, StatusConflicted, Strongest(StatusModified, StatusConflicted))
	assert.Equal(t, StatusDeleted, Strongest(StatusRenamed, StatusDeleted, StatusAdded))
	assert.Equal(t, StatusRenamed, Strongest(StatusModified, StatusRenamed))
	assert.Equal(t, StatusModified, Strongest(StatusAdded, StatusModified))
	assert.Equal(t, StatusAdded, Strongest(StatusUntracked, StatusAdded))
	assert.Equal(t, StatusUntracked, Strongest(StatusClean, StatusUntracked))
	assert.Equal(t, StatusClean, Strongest())
}

func TestFileStatus_IsChange(t *testing.T) {
	assert.False(t, StatusClean.IsChange())
	assert.False(t, StatusIgnored.IsChange())
	assert.True(t, StatusUntracked.IsChange())
	assert.True(t, StatusConflicted.IsChange())
}

func TestLayoutNode_WithoutPane(t *testing.T) {
	tree := LayoutNode{
		Split: SplitVertical,
		Children: []LayoutNode{
			Leaf("p1"),
			Split(SplitHorizontal, Leaf("p2"), Leaf("p3")),
			Leaf("p4"),
		},
		Ratios: []float64{0.5, 0.25, 0.25},
	}

	pruned, ok := tree.WithoutPane("p2")
	require.True(t, ok)
	assert.Equal(t, []string{"p1", "p3", "p4"}, pruned.LeafPaneIDs())
	require.NoError(t, pruned.Validate())
	assert.Equal(t, Leaf("p3"), pruned.Children[1])

	pruned, ok = pruned.WithoutPane("p1")
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, pruned.Ratios, 0.0001)

	single, ok := Split(SplitVertical, Leaf("a"), Leaf("b")).WithoutPane("a")
	require.True(t, ok)
	assert.Equal(t, Leaf("b"), single)

	_, ok = Leaf("a").WithoutPane("a")
	assert.False(t, ok)

	same, ok := tree.WithoutPane("unrelated")
	require.True(t, ok)
	assert.Equal(t, tree.LeafPaneIDs(), same.LeafPaneIDs())
}
