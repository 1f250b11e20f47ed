package config

import "tessera/internal/domain"

// DefaultStatusColors is the palette order used by StatusPalette
const DefaultStatusColors = "46,33,214,141,196,242,1"

// paletteOrder fixes which color index belongs to which status
var paletteOrder = []domain.FileStatus{
	domain.StatusAdded,
	domain.StatusModified,
	domain.StatusRenamed,
	domain.StatusUntracked,
	domain.StatusDeleted,
	domain.StatusIgnored,
	domain.StatusConflicted,
}

// StatusPalette maps file statuses to ANSI colors
type StatusPalette struct {
	Colors []string
}

// NewStatusPalette builds a palette from a comma-separated list of colors.
// Missing entries fall back to the default palette.
func NewStatusPalette(colors string) *StatusPalette {
	defaults := parseList(DefaultStatusColors)
	custom := parseList(colors)

	merged := make([]string, len(defaults))
	copy(merged, defaults)
	for i, c := range custom {
		if i < len(merged) {
			merged[i] = c
		}
	}
	return &StatusPalette{Colors: merged}
}

// GetColor returns the color for a status, or an empty string for clean paths
func (p *StatusPalette) GetColor(status domain.FileStatus) string {
	for i, s := range paletteOrder {
		if s == status {
			return p.Colors[i]
		}
	}
	return ""
}
