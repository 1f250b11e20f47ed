package domain

import "time"

// FileStatus classifies a working-tree path against the index and ignore rules
type FileStatus string

const (
	StatusAdded      FileStatus = "added"
	StatusClean      FileStatus = "clean"
	StatusConflicted FileStatus = "conflicted"
	StatusDeleted    FileStatus = "deleted"
	StatusIgnored    FileStatus = "ignored"
	StatusModified   FileStatus = "modified"
	StatusRenamed    FileStatus = "renamed"
	StatusUntracked  FileStatus = "untracked"
)

// Status symbols for file annotations
const (
	SymbolAdded      = "A"
	SymbolConflicted = "!"
	SymbolDeleted    = "D"
	SymbolIgnored    = "◌"
	SymbolModified   = "M"
	SymbolRenamed    = "R"
	SymbolUntracked  = "?"
)

// statusRank orders classifications; higher wins when a path matches several.
// Ignored sits outside the ladder: it only applies to untracked paths.
var statusRank = map[FileStatus]int{
	StatusClean:      0,
	StatusIgnored:    1,
	StatusUntracked:  2,
	StatusAdded:      3,
	StatusModified:   4,
	StatusRenamed:    5,
	StatusDeleted:    6,
	StatusConflicted: 7,
}

// Precedes reports whether s takes precedence over other
func (s FileStatus) Precedes(other FileStatus) bool {
	return statusRank[s] > statusRank[other]
}

// Strongest returns the highest-precedence status among candidates, or clean
func Strongest(candidates ...FileStatus) FileStatus {
	best := StatusClean
	for _, c := range candidates {
		if c.Precedes(best) {
			best = c
		}
	}
	return best
}

// IsChange reports whether the status represents an uncommitted change
func (s FileStatus) IsChange() bool {
	switch s {
	case StatusClean, StatusIgnored:
		return false
	}
	return true
}

// Symbol returns the single-glyph annotation for the status
func (s FileStatus) Symbol() string {
	switch s {
	case StatusAdded:
		return SymbolAdded
	case StatusConflicted:
		return SymbolConflicted
	case StatusDeleted:
		return SymbolDeleted
	case StatusIgnored:
		return SymbolIgnored
	case StatusModified:
		return SymbolModified
	case StatusRenamed:
		return SymbolRenamed
	case StatusUntracked:
		return SymbolUntracked
	}
	return " "
}

// FileStatusRecord is the derived status of one path. It is never persisted.
type FileStatusRecord struct {
	Err      error      `json:"-"` // Per-record read failure; the scan continues
	IsDir    bool       `json:"is_dir,omitempty"`
	OrigPath string     `json:"orig_path,omitempty"` // Set for renamed entries
	Path     string     `json:"path"`                // Slash-separated, relative to the root
	Status   FileStatus `json:"status"`
}

// ScanResult is the outcome of a full working-tree scan
type ScanResult struct {
	Marker    string             `json:"marker"`
	Records   []FileStatusRecord `json:"records"`
	Root      string             `json:"root"`
	ScannedAt time.Time          `json:"scanned_at"`
	Truncated bool               `json:"truncated"`
}

// Lookup returns the record for path, if present
func (r *ScanResult) Lookup(path string) (FileStatusRecord, bool) {
	for _, rec := range r.Records {
		if rec.Path == path {
			return rec, true
		}
	}
	return FileStatusRecord{}, false
}

// Counts tallies records by status
func (r *ScanResult) Counts() map[FileStatus]int {
	counts := make(map[FileStatus]int)
	for _, rec := range r.Records {
		counts[rec.Status]++
	}
	return counts
}

// BranchSummary describes the checked-out branch and its upstream
type BranchSummary struct {
	Ahead     int       `json:"ahead"`
	Behind    int       `json:"behind"`
	Branch    string    `json:"branch"`
	Detached  bool      `json:"detached"`
	FetchedAt time.Time `json:"fetched_at"`
	Head      string    `json:"head"`
	Upstream  string    `json:"upstream,omitempty"`
}
