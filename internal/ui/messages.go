package ui

import (
	"tessera/internal/domain"
)

// scanDoneMsg carries the outcome of a full status query
type scanDoneMsg struct {
	err    error
	result *domain.ScanResult
}

// branchDoneMsg carries the outcome of a branch query
type branchDoneMsg struct {
	err     error
	summary *domain.BranchSummary
}

// treeChangedMsg is sent when the watcher reported changes. A nil paths
// slice means anything may have changed.
type treeChangedMsg struct {
	paths []string
}

// clearErrorMsg hides the error line
type clearErrorMsg struct{}

// editorClosedMsg is sent when the editor returns the terminal
type editorClosedMsg struct {
	err  error
	path string // Absolute path of the edited file
}
