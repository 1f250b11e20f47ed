package ports

import (
	"context"

	"tessera/internal/domain"
)

// IgnoreMatcher classifies paths under one working-tree root
type IgnoreMatcher interface {
	Invalidate(dirs ...string)
	IsIgnored(relPath string, isDir bool) bool
}

// IgnoreProvider hands out one matcher per working-tree root
type IgnoreProvider interface {
	ForRoot(root string) IgnoreMatcher
}

// StatusScanner computes file status directly from the working tree
type StatusScanner interface {
	BranchSummary(ctx context.Context, root string) (*domain.BranchSummary, error)
	HasUncommittedChanges(ctx context.Context, root string) (bool, error)
	RevisionMarker(root string) (string, error)
	ScanAll(ctx context.Context, root string) (*domain.ScanResult, error)
	ScanOne(ctx context.Context, root, path string) (domain.FileStatusRecord, error)
	ScanPaths(ctx context.Context, root string, paths []string) ([]domain.FileStatusRecord, error)
}

// StatusInvalidator is what a file watcher needs from the status engine
type StatusInvalidator interface {
	Invalidate(root string, changedPaths []string)
}

// StatusEngine is the cached status facade used by the presentation layer
type StatusEngine interface {
	StatusInvalidator
	BranchSummary(ctx context.Context, root string) (*domain.BranchSummary, error)
	HasUncommittedChanges(ctx context.Context, root string) (bool, error)
	IsIgnored(root, path string, isDir bool) bool
	ScanAll(ctx context.Context, root string) (*domain.ScanResult, error)
	ScanOne(ctx context.Context, root, path string) (domain.FileStatusRecord, error)
	Snapshot(root string) (*domain.ScanResult, bool)
}
