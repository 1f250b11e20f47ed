package git

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"golang.org/x/sync/errgroup"

	"tessera/internal/domain"
	"tessera/internal/logging"
	"tessera/internal/ports"
)

var (
	errScanCancelled = errors.New("scan cancelled")
	errFoundChange   = errors.New("found change")
)

// Scanner computes file status from the index and a walk of the working tree
type Scanner struct {
	ignores ports.IgnoreProvider
}

// Verify interface compliance at compile time
var _ ports.StatusScanner = (*Scanner)(nil)

// NewScanner creates a new Scanner
func NewScanner(ignores ports.IgnoreProvider) *Scanner {
	return &Scanner{ignores: ignores}
}

// ScanAll classifies every path of the working tree that is not clean.
// Cancellation stops the walk between directory visits and returns what was
// found so far with Truncated set.
func (s *Scanner) ScanAll(ctx context.Context, root string) (*domain.ScanResult, error) {
	root, err := absRoot(root)
	if err != nil {
		return nil, err
	}
	marker, err := s.RevisionMarker(root)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := &domain.ScanResult{Marker: marker, Root: root, ScannedAt: start.UTC()}

	var changes map[string]indexEntry
	var tracked trackedSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		changes, err = readChanges(gctx, root)
		return err
	})
	g.Go(func() error {
		var err error
		tracked, err = readTracked(gctx, root)
		return err
	})
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			result.Truncated = true
			return result, nil
		}
		return nil, err
	}

	records := make(map[string]domain.FileStatusRecord, len(changes))
	for p, e := range changes {
		records[p] = domain.FileStatusRecord{OrigPath: e.origPath, Path: p, Status: e.status}
	}

	matcher := s.ignores.ForRoot(root)
	var mu sync.Mutex
	add := func(rec domain.FileStatusRecord) {
		mu.Lock()
		records[rec.Path] = rec
		mu.Unlock()
	}

	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		if p == root {
			return err
		}
		rel := relSlash(root, p)

		if err != nil {
			add(domain.FileStatusRecord{
				Err:    fmt.Errorf("failed to read %s: %v: %w", rel, err, domain.ErrIO),
				IsDir:  d != nil && d.IsDir(),
				Path:   rel,
				Status: domain.StatusClean,
			})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		isDir := d.IsDir()
		if d.Name() == ".git" {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}
		if isDir {
			select {
			case <-ctx.Done():
				return errScanCancelled
			default:
			}
		}

		if tracked.has(rel, isDir) {
			return nil
		}
		if matcher.IsIgnored(rel, isDir) {
			add(domain.FileStatusRecord{IsDir: isDir, Path: rel, Status: domain.StatusIgnored})
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !isDir {
			add(domain.FileStatusRecord{Path: rel, Status: domain.StatusUntracked})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errScanCancelled) || ctx.Err() != nil {
			result.Truncated = true
		} else {
			return nil, fmt.Errorf("failed to walk %s: %v: %w", root, err, domain.ErrIO)
		}
	}

	result.Records = sortedRecords(records)
	logging.Logger.Debug("Scan finished", "root", root, "records", len(result.Records),
		"truncated", result.Truncated, "duration", time.Since(start))
	return result, nil
}

// ScanOne classifies a single path, absolute or relative to root
func (s *Scanner) ScanOne(ctx context.Context, root, path string) (domain.FileStatusRecord, error) {
	records, err := s.ScanPaths(ctx, root, []string{path})
	if err != nil {
		return domain.FileStatusRecord{}, err
	}
	return records[0], nil
}

// ScanPaths classifies each path and returns one record per path, in order.
// Paths with nothing to report come back clean.
func (s *Scanner) ScanPaths(ctx context.Context, root string, paths []string) ([]domain.FileStatusRecord, error) {
	root, err := absRoot(root)
	if err != nil {
		return nil, err
	}
	if _, err := resolveGitDir(root); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}

	rels := make([]string, 0, len(paths))
	for _, p := range paths {
		if filepath.IsAbs(p) {
			p = relSlash(root, p)
		}
		rels = append(rels, normalizeRel(p))
	}

	var changes map[string]indexEntry
	var tracked trackedSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		changes, err = readChanges(gctx, root, rels...)
		return err
	})
	g.Go(func() error {
		var err error
		tracked, err = readTracked(gctx, root, rels...)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matcher := s.ignores.ForRoot(root)
	records := make([]domain.FileStatusRecord, 0, len(rels))
	for _, rel := range rels {
		rec := domain.FileStatusRecord{Path: rel, Status: domain.StatusClean}

		info, statErr := os.Lstat(filepath.Join(root, filepath.FromSlash(rel)))
		switch {
		case statErr == nil:
			rec.IsDir = info.IsDir()
		case !os.IsNotExist(statErr):
			rec.Err = fmt.Errorf("failed to stat %s: %v: %w", rel, statErr, domain.ErrIO)
		}

		if e, ok := changes[rel]; ok {
			rec.OrigPath = e.origPath
			rec.Status = e.status
		} else if statErr == nil && !tracked.has(rel, rec.IsDir) {
			if matcher.IsIgnored(rel, rec.IsDir) {
				rec.Status = domain.StatusIgnored
			} else if !rec.IsDir {
				rec.Status = domain.StatusUntracked
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// HasUncommittedChanges stops at the first tracked or untracked change
// instead of classifying the whole tree
func (s *Scanner) HasUncommittedChanges(ctx context.Context, root string) (bool, error) {
	root, err := absRoot(root)
	if err != nil {
		return false, err
	}
	if _, err := resolveGitDir(root); err != nil {
		return false, err
	}

	_, err = runGit(ctx, root, "diff", "HEAD", "--quiet", "--")
	switch {
	case err == nil:
	case isExitStatus(err, 1):
		return true, nil
	case errors.Is(err, domain.ErrNotAVersionControlRoot):
		return false, err
	default:
		// No commits yet: anything in the index is a change
		tracked, lsErr := readTracked(ctx, root)
		if lsErr != nil {
			return false, lsErr
		}
		if len(tracked.files) > 0 {
			return true, nil
		}
	}

	tracked, err := readTracked(ctx, root)
	if err != nil {
		return false, err
	}
	matcher := s.ignores.ForRoot(root)

	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		if p == root || err != nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		rel := relSlash(root, p)
		isDir := d.IsDir()
		if d.Name() == ".git" {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}
		if tracked.has(rel, isDir) {
			return nil
		}
		if matcher.IsIgnored(rel, isDir) {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !isDir {
			return errFoundChange
		}
		return nil
	})
	if errors.Is(err, errFoundChange) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// RevisionMarker derives a cheap fingerprint from the index and HEAD files.
// It changes on commit, checkout, stage and unstage, not on worktree edits.
func (s *Scanner) RevisionMarker(root string) (string, error) {
	gitDir, err := resolveGitDir(root)
	if err != nil {
		return "", err
	}

	var parts []string
	for _, name := range []string{"index", "HEAD"} {
		info, err := os.Stat(filepath.Join(gitDir, name))
		switch {
		case err == nil:
			parts = append(parts, fmt.Sprintf("%d.%d", info.ModTime().UnixNano(), info.Size()))
		case os.IsNotExist(err):
			parts = append(parts, "0.0")
		default:
			return "", fmt.Errorf("failed to stat %s: %v: %w", name, err, domain.ErrIO)
		}
	}
	return strings.Join(parts, ":"), nil
}

func absRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %v: %w", root, err, domain.ErrIO)
	}
	return abs, nil
}

func relSlash(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

func sortedRecords(records map[string]domain.FileStatusRecord) []domain.FileStatusRecord {
	out := make([]domain.FileStatusRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b domain.FileStatusRecord) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}
