package services

import (
	"context"
	"errors"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"tessera/internal/domain"
	"tessera/internal/logging"
	"tessera/internal/ports"
)

// ignoreRuleFile is the per-directory rule file whose edits reset matchers
const ignoreRuleFile = ".gitignore"

// DefaultPathScopedLimit is the largest changed-set merged into a cached
// snapshot; bigger sets trigger a full rescan
const DefaultPathScopedLimit = 64

// rootCache is the cached state of one working-tree root
type rootCache struct {
	dirty  bool
	gen    uint64 // Bumped by every invalidation
	mu     sync.RWMutex
	result *domain.ScanResult
}

// StatusService caches scans per root and recomputes only on demand.
// Cached results are shared between callers and must not be modified.
type StatusService struct {
	group           singleflight.Group
	ignores         ports.IgnoreProvider
	mu              sync.Mutex
	pathScopedLimit int
	roots           map[string]*rootCache
	scanner         ports.StatusScanner
}

var _ ports.StatusEngine = (*StatusService)(nil)

// NewStatusService creates a new StatusService
func NewStatusService(scanner ports.StatusScanner, ignores ports.IgnoreProvider, pathScopedLimit int) *StatusService {
	if pathScopedLimit <= 0 {
		pathScopedLimit = DefaultPathScopedLimit
	}
	return &StatusService{
		ignores:         ignores,
		pathScopedLimit: pathScopedLimit,
		roots:           make(map[string]*rootCache),
		scanner:         scanner,
	}
}

func rootKey(root string) string {
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return filepath.Clean(root)
}

func (s *StatusService) cache(key string) *rootCache {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.roots[key]
	if !ok {
		c = &rootCache{}
		s.roots[key] = c
	}
	return c
}

// fresh returns the cached result when it is clean and the revision marker
// still matches
func (s *StatusService) fresh(key string, c *rootCache) (*domain.ScanResult, error) {
	marker, err := s.scanner.RevisionMarker(key)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.result == nil || c.dirty || c.result.Marker != marker {
		return nil, nil
	}
	return c.result, nil
}

// ScanAll returns the cached scan when still valid. Otherwise concurrent
// callers for the same root share one scan.
func (s *StatusService) ScanAll(ctx context.Context, root string) (*domain.ScanResult, error) {
	key := rootKey(root)
	c := s.cache(key)

	cached, err := s.fresh(key, c)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		logging.Logger.Debug("Status cache hit", "root", key)
		return cached, nil
	}

	// The shared walk runs detached so one caller giving up does not
	// truncate the result for the others
	scanCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (interface{}, error) {
		c.mu.RLock()
		gen := c.gen
		c.mu.RUnlock()

		result, err := s.scanner.ScanAll(scanCtx, key)
		if err != nil {
			return nil, err
		}
		if result.Truncated {
			return result, nil
		}

		c.mu.Lock()
		c.result = result
		// An invalidation that raced the walk may not be reflected in it
		c.dirty = c.gen != gen
		c.mu.Unlock()
		return result, nil
	})

	select {
	case <-ctx.Done():
		logging.Logger.Debug("Status scan abandoned by caller", "root", key, "error", ctx.Err())
		return &domain.ScanResult{Root: key, ScannedAt: time.Now().UTC(), Truncated: true}, nil
	case res := <-ch:
		if res.Err != nil {
			logging.Logger.Debug("Status scan failed", "root", key, "error", res.Err)
			return nil, res.Err
		}
		logging.Logger.Debug("Status scan complete", "root", key, "shared", res.Shared)
		return res.Val.(*domain.ScanResult), nil
	}
}

// Snapshot returns the last cached scan without touching the disk
func (s *StatusService) Snapshot(root string) (*domain.ScanResult, bool) {
	c := s.cache(rootKey(root))
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result, c.result != nil
}

// ScanOne answers from a valid cached scan, or asks the scanner
func (s *StatusService) ScanOne(ctx context.Context, root, p string) (domain.FileStatusRecord, error) {
	key := rootKey(root)
	rel := relativeTo(key, p)

	cached, err := s.fresh(key, s.cache(key))
	if err != nil {
		return domain.FileStatusRecord{}, err
	}
	if cached != nil {
		return lookupRecord(cached, rel), nil
	}
	return s.scanner.ScanOne(ctx, key, rel)
}

// lookupRecord resolves a path against a full scan. Paths absent from the
// scan are clean unless an ancestor directory was reported ignored.
func lookupRecord(result *domain.ScanResult, rel string) domain.FileStatusRecord {
	if rec, ok := result.Lookup(rel); ok {
		return rec
	}
	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if rec, ok := result.Lookup(dir); ok && rec.IsDir && rec.Status == domain.StatusIgnored {
			return domain.FileStatusRecord{Path: rel, Status: domain.StatusIgnored}
		}
	}
	return domain.FileStatusRecord{Path: rel, Status: domain.StatusClean}
}

// IsIgnored consults the root's ignore rules only
func (s *StatusService) IsIgnored(root, p string, isDir bool) bool {
	key := rootKey(root)
	return s.ignores.ForRoot(key).IsIgnored(relativeTo(key, p), isDir)
}

// BranchSummary is never cached; it is cheap and changes with every fetch
func (s *StatusService) BranchSummary(ctx context.Context, root string) (*domain.BranchSummary, error) {
	return s.scanner.BranchSummary(ctx, rootKey(root))
}

// HasUncommittedChanges always asks the scanner. Edits to tracked files do
// not move the revision marker, so a cached scan cannot answer this.
func (s *StatusService) HasUncommittedChanges(ctx context.Context, root string) (bool, error) {
	return s.scanner.HasUncommittedChanges(ctx, rootKey(root))
}

// Invalidate records that paths under root changed on disk. Small change
// sets are rescanned and merged into the cached snapshot right away; large
// or unspecified ones, and any rule-file or metadata change, mark the root
// for a full rescan on the next query and drop every cached ignore rule.
func (s *StatusService) Invalidate(root string, changedPaths []string) {
	key := rootKey(root)
	c := s.cache(key)

	rels := make([]string, 0, len(changedPaths))
	full := len(changedPaths) == 0 || len(changedPaths) > s.pathScopedLimit
	for _, p := range changedPaths {
		rel := relativeTo(key, p)
		if path.Base(rel) == ignoreRuleFile || rel == ".git" || strings.HasPrefix(rel, ".git/") {
			full = true
		}
		rels = append(rels, rel)
	}
	if full {
		s.ignores.ForRoot(key).Invalidate()
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	if full || c.result == nil || c.dirty {
		c.dirty = true
		c.mu.Unlock()
		logging.Logger.Debug("Status invalidated", "root", key, "paths", len(changedPaths))
		return
	}
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	records, err := s.scanner.ScanPaths(ctx, key, rels)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil || c.gen != gen || c.result == nil || hasDirectory(records) {
		if err != nil {
			logging.Logger.Warn("Path-scoped rescan failed", "root", key, "error", err)
		}
		c.dirty = true
		return
	}
	c.result = mergeRecords(c.result, rels, records)
	logging.Logger.Debug("Status merged", "root", key, "paths", len(rels))
}

func hasDirectory(records []domain.FileStatusRecord) bool {
	for _, rec := range records {
		if rec.IsDir {
			return true
		}
	}
	return false
}

// mergeRecords builds a new snapshot with the records of paths replaced.
// Clean records are dropped, as are paths inside directories the snapshot
// already reports as ignored.
func mergeRecords(base *domain.ScanResult, paths []string, records []domain.FileStatusRecord) *domain.ScanResult {
	replaced := make(map[string]bool, len(paths))
	for _, p := range paths {
		replaced[p] = true
	}

	var ignoredDirs []string
	merged := make([]domain.FileStatusRecord, 0, len(base.Records)+len(records))
	for _, rec := range base.Records {
		if rec.IsDir && rec.Status == domain.StatusIgnored {
			ignoredDirs = append(ignoredDirs, rec.Path+"/")
		}
		if !replaced[rec.Path] {
			merged = append(merged, rec)
		}
	}

	for _, rec := range records {
		if rec.Status == domain.StatusClean && rec.Err == nil {
			continue
		}
		if slices.ContainsFunc(ignoredDirs, func(dir string) bool { return strings.HasPrefix(rec.Path, dir) }) {
			continue
		}
		merged = append(merged, rec)
	}

	slices.SortFunc(merged, func(a, b domain.FileStatusRecord) int {
		return strings.Compare(a.Path, b.Path)
	})

	return &domain.ScanResult{
		Marker:    base.Marker,
		Records:   merged,
		Root:      base.Root,
		ScannedAt: time.Now().UTC(),
		Truncated: base.Truncated,
	}
}

// relativeTo converts p to a slash-separated path relative to root
func relativeTo(root, p string) string {
	if filepath.IsAbs(p) {
		if rel, err := filepath.Rel(root, p); err == nil {
			p = rel
		}
	}
	p = filepath.ToSlash(filepath.Clean(p))
	if p == "." {
		return ""
	}
	return p
}

// StatusUnavailable reports whether err means the root is not under
// version control, which callers render as a missing status rather than
// a failure
func StatusUnavailable(err error) bool {
	return errors.Is(err, domain.ErrNotAVersionControlRoot)
}
