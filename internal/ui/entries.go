package ui

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"tessera/internal/domain"
)

// FileItem is one row of the browser. It implements list.Item.
type FileItem struct {
	IsDir    bool
	Name     string
	OrigPath string
	Path     string // Slash-separated, relative to the root
	Status   domain.FileStatus
}

// FilterValue implements list.Item
func (i FileItem) FilterValue() string {
	return i.Name
}

// statusIndex answers per-path and per-directory status for one scan.
// A directory shows the strongest change found beneath it.
type statusIndex struct {
	dirs        map[string]domain.FileStatus
	ignoredDirs map[string]bool
	records     map[string]domain.FileStatusRecord
}

func newStatusIndex(result *domain.ScanResult) *statusIndex {
	idx := &statusIndex{
		dirs:        make(map[string]domain.FileStatus),
		ignoredDirs: make(map[string]bool),
		records:     make(map[string]domain.FileStatusRecord),
	}
	if result == nil {
		return idx
	}
	for _, rec := range result.Records {
		idx.records[rec.Path] = rec
		if rec.Status == domain.StatusIgnored {
			if rec.IsDir {
				idx.ignoredDirs[rec.Path] = true
			}
			continue
		}
		for dir := path.Dir(rec.Path); dir != "." && dir != "/"; dir = path.Dir(dir) {
			idx.dirs[dir] = domain.Strongest(idx.dirs[dir], rec.Status)
		}
	}
	return idx
}

func (idx *statusIndex) status(rel string, isDir bool) domain.FileStatus {
	if rec, ok := idx.records[rel]; ok {
		if !isDir || rec.Status == domain.StatusIgnored {
			return rec.Status
		}
	}
	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if idx.ignoredDirs[dir] {
			return domain.StatusIgnored
		}
	}
	if isDir {
		if st, ok := idx.dirs[rel]; ok {
			return st
		}
	}
	return domain.StatusClean
}

// listOptions selects which entries buildItems keeps
type listOptions struct {
	changesOnly bool
	showIgnored bool
}

// buildItems lists dir (slash-separated, relative to root) annotated with
// status. Deleted entries that no longer exist on disk are listed too.
// Directories sort before files.
func buildItems(root, dir string, result *domain.ScanResult, opts listOptions) ([]FileItem, error) {
	entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(dir)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	idx := newStatusIndex(result)
	seen := make(map[string]bool, len(entries))
	items := make([]FileItem, 0, len(entries))

	keep := func(item FileItem) {
		if item.Status == domain.StatusIgnored && !opts.showIgnored {
			return
		}
		if opts.changesOnly && !item.Status.IsChange() {
			return
		}
		items = append(items, item)
	}

	for _, e := range entries {
		if e.Name() == ".git" {
			continue
		}
		rel := path.Join(dir, e.Name())
		seen[rel] = true
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err == nil {
				isDir = info.IsDir()
			}
		}
		item := FileItem{IsDir: isDir, Name: e.Name(), Path: rel, Status: idx.status(rel, isDir)}
		if rec, ok := idx.records[rel]; ok {
			item.OrigPath = rec.OrigPath
		}
		keep(item)
	}

	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}
	if result != nil {
		for _, rec := range result.Records {
			if rec.Status != domain.StatusDeleted || !strings.HasPrefix(rec.Path, prefix) {
				continue
			}
			name, _, nested := strings.Cut(rec.Path[len(prefix):], "/")
			child := path.Join(dir, name)
			if seen[child] {
				continue
			}
			seen[child] = true
			keep(FileItem{IsDir: nested, Name: name, Path: child, Status: domain.StatusDeleted})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsDir != items[j].IsDir {
			return items[i].IsDir
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}
