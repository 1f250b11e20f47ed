package watcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/fsnotify/fsnotify"

	"tessera/internal/logging"
	"tessera/internal/ports"
)

// DefaultDebounce is how long events are collected before a batch is sent
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher
type Options struct {
	Debounce time.Duration
	Exclude  []string // Glob patterns relative to the root; matching directories are not watched
}

// Watcher forwards batched file-system changes under one root to a
// status invalidator. Inside .git only index and HEAD are reported.
type Watcher struct {
	closeOnce sync.Once
	done      chan struct{}
	fsw       *fsnotify.Watcher
	mu        sync.Mutex
	opts      Options
	overflow  bool
	pending   map[string]struct{}
	root      string
	sink      ports.StatusInvalidator
	wg        sync.WaitGroup
}

// New starts watching root recursively
func New(root string, sink ports.StatusInvalidator, opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		done:    make(chan struct{}),
		fsw:     fsw,
		opts:    opts,
		pending: make(map[string]struct{}),
		root:    abs,
		sink:    sink,
	}

	if err := w.addTree(abs); err != nil {
		fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.loop()

	logging.Logger.Info("Watching working tree", "root", abs, "debounce", opts.Debounce)
	return w, nil
}

// Close stops the watcher. Pending changes are dropped.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

// addTree registers dir and every directory below it that is not excluded
func (w *Watcher) addTree(dir string) error {
	conf := fastwalk.Config{Follow: false}
	return fastwalk.Walk(&conf, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Logger.Debug("Skipping unreadable directory", "path", p, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		rel := w.rel(p)
		if rel == ".git" {
			// Only the top of .git, for index and HEAD
			if err := w.fsw.Add(p); err != nil {
				logging.Logger.Debug("Failed to watch .git", "error", err)
			}
			return filepath.SkipDir
		}
		if w.excluded(rel) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}

func (w *Watcher) rel(p string) string {
	rel, err := filepath.Rel(w.root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

func (w *Watcher) excluded(rel string) bool {
	return slices.ContainsFunc(w.opts.Exclude, func(pattern string) bool {
		ok, _ := doublestar.Match(pattern, rel)
		return ok
	})
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	arm := func() {
		if timer == nil {
			timer = time.NewTimer(w.opts.Debounce)
			fire = timer.C
		}
	}

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.record(ev) {
				arm()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn("Watcher error", "root", w.root, "error", err)
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.mu.Lock()
				w.overflow = true
				w.mu.Unlock()
				arm()
			}

		case <-fire:
			timer, fire = nil, nil
			w.flush()
		}
	}
}

// record adds an event to the pending batch and reports whether it counts
func (w *Watcher) record(ev fsnotify.Event) bool {
	rel := w.rel(ev.Name)
	dir, name := filepath.Split(filepath.FromSlash(rel))
	if filepath.ToSlash(filepath.Clean(dir)) == ".git" {
		if name != "index" && name != "HEAD" {
			return false
		}
	} else if w.excluded(rel) {
		return false
	}

	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				logging.Logger.Debug("Failed to watch new directory", "path", ev.Name, "error", err)
			}
		}
	}

	w.mu.Lock()
	w.pending[ev.Name] = struct{}{}
	w.mu.Unlock()
	return true
}

func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	overflow := w.overflow
	w.pending = make(map[string]struct{})
	w.overflow = false
	w.mu.Unlock()

	if overflow {
		paths = nil
	} else if len(paths) == 0 {
		return
	}
	slices.Sort(paths)

	logging.Logger.Debug("Forwarding changes", "root", w.root, "paths", len(paths), "overflow", overflow)
	w.sink.Invalidate(w.root, paths)
}
