package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"tessera/internal/adapters/watcher"
	"tessera/internal/domain"
	"tessera/internal/logging"
	"tessera/internal/services"
)

// WatchCmd prints status changes as they happen
type WatchCmd struct {
	Format  string `help:"Output format: text or json (one object per line)" enum:"text,json" default:"text"`
	Ignored bool   `help:"Report paths that become ignored too"`
}

// watchEvent is one line of `watch --format json`
type watchEvent struct {
	OrigPath string            `json:"orig_path,omitempty"`
	Path     string            `json:"path"`
	Previous domain.FileStatus `json:"previous"`
	Status   domain.FileStatus `json:"status"`
	Time     time.Time         `json:"time"`
}

// Run executes the watch command
func (w *WatchCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := cli.Container.StatusService
	previous, err := w.snapshot(ctx, engine, cli.Root)
	if services.StatusUnavailable(err) {
		fmt.Println(statusUnavailable)
		return nil
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	feed := services.NewChangeFeed(engine)
	fw, err := watcher.New(cli.Root, feed, cli.watchOptions())
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", cli.Root, err)
	}
	defer fw.Close()
	defer feed.Close()

	abs, err := filepath.Abs(cli.Root)
	if err != nil {
		logging.Logger.Debug("Could not resolve watch root", "root", cli.Root, "error", err)
		abs = cli.Root
	}
	if w.Format == "text" {
		fmt.Printf("Watching %s (ctrl+c to stop)\n", abs)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-feed.C():
			if !ok {
				return nil
			}
			logging.Logger.Debug("Watch batch", "paths", len(feed.Drain()))

			current, err := w.snapshot(ctx, engine, cli.Root)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logging.Logger.Warn("Rescan failed", "error", err)
				continue
			}
			if err := w.report(previous, current); err != nil {
				return err
			}
			previous = current
		}
	}
}

// snapshot maps every non-clean path to its record
func (w *WatchCmd) snapshot(ctx context.Context, engine *services.StatusService, root string) (map[string]domain.FileStatusRecord, error) {
	result, err := engine.ScanAll(ctx, root)
	if err != nil {
		return nil, err
	}
	// A partial scan would report every missing path as turning clean
	if result.Truncated {
		return nil, fmt.Errorf("scan of %s interrupted: %w", root, ctx.Err())
	}
	out := make(map[string]domain.FileStatusRecord, len(result.Records))
	for _, rec := range result.Records {
		if rec.Status == domain.StatusIgnored && !w.Ignored {
			continue
		}
		out[rec.Path] = rec
	}
	return out, nil
}

// report prints every path whose status differs between two snapshots
func (w *WatchCmd) report(previous, current map[string]domain.FileStatusRecord) error {
	now := time.Now()
	var events []watchEvent
	for p, rec := range current {
		old, ok := previous[p]
		if ok && old.Status == rec.Status && old.OrigPath == rec.OrigPath {
			continue
		}
		prev := domain.StatusClean
		if ok {
			prev = old.Status
		}
		events = append(events, watchEvent{OrigPath: rec.OrigPath, Path: p, Previous: prev, Status: rec.Status, Time: now})
	}
	for p, old := range previous {
		if _, ok := current[p]; !ok {
			events = append(events, watchEvent{Path: p, Previous: old.Status, Status: domain.StatusClean, Time: now})
		}
	}
	sortEvents(events)

	for _, ev := range events {
		if w.Format == "json" {
			if err := printJSONLine(ev); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("%s  %s -> %s  %s\n", ev.Time.Format("15:04:05"), ev.Previous, ev.Status, ev.Path)
	}
	return nil
}

func sortEvents(events []watchEvent) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Path < events[j].Path
	})
}
