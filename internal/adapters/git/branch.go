package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tessera/internal/domain"
	"tessera/internal/logging"
)

// BranchSummary reports the checked-out branch and how far it has drifted
// from its upstream. Missing upstreams are not an error.
func (s *Scanner) BranchSummary(ctx context.Context, root string) (*domain.BranchSummary, error) {
	root, err := absRoot(root)
	if err != nil {
		return nil, err
	}
	if _, err := resolveGitDir(root); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Fetching branch summary", "root", root)
	summary := &domain.BranchSummary{FetchedAt: time.Now().UTC()}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		branch, err := runGit(gctx, root, "symbolic-ref", "--short", "-q", "HEAD")
		if err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			summary.Detached = true
		} else {
			summary.Branch = strings.TrimSpace(string(branch))
		}

		// Unborn branches have no commit yet
		if head, err := runGit(gctx, root, "rev-parse", "--short", "HEAD"); err == nil {
			summary.Head = strings.TrimSpace(string(head))
		}
		return nil
	})

	g.Go(func() error {
		upstream, err := runGit(gctx, root, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
		if err != nil {
			logging.Logger.Debug("No upstream", "root", root, "error", err)
			return nil
		}
		summary.Upstream = strings.TrimSpace(string(upstream))

		ahead, behind, err := getAheadBehind(gctx, root)
		if err != nil {
			logging.Logger.Debug("Failed to get ahead/behind", "error", err)
			return nil
		}
		summary.Ahead = ahead
		summary.Behind = behind
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if summary.Detached {
		summary.Branch = summary.Head
	}
	logging.Logger.Debug("Branch summary fetched",
		"branch", summary.Branch,
		"upstream", summary.Upstream,
		"ahead", summary.Ahead,
		"behind", summary.Behind)
	return summary, nil
}

// getAheadBehind returns how many commits HEAD is ahead of and behind its upstream
func getAheadBehind(ctx context.Context, root string) (ahead int, behind int, err error) {
	output, err := runGit(ctx, root, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return 0, 0, err
	}

	// Output: "AHEAD	BEHIND"
	parts := strings.Fields(strings.TrimSpace(string(output)))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %s", output)
	}

	if ahead, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("failed to parse ahead count: %w", err)
	}
	if behind, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("failed to parse behind count: %w", err)
	}
	return ahead, behind, nil
}
