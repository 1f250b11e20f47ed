package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"tessera/internal/domain"
	"tessera/internal/logging"
)

// resolveGitDir locates the metadata directory of root. A .git file (linked
// worktrees, submodules) is followed to the directory it points at.
func resolveGitDir(root string) (string, error) {
	dotGit := filepath.Join(root, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", root, domain.ErrNotAVersionControlRoot)
		}
		return "", fmt.Errorf("failed to stat %s: %v: %w", dotGit, err, domain.ErrIO)
	}
	if info.IsDir() {
		return dotGit, nil
	}

	data, err := os.ReadFile(dotGit)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %v: %w", dotGit, err, domain.ErrIO)
	}
	line := strings.TrimSpace(string(data))
	if !strings.HasPrefix(line, "gitdir:") {
		return "", fmt.Errorf("%s has no gitdir line: %w", dotGit, domain.ErrNotAVersionControlRoot)
	}
	dir := strings.TrimSpace(strings.TrimPrefix(line, "gitdir:"))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir, nil
}

// runGit runs a git command in root and returns its stdout
func runGit(ctx context.Context, root string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = root
	// Pathspecs are file names, and read-only queries must not take index.lock
	cmd.Env = append(os.Environ(), "GIT_LITERAL_PATHSPECS=1", "GIT_OPTIONAL_LOCKS=0")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "not a git repository") {
			return nil, fmt.Errorf("%s: %w", root, domain.ErrNotAVersionControlRoot)
		}
		logging.Logger.Debug("git command failed", "args", args, "stderr", msg, "error", err)
		return nil, fmt.Errorf("git %s failed: %s: %w", args[0], msg, err)
	}
	return output, nil
}

// indexEntry is one tracked path that differs from HEAD or the worktree
type indexEntry struct {
	origPath string
	path     string
	status   domain.FileStatus
}

// readChanges returns tracked paths whose status is not clean
func readChanges(ctx context.Context, root string, paths ...string) (map[string]indexEntry, error) {
	args := []string{"status", "--porcelain=v2", "-z", "--untracked-files=no", "--ignored=no"}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	output, err := runGit(ctx, root, args...)
	if err != nil {
		return nil, err
	}
	return parsePorcelainV2(output)
}

// parsePorcelainV2 parses `git status --porcelain=v2 -z` output
func parsePorcelainV2(output []byte) (map[string]indexEntry, error) {
	entries := make(map[string]indexEntry)
	fields := bytes.Split(output, []byte{0})

	for i := 0; i < len(fields); i++ {
		line := string(fields[i])
		if line == "" {
			continue
		}

		switch line[0] {
		case '1':
			// 1 XY sub mH mI mW hH hI path
			parts := strings.SplitN(line, " ", 9)
			if len(parts) != 9 {
				return nil, fmt.Errorf("malformed status entry %q", line)
			}
			entries[parts[8]] = indexEntry{path: parts[8], status: classifyXY(parts[1])}

		case '2':
			// 2 XY sub mH mI mW hH hI Xscore path, then the original path
			parts := strings.SplitN(line, " ", 10)
			if len(parts) != 10 || i+1 >= len(fields) {
				return nil, fmt.Errorf("malformed rename entry %q", line)
			}
			i++
			status := domain.Strongest(classifyXY(parts[1]), domain.StatusRenamed)
			if strings.HasPrefix(parts[8], "C") {
				status = domain.Strongest(classifyXY(parts[1]), domain.StatusAdded)
			}
			entries[parts[9]] = indexEntry{origPath: string(fields[i]), path: parts[9], status: status}

		case 'u':
			// u XY sub m1 m2 m3 mW h1 h2 h3 path
			parts := strings.SplitN(line, " ", 11)
			if len(parts) != 11 {
				return nil, fmt.Errorf("malformed unmerged entry %q", line)
			}
			entries[parts[10]] = indexEntry{path: parts[10], status: domain.StatusConflicted}

		case '#', '?', '!':
			// Headers, untracked and ignored entries are not requested
		}
	}
	return entries, nil
}

// classifyXY maps a porcelain XY pair to the strongest status it implies
func classifyXY(xy string) domain.FileStatus {
	var candidates []domain.FileStatus
	for _, c := range xy {
		switch c {
		case 'A':
			candidates = append(candidates, domain.StatusAdded)
		case 'D':
			candidates = append(candidates, domain.StatusDeleted)
		case 'M', 'T':
			candidates = append(candidates, domain.StatusModified)
		case 'R':
			candidates = append(candidates, domain.StatusRenamed)
		case 'C':
			candidates = append(candidates, domain.StatusAdded)
		case 'U':
			candidates = append(candidates, domain.StatusConflicted)
		}
	}
	return domain.Strongest(candidates...)
}

// trackedSet holds tracked files and every directory that contains one
type trackedSet struct {
	dirs  map[string]bool
	files map[string]bool
}

func (t trackedSet) has(rel string, isDir bool) bool {
	if isDir {
		return t.dirs[rel]
	}
	return t.files[rel]
}

// readTracked lists the index with `git ls-files -z`, optionally limited to paths
func readTracked(ctx context.Context, root string, paths ...string) (trackedSet, error) {
	args := []string{"ls-files", "-z", "--cached"}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	output, err := runGit(ctx, root, args...)
	if err != nil {
		return trackedSet{}, err
	}
	return parseLsFiles(output), nil
}

func parseLsFiles(output []byte) trackedSet {
	set := trackedSet{dirs: make(map[string]bool), files: make(map[string]bool)}
	for _, field := range bytes.Split(output, []byte{0}) {
		if len(field) == 0 {
			continue
		}
		file := string(field)
		set.files[file] = true
		for dir := parentDir(file); dir != "" && !set.dirs[dir]; dir = parentDir(dir) {
			set.dirs[dir] = true
		}
	}
	return set
}

func parentDir(rel string) string {
	idx := strings.LastIndex(rel, "/")
	if idx < 0 {
		return ""
	}
	return rel[:idx]
}

// isExitStatus reports whether err is a git exit with the given code
func isExitStatus(err error, code int) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == code
}
