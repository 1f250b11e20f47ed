package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestGitSetup holds paths for a complete git test environment.
// It creates a bare repo (simulating remote/origin) and a clone with origin configured.
type TestGitSetup struct {
	BareRepoPath string // Acts as "origin" remote
	ClonePath    string // Working repo with origin configured
	tb           testing.TB
}

// NewTestGitSetup creates a complete git environment with origin.
//  1. Creates a bare repo (simulates remote/origin)
//  2. Clones it to create a working repo with origin remote
//  3. Creates and pushes an initial commit on main
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/           <- git init --bare (acts as origin)
//	└── clone/          <- git clone bare/ clone/ (has origin remote)
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()

	baseDir := tb.TempDir()
	bareRepoPath := filepath.Join(baseDir, "bare")
	clonePath := filepath.Join(baseDir, "clone")

	runGitCommand(tb, baseDir, "init", "--bare", bareRepoPath)
	runGitCommand(tb, baseDir, "clone", bareRepoPath, clonePath)

	runGitCommand(tb, clonePath, "config", "user.email", "test@example.com")
	runGitCommand(tb, clonePath, "config", "user.name", "Test User")
	runGitCommand(tb, clonePath, "config", "core.excludesFile", filepath.Join(baseDir, "no-global-ignore"))

	g := &TestGitSetup{
		BareRepoPath: bareRepoPath,
		ClonePath:    clonePath,
		tb:           tb,
	}
	g.WriteFile("README.md", "# Test Repo\n")
	g.Commit("Initial commit", "README.md")

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, clonePath, "branch", "-M", "main")
	runGitCommand(tb, clonePath, "push", "-u", "origin", "main")

	return g
}

// WriteFile writes content to a path relative to the clone, creating parents.
func (g *TestGitSetup) WriteFile(rel, content string) {
	g.tb.Helper()
	full := filepath.Join(g.ClonePath, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		g.tb.Fatalf("Failed to create parent of %s: %v", rel, err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", rel, err)
	}
}

// RemoveFile deletes a path relative to the clone.
func (g *TestGitSetup) RemoveFile(rel string) {
	g.tb.Helper()
	if err := os.RemoveAll(filepath.Join(g.ClonePath, filepath.FromSlash(rel))); err != nil {
		g.tb.Fatalf("Failed to remove %s: %v", rel, err)
	}
}

// Commit stages the given paths and commits them.
func (g *TestGitSetup) Commit(message string, paths ...string) {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, append([]string{"add", "--"}, paths...)...)
	runGitCommand(g.tb, g.ClonePath, "commit", "-m", message)
}

// Stage adds paths to the index without committing.
func (g *TestGitSetup) Stage(paths ...string) {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, append([]string{"add", "--"}, paths...)...)
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}
