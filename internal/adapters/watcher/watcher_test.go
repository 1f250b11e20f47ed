package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portsmocks "tessera/internal/ports/mocks"
)

func collect(t *testing.T, root string) (*portsmocks.MockStatusInvalidator, chan []string) {
	t.Helper()
	batches := make(chan []string, 16)
	sink := portsmocks.NewMockStatusInvalidator(t)
	sink.EXPECT().Invalidate(root, mock.Anything).
		Run(func(_ string, paths []string) { batches <- paths }).
		Maybe()
	return sink, batches
}

func waitBatch(t *testing.T, batches chan []string) []string {
	t.Helper()
	select {
	case b := <-batches:
		return b
	case <-time.After(3 * time.Second):
		t.Fatal("no batch received")
		return nil
	}
}

func TestWatcher_BatchesChanges(t *testing.T) {
	root := t.TempDir()
	sink, batches := collect(t, root)

	w, err := New(root, sink, Options{Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	defer w.Close()

	a := filepath.Join(root, "a.txt")
	b := filepath.Join(root, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0644))

	seen := map[string]bool{}
	deadline := time.After(3 * time.Second)
	for !(seen[a] && seen[b]) {
		select {
		case batch := <-batches:
			for _, p := range batch {
				seen[p] = true
			}
		case <-deadline:
			t.Fatalf("missing changes, saw %v", seen)
		}
	}
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	sink, batches := collect(t, root)

	w, err := New(root, sink, Options{Debounce: 30 * time.Millisecond})
	require.NoError(t, err)
	defer w.Close()

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	waitBatch(t, batches)

	nested := filepath.Join(sub, "n.txt")
	require.NoError(t, os.WriteFile(nested, []byte("n"), 0644))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case batch := <-batches:
			if contains(batch, nested) {
				return
			}
		case <-deadline:
			t.Fatal("change in new directory not reported")
		}
	}
}

func TestWatcher_SkipsExcludedAndGitInternals(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "objects"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0755))
	sink, batches := collect(t, root)

	w, err := New(root, sink, Options{Debounce: 30 * time.Millisecond, Exclude: []string{"node_modules"}})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "x.js"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "ORIG_HEAD"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "index"), []byte("x"), 0644))

	batch := waitBatch(t, batches)
	assert.Equal(t, []string{filepath.Join(root, ".git", "index")}, batch)
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	root := t.TempDir()
	sink, _ := collect(t, root)

	w, err := New(root, sink, Options{})
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func contains(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}
	return false
}
