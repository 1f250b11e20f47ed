package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tessera/internal/domain"
	"tessera/internal/ports"
)

// inTx runs fn in a committed transaction and fails the test on error
func inTx(t *testing.T, m *ConnectionManager, fn func(ctx context.Context, repos ports.Repositories)) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, m.WithTransaction(ctx, func(repos ports.Repositories) error {
		fn(ctx, repos)
		return nil
	}))
}

func TestSessionRepository_CreateAssignsID(t *testing.T) {
	m := newMemoryManager(t)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		s := &domain.Session{Name: "work"}
		require.NoError(t, repos.Sessions().Create(ctx, s))
		assert.NotEmpty(t, s.ID)
		assert.False(t, s.CreatedAt.IsZero())
		assert.Equal(t, s.CreatedAt, s.LastActive)
		assert.Equal(t, []string{}, s.PaneIDs)
	})
}

func TestSessionRepository_CreateConflict(t *testing.T) {
	m := newMemoryManager(t)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		require.NoError(t, repos.Sessions().Create(ctx, &domain.Session{ID: "s1", Name: "a"}))
		err := repos.Sessions().Create(ctx, &domain.Session{ID: "s1", Name: "b"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestSessionRepository_UpdateMissing(t *testing.T) {
	m := newMemoryManager(t)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		err := repos.Sessions().Update(ctx, domain.Session{ID: "ghost", Name: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		err = repos.Sessions().Touch(ctx, "ghost", time.Now())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSessionRepository_DeleteIsIdempotent(t *testing.T) {
	m := newMemoryManager(t)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		require.NoError(t, repos.Sessions().Create(ctx, &domain.Session{ID: "s1", Name: "a"}))

		existed, err := repos.Sessions().Delete(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, existed)

		existed, err = repos.Sessions().Delete(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, existed)
	})
}

func TestSessionRepository_ListInCreationOrder(t *testing.T) {
	m := newMemoryManager(t)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		for _, name := range []string{"zeta", "alpha", "mid"} {
			require.NoError(t, repos.Sessions().Create(ctx, &domain.Session{Name: name}))
		}

		sessions, err := repos.Sessions().List(ctx)
		require.NoError(t, err)
		require.Len(t, sessions, 3)
		assert.Equal(t, "zeta", sessions[0].Name)
		assert.Equal(t, "alpha", sessions[1].Name)
		assert.Equal(t, "mid", sessions[2].Name)
	})
}

func TestSessionRepository_TouchOnlyChangesLastActive(t *testing.T) {
	m := newMemoryManager(t)
	later := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		s := &domain.Session{ID: "s1", Name: "a", Metadata: domain.NewBlob(1, []byte("m"))}
		require.NoError(t, repos.Sessions().Create(ctx, s))
		require.NoError(t, repos.Sessions().Touch(ctx, "s1", later))

		got, err := repos.Sessions().GetByID(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, later.Equal(got.LastActive))
		assert.Equal(t, "a", got.Name)
		assert.True(t, s.Metadata.Equal(got.Metadata))
	})
}

func TestPaneRepository_TabOrderAndSessionPaneIDs(t *testing.T) {
	m := newMemoryManager(t)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		require.NoError(t, repos.Sessions().Create(ctx, &domain.Session{ID: "s1", Name: "a"}))
		for _, id := range []string{"p3", "p1", "p2"} {
			require.NoError(t, repos.Panes().Create(ctx, &domain.Pane{ID: id, SessionID: "s1", Kind: domain.PaneKindTerminal}))
		}

		panes, err := repos.Panes().ListBySession(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, panes, 3)
		assert.Equal(t, []int{0, 1, 2}, []int{panes[0].Position, panes[1].Position, panes[2].Position})

		s, err := repos.Sessions().GetByID(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, []string{"p3", "p1", "p2"}, s.PaneIDs)
	})
}

func TestPaneRepository_UpdateRoundTripsState(t *testing.T) {
	m := newMemoryManager(t)
	state := domain.NewBlob(7, []byte{0xde, 0xad, 0xbe, 0xef})

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		require.NoError(t, repos.Sessions().Create(ctx, &domain.Session{ID: "s1", Name: "a"}))
		p := &domain.Pane{ID: "p1", SessionID: "s1", Kind: domain.PaneKindEditor}
		require.NoError(t, repos.Panes().Create(ctx, p))

		p.State = state
		p.Geometry = domain.Geometry{X: 1, Y: 2, Width: 80, Height: 24}
		require.NoError(t, repos.Panes().Update(ctx, *p))

		got, err := repos.Panes().GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.True(t, state.Equal(got.State))
		assert.Equal(t, p.Geometry, got.Geometry)
		assert.Equal(t, "s1", got.SessionID)

		err = repos.Panes().Update(ctx, domain.Pane{ID: "ghost", Kind: domain.PaneKindEditor})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPaneRepository_RejectsUnknownSessionAtCommit(t *testing.T) {
	m := newMemoryManager(t)
	ctx := context.Background()

	err := m.WithTransaction(ctx, func(repos ports.Repositories) error {
		return repos.Panes().Create(ctx, &domain.Pane{SessionID: "nope", Kind: domain.PaneKindTerminal})
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLayoutRepository_TreeRoundTrip(t *testing.T) {
	m := newMemoryManager(t)
	tree := domain.Split(domain.SplitVertical,
		domain.Leaf("p1"),
		domain.LayoutNode{
			Split:    domain.SplitHorizontal,
			Children: []domain.LayoutNode{domain.Leaf("p2"), domain.Leaf("p3")},
			Ratios:   []float64{0.3, 0.7},
		},
	)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		require.NoError(t, repos.Sessions().Create(ctx, &domain.Session{ID: "s1", Name: "a"}))
		l := &domain.Layout{SessionID: "s1", Name: "main", Tree: tree}
		require.NoError(t, repos.Layouts().Create(ctx, l))

		got, err := repos.Layouts().GetByName(ctx, "s1", "main")
		require.NoError(t, err)
		assert.Equal(t, tree, got.Tree)
		assert.Equal(t, l.ID, got.ID)

		dup := &domain.Layout{SessionID: "s1", Name: "main", Tree: tree}
		assert.ErrorIs(t, repos.Layouts().Create(ctx, dup), domain.ErrConflict)
	})
}

func TestLayoutRepository_ListByNameAndSetActive(t *testing.T) {
	m := newMemoryManager(t)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		require.NoError(t, repos.Sessions().Create(ctx, &domain.Session{ID: "s1", Name: "a"}))
		for _, name := range []string{"zoom", "code", "logs"} {
			require.NoError(t, repos.Layouts().Create(ctx, &domain.Layout{ID: name, SessionID: "s1", Name: name, Tree: domain.Leaf("p")}))
		}

		require.NoError(t, repos.Layouts().SetActive(ctx, "s1", "logs"))
		require.NoError(t, repos.Layouts().SetActive(ctx, "s1", "code"))

		layouts, err := repos.Layouts().ListBySession(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, layouts, 3)
		assert.Equal(t, "code", layouts[0].Name)
		assert.Equal(t, "logs", layouts[1].Name)
		assert.Equal(t, "zoom", layouts[2].Name)
		assert.True(t, layouts[0].IsActive)
		assert.False(t, layouts[1].IsActive)

		assert.ErrorIs(t, repos.Layouts().SetActive(ctx, "s1", "ghost"), domain.ErrNotFound)
	})
}

func TestModuleRepository_NameUniqueAndEnabledFilter(t *testing.T) {
	m := newMemoryManager(t)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		require.NoError(t, repos.Modules().Create(ctx, &domain.Module{Name: "git", Kind: "panel", Enabled: true}))
		require.NoError(t, repos.Modules().Create(ctx, &domain.Module{Name: "clock", Kind: "widget", Enabled: false}))

		err := repos.Modules().Create(ctx, &domain.Module{Name: "git"})
		assert.ErrorIs(t, err, domain.ErrConflict)

		all, err := repos.Modules().List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "clock", all[0].Name)
		assert.False(t, all[0].Enabled)

		enabled, err := repos.Modules().ListEnabled(ctx)
		require.NoError(t, err)
		require.Len(t, enabled, 1)
		assert.Equal(t, "git", enabled[0].Name)
	})
}

func TestKeyValueRepository_LastWriteWinsKeepsCreatedAt(t *testing.T) {
	m := newMemoryManager(t)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		first := &domain.KVEntry{Namespace: "ui", Key: "theme", Value: domain.NewBlob(1, []byte("light"))}
		require.NoError(t, repos.KeyValues().Set(ctx, first))

		second := &domain.KVEntry{Namespace: "ui", Key: "theme", Value: domain.NewBlob(2, []byte("dark"))}
		require.NoError(t, repos.KeyValues().Set(ctx, second))

		got, err := repos.KeyValues().Get(ctx, "ui", "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", string(got.Value.Data))
		assert.Equal(t, 2, got.Value.SchemaVersion)
		assert.True(t, first.CreatedAt.Equal(got.CreatedAt))
	})
}

func TestKeyValueRepository_PrefixListingEscapesWildcards(t *testing.T) {
	m := newMemoryManager(t)

	inTx(t, m, func(ctx context.Context, repos ports.Repositories) {
		for _, key := range []string{"a_b.1", "a_b.2", "axb.3", "other"} {
			require.NoError(t, repos.KeyValues().Set(ctx, &domain.KVEntry{Namespace: "ns", Key: key}))
		}
		require.NoError(t, repos.KeyValues().Set(ctx, &domain.KVEntry{Namespace: "elsewhere", Key: "a_b.9"}))

		entries, err := repos.KeyValues().ListByNamespace(ctx, "ns", "a_b.")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "a_b.1", entries[0].Key)
		assert.Equal(t, "a_b.2", entries[1].Key)

		all, err := repos.KeyValues().ListByNamespace(ctx, "ns", "")
		require.NoError(t, err)
		assert.Len(t, all, 4)

		removed, err := repos.KeyValues().DeleteByNamespace(ctx, "ns")
		require.NoError(t, err)
		assert.Equal(t, int64(4), removed)

		existed, err := repos.KeyValues().Delete(ctx, "elsewhere", "a_b.9")
		require.NoError(t, err)
		assert.True(t, existed)
	})
}
