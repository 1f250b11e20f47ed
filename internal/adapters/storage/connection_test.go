package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tessera/internal/domain"
	"tessera/internal/ports"
)

func newMemoryManager(t *testing.T) *ConnectionManager {
	t.Helper()
	cfg := MemoryConnectionConfig()
	cfg.AcquireTimeout = 200 * time.Millisecond
	m, err := NewConnectionManager(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func newFileManager(t *testing.T, path string) *ConnectionManager {
	t.Helper()
	cfg := DefaultConnectionConfig()
	cfg.Path = path
	m, err := NewConnectionManager(cfg)
	require.NoError(t, err)
	return m
}

func TestNewConnectionManager_MemoryModeUsesSingleSlot(t *testing.T) {
	m := newMemoryManager(t)
	assert.Equal(t, ModeMemory, m.Config().Mode)
	assert.Equal(t, 1, m.Config().MaxReaders)
}

func TestNewConnectionManager_FileModeRequiresPath(t *testing.T) {
	cfg := DefaultConnectionConfig()
	cfg.Path = ""
	_, err := NewConnectionManager(cfg)
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestAcquire_TimesOutWithBusy(t *testing.T) {
	m := newMemoryManager(t)
	ctx := context.Background()

	held, err := m.Acquire(ctx)
	require.NoError(t, err)

	start := time.Now()
	_, err = m.Acquire(ctx)
	assert.ErrorIs(t, err, domain.ErrBusy)
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)

	held.Release()
	held.Release() // second release is a no-op

	again, err := m.Acquire(ctx)
	require.NoError(t, err)
	again.Release()
}

func TestAcquire_HonorsContext(t *testing.T) {
	m := newMemoryManager(t)
	held, err := m.Acquire(context.Background())
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Acquire(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	m := newMemoryManager(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := m.WithTransaction(ctx, func(repos ports.Repositories) error {
		if err := repos.Sessions().Create(ctx, &domain.Session{ID: "s1", Name: "one"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = m.WithReader(ctx, func(repos ports.Repositories) error {
		_, err := repos.Sessions().GetByID(ctx, "s1")
		return err
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileMode_DurableAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	m := newFileManager(t, path)
	payload := domain.NewBlob(3, []byte{0x00, 0x01, 0xfe, 0xff})
	require.NoError(t, m.WithTransaction(ctx, func(repos ports.Repositories) error {
		s := &domain.Session{ID: "s1", Name: "first", Metadata: payload}
		if err := repos.Sessions().Create(ctx, s); err != nil {
			return err
		}
		s.Name = "renamed"
		if err := repos.Sessions().Update(ctx, *s); err != nil {
			return err
		}
		return repos.KeyValues().Set(ctx, &domain.KVEntry{Namespace: "ui", Key: "theme", Value: domain.NewBlob(1, []byte("dark"))})
	}))
	require.NoError(t, m.Close())

	// Schema creation must be idempotent on reopen
	reopened := newFileManager(t, path)
	defer reopened.Close()

	require.NoError(t, reopened.WithReader(ctx, func(repos ports.Repositories) error {
		s, err := repos.Sessions().GetByID(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "renamed", s.Name)
		assert.True(t, payload.Equal(s.Metadata))

		entry, err := repos.KeyValues().Get(ctx, "ui", "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", string(entry.Value.Data))
		return nil
	}))
}

// damagePages overwrites every page after the first with junk, leaving the
// header and schema readable
func damagePages(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	pageSize := int(data[16])<<8 | int(data[17])
	if pageSize == 1 {
		pageSize = 65536
	}
	require.Greater(t, len(data), pageSize, "database has a single page")
	for i := pageSize; i < len(data); i++ {
		data[i] = 0xff
	}
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestNewConnectionManager_CorruptFileIsRejectedAtOpen(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, path string)
	}{
		{
			name: "not a database",
			prepare: func(t *testing.T, path string) {
				junk := bytes.Repeat([]byte("definitely not sqlite "), 64)
				require.NoError(t, os.WriteFile(path, junk, 0644))
			},
		},
		{
			name: "damaged pages",
			prepare: func(t *testing.T, path string) {
				cfg := DefaultConnectionConfig()
				cfg.Path = path
				cfg.WAL = false
				m, err := NewConnectionManager(cfg)
				require.NoError(t, err)
				require.NoError(t, m.Close())
				damagePages(t, path)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state.db")
			tt.prepare(t, path)

			cfg := DefaultConnectionConfig()
			cfg.Path = path
			_, err := NewConnectionManager(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCorrupt)
			assert.True(t, domain.IsFatalStorage(err))
		})
	}
}

func TestCheckIntegrity_HealthyFile(t *testing.T) {
	m := newFileManager(t, filepath.Join(t.TempDir(), "state.db"))
	defer m.Close()
	assert.NoError(t, checkIntegrity(m.db))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, domain.ErrBusy},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, domain.ErrBusy},
		{"corrupt", sqlite3.Error{Code: sqlite3.ErrCorrupt}, domain.ErrCorrupt},
		{"not a db", sqlite3.Error{Code: sqlite3.ErrNotADB}, domain.ErrCorrupt},
		{"io", sqlite3.Error{Code: sqlite3.ErrIoErr}, domain.ErrIO},
		{"full", sqlite3.Error{Code: sqlite3.ErrFull}, domain.ErrIO},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, domain.ErrConflict},
		{"foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyError(tt.err), tt.expected)
		})
	}

	plain := errors.New("plain")
	assert.Equal(t, plain, classifyError(plain))
	assert.NoError(t, classifyError(nil))
}

func TestWithRetry_GivesUpWithBusy(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return sqlite3.Error{Code: sqlite3.ErrBusy}
	}, 3, time.Millisecond)

	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, domain.ErrBusy)
}

func TestWithRetry_DoesNotRetryOtherErrors(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	err := withRetry(func() error {
		calls++
		return boom
	}, 3, time.Millisecond)

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, boom)
}

func TestWithRetry_SucceedsAfterBusy(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		if calls < 2 {
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}
		return nil
	}, 3, time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}
