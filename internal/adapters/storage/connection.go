package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tessera/internal/config"
	"tessera/internal/domain"
	"tessera/internal/logging"
	"tessera/internal/ports"
)

// Mode selects where the store keeps its data
type Mode string

const (
	ModeFile   Mode = "file"
	ModeMemory Mode = "memory"
)

// ConnectionConfig tunes the storage engine and the slot pool
type ConnectionConfig struct {
	AcquireTimeout time.Duration // Max wait for a free slot before ErrBusy
	BusyTimeout    time.Duration // SQLite busy_timeout applied to each connection
	MaxReaders     int           // Concurrent scoped connections
	Mode           Mode
	Path           string // Database file, file mode only
	RetryAttempts  int
	RetryBackoff   time.Duration // Multiplied by the attempt number
	WAL            bool
}

// DefaultConnectionConfig returns the file-backed defaults
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		AcquireTimeout: 5 * time.Second,
		BusyTimeout:    5 * time.Second,
		MaxReaders:     10,
		Mode:           ModeFile,
		Path:           config.GetDBPath(),
		RetryAttempts:  3,
		RetryBackoff:   50 * time.Millisecond,
		WAL:            true,
	}
}

// MemoryConnectionConfig returns defaults for an ephemeral in-memory store
func MemoryConnectionConfig() ConnectionConfig {
	cfg := DefaultConnectionConfig()
	cfg.Mode = ModeMemory
	cfg.Path = ""
	cfg.WAL = false
	return cfg
}

// ConnectionManager owns the storage handle and hands out scoped connections.
// It holds no business logic.
type ConnectionManager struct {
	cfg   ConnectionConfig
	db    *gorm.DB
	slots chan struct{}
}

// Verify interface compliance at compile time
var _ ports.UnitOfWork = (*ConnectionManager)(nil)

// Conn is a scoped connection. It must be released exactly once.
type Conn struct {
	db       *gorm.DB
	released bool
	slots    chan struct{}
}

// DB returns the handle bound to the acquiring context
func (c *Conn) DB() *gorm.DB {
	return c.db
}

// Release returns the slot to the pool
func (c *Conn) Release() {
	if c.released {
		return
	}
	c.released = true
	<-c.slots
}

// NewConnectionManager opens the store and lazily creates the schema
func NewConnectionManager(cfg ConnectionConfig) (*ConnectionManager, error) {
	if cfg.MaxReaders <= 0 {
		cfg.MaxReaders = 1
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}

	dsn, err := buildDSN(&cfg)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Opening store", "mode", cfg.Mode, "path", cfg.Path, "wal", cfg.WAL, "max_readers", cfg.MaxReaders)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to open database: %w", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxReaders)
	sqlDB.SetMaxIdleConns(cfg.MaxReaders)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if cfg.Mode == ModeFile {
		if err := checkIntegrity(db); err != nil {
			sqlDB.Close()
			logging.Logger.Error("Store failed integrity check", "path", cfg.Path, "error", err)
			return nil, err
		}
	}

	if cfg.Mode == ModeFile && cfg.WAL {
		if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
			sqlDB.Close()
			return nil, classifyError(fmt.Errorf("failed to enable WAL: %w", err))
		}
	}

	if err := ensureSchema(db); err != nil {
		sqlDB.Close()
		return nil, classifyError(err)
	}

	return &ConnectionManager{
		cfg:   cfg,
		db:    db,
		slots: make(chan struct{}, cfg.MaxReaders),
	}, nil
}

// checkIntegrity runs SQLite's quick_check so a damaged file is reported as
// ErrCorrupt at open instead of on the first query that touches it
func checkIntegrity(db *gorm.DB) error {
	var problems []string
	if err := db.Raw("PRAGMA quick_check").Scan(&problems).Error; err != nil {
		return classifyError(fmt.Errorf("integrity check failed: %w", err))
	}
	if len(problems) == 1 && problems[0] == "ok" {
		return nil
	}
	return fmt.Errorf("integrity check failed: %s: %w", strings.Join(problems, "; "), domain.ErrCorrupt)
}

// buildDSN translates the config into a go-sqlite3 DSN. Pragmas go in the DSN
// so every pooled connection gets them, not only the first one.
func buildDSN(cfg *ConnectionConfig) (string, error) {
	params := url.Values{}
	params.Set("_busy_timeout", fmt.Sprintf("%d", cfg.BusyTimeout.Milliseconds()))
	params.Set("_foreign_keys", "1")
	params.Set("_synchronous", "NORMAL")

	switch cfg.Mode {
	case ModeMemory:
		// A named shared-cache database outlives individual connections but
		// locks at table level, so a single connection keeps it predictable.
		cfg.MaxReaders = 1
		params.Set("mode", "memory")
		params.Set("cache", "shared")
		return fmt.Sprintf("file:tessera-%s?%s", uuid.New().String(), params.Encode()), nil

	case ModeFile, "":
		cfg.Mode = ModeFile
		if cfg.Path == "" {
			return "", fmt.Errorf("file mode requires a database path: %w", domain.ErrIO)
		}
		cfg.Path = config.ExpandPath(cfg.Path)
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %v: %w", err, domain.ErrIO)
		}
		// Writers take the lock at BEGIN so they never deadlock upgrading
		params.Set("_txlock", "immediate")
		return fmt.Sprintf("file:%s?%s", cfg.Path, params.Encode()), nil
	}

	return "", fmt.Errorf("unknown storage mode %q", cfg.Mode)
}

// Config returns the effective configuration
func (m *ConnectionManager) Config() ConnectionConfig {
	return m.cfg
}

// Acquire waits up to AcquireTimeout for a free slot
func (m *ConnectionManager) Acquire(ctx context.Context) (*Conn, error) {
	timer := time.NewTimer(m.cfg.AcquireTimeout)
	defer timer.Stop()

	select {
	case m.slots <- struct{}{}:
		return &Conn{db: m.db.WithContext(ctx), slots: m.slots}, nil
	case <-timer.C:
		logging.Logger.Warn("Timed out acquiring connection", "timeout", m.cfg.AcquireTimeout)
		return nil, fmt.Errorf("no connection available after %s: %w", m.cfg.AcquireTimeout, domain.ErrBusy)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// WithTransaction runs fn inside one transaction. Busy and locked errors
// roll back and retry the whole callback.
func (m *ConnectionManager) WithTransaction(ctx context.Context, fn func(repos ports.Repositories) error) error {
	conn, err := m.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	err = withRetry(func() error {
		return conn.DB().Transaction(func(tx *gorm.DB) error {
			return fn(newScopedRepositories(tx))
		})
	}, m.cfg.RetryAttempts, m.cfg.RetryBackoff)
	return classifyError(err)
}

// WithReader runs fn against a scoped connection without opening a write transaction
func (m *ConnectionManager) WithReader(ctx context.Context, fn func(repos ports.Repositories) error) error {
	conn, err := m.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	err = withRetry(func() error {
		return fn(newScopedRepositories(conn.DB()))
	}, m.cfg.RetryAttempts, m.cfg.RetryBackoff)
	return classifyError(err)
}

// Close closes the database connection
func (m *ConnectionManager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func withRetry(fn func() error, maxRetries int, backoff time.Duration) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !isBusy(err) {
			return err
		}
		logging.Logger.Debug("Store busy, retrying", "attempt", i+1, "error", err)
		time.Sleep(backoff * time.Duration(i+1))
	}
	if errors.Is(err, domain.ErrBusy) {
		return err
	}
	return fmt.Errorf("operation failed after %d retries: %v: %w", maxRetries, err, domain.ErrBusy)
}
