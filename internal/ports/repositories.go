package ports

import (
	"context"
	"time"

	"tessera/internal/domain"
)

// SessionRepository persists sessions
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	Touch(ctx context.Context, id string, at time.Time) error
	Update(ctx context.Context, session domain.Session) error
}

// PaneRepository persists panes
type PaneRepository interface {
	Create(ctx context.Context, pane *domain.Pane) error
	Delete(ctx context.Context, id string) (bool, error)
	DeleteBySession(ctx context.Context, sessionID string) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.Pane, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.Pane, error)
	Update(ctx context.Context, pane domain.Pane) error
}

// LayoutRepository persists layouts
type LayoutRepository interface {
	Create(ctx context.Context, layout *domain.Layout) error
	Delete(ctx context.Context, id string) (bool, error)
	DeleteBySession(ctx context.Context, sessionID string) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.Layout, error)
	GetByName(ctx context.Context, sessionID, name string) (*domain.Layout, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.Layout, error)
	SetActive(ctx context.Context, sessionID, layoutID string) error
	Update(ctx context.Context, layout domain.Layout) error
}

// ModuleRepository persists module descriptors
type ModuleRepository interface {
	Create(ctx context.Context, module *domain.Module) error
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Module, error)
	GetByName(ctx context.Context, name string) (*domain.Module, error)
	List(ctx context.Context) ([]domain.Module, error)
	ListEnabled(ctx context.Context) ([]domain.Module, error)
	Update(ctx context.Context, module domain.Module) error
}

// KeyValueRepository persists namespaced key-value entries
type KeyValueRepository interface {
	Delete(ctx context.Context, namespace, key string) (bool, error)
	DeleteByNamespace(ctx context.Context, namespace string) (int64, error)
	Get(ctx context.Context, namespace, key string) (*domain.KVEntry, error)
	ListByNamespace(ctx context.Context, namespace, prefix string) ([]domain.KVEntry, error)
	Set(ctx context.Context, entry *domain.KVEntry) error
}

// Repositories is the set of repositories bound to one scoped connection.
// Every call made through it runs inside the same transaction.
type Repositories interface {
	KeyValues() KeyValueRepository
	Layouts() LayoutRepository
	Modules() ModuleRepository
	Panes() PaneRepository
	Sessions() SessionRepository
}

// UnitOfWork hands out scoped repositories. The callback's error decides
// whether the transaction commits.
type UnitOfWork interface {
	Close() error
	WithReader(ctx context.Context, fn func(repos Repositories) error) error
	WithTransaction(ctx context.Context, fn func(repos Repositories) error) error
}
