package ports

import (
	"context"

	"tessera/internal/domain"
)

// SessionStore is the session and pane part of the workspace store
type SessionStore interface {
	AddPane(ctx context.Context, pane domain.Pane) (*domain.Pane, error)
	CreateSession(ctx context.Context, name string, metadata domain.Blob) (*domain.Session, error)
	DeleteSessionCascade(ctx context.Context, id string) (bool, error)
	GetPane(ctx context.Context, id string) (*domain.Pane, error)
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	ListPanes(ctx context.Context, sessionID string) ([]domain.Pane, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	RemovePane(ctx context.Context, id string) (bool, error)
	RenameSession(ctx context.Context, id, name string) error
	TouchSessionActivity(ctx context.Context, id string) error
	UpdatePane(ctx context.Context, pane domain.Pane) error
	UpdateSession(ctx context.Context, session domain.Session) error
}

// LayoutStore is the layout part of the workspace store
type LayoutStore interface {
	ActivateLayout(ctx context.Context, id string) error
	DeleteLayout(ctx context.Context, id string) (bool, error)
	GetLayout(ctx context.Context, id string) (*domain.Layout, error)
	GetLayoutByName(ctx context.Context, sessionID, name string) (*domain.Layout, error)
	ListLayouts(ctx context.Context, sessionID string) ([]domain.Layout, error)
	SaveLayout(ctx context.Context, layout domain.Layout) (*domain.Layout, error)
}

// ModuleStore is the module registry part of the workspace store
type ModuleStore interface {
	GetModule(ctx context.Context, name string) (*domain.Module, error)
	ListModules(ctx context.Context, enabledOnly bool) ([]domain.Module, error)
	RegisterModule(ctx context.Context, module domain.Module) (*domain.Module, error)
	SetModuleEnabled(ctx context.Context, name string, enabled bool) error
	UnregisterModule(ctx context.Context, name string) (bool, error)
	UpdateModule(ctx context.Context, module domain.Module) error
}

// KeyValueStore is the settings and feature-state part of the workspace store
type KeyValueStore interface {
	ClearNamespace(ctx context.Context, namespace string) (int64, error)
	DeleteValue(ctx context.Context, namespace, key string) (bool, error)
	GetValue(ctx context.Context, namespace, key string) (*domain.KVEntry, error)
	ListValues(ctx context.Context, namespace, prefix string) ([]domain.KVEntry, error)
	SetValue(ctx context.Context, namespace, key string, value domain.Blob) (*domain.KVEntry, error)
}

// WorkspaceStore is the composite interface used by the command and UI layers
type WorkspaceStore interface {
	SessionStore
	LayoutStore
	ModuleStore
	KeyValueStore
}
