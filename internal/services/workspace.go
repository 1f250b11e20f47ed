package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tessera/internal/domain"
	"tessera/internal/logging"
	"tessera/internal/ports"
)

// WorkspaceService is the only entry point to persisted workspace state.
// It owns every transaction that spans more than one entity and never hands
// a connection or transaction to its callers.
type WorkspaceService struct {
	now func() time.Time
	uow ports.UnitOfWork
}

var _ ports.WorkspaceStore = (*WorkspaceService)(nil)

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(uow ports.UnitOfWork) *WorkspaceService {
	return &WorkspaceService{
		now: func() time.Time { return time.Now().UTC() },
		uow: uow,
	}
}

// CreateSession creates an empty session
func (s *WorkspaceService) CreateSession(ctx context.Context, name string, metadata domain.Blob) (*domain.Session, error) {
	normalized, err := domain.NormalizeSessionName(name)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{Metadata: metadata, Name: normalized}
	err = s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		return repos.Sessions().Create(ctx, session)
	})
	if err != nil {
		logging.Logger.Error("Failed to create session", "name", normalized, "error", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logging.Logger.Info("Session created", "id", session.ID, "name", session.Name)
	return session, nil
}

// GetSession loads a session with its ordered pane identifiers
func (s *WorkspaceService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	var session *domain.Session
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		var err error
		session, err = repos.Sessions().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// ListSessions returns all sessions in creation order
func (s *WorkspaceService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		var err error
		sessions, err = repos.Sessions().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// RenameSession changes a session's display name
func (s *WorkspaceService) RenameSession(ctx context.Context, id, name string) error {
	normalized, err := domain.NormalizeSessionName(name)
	if err != nil {
		return err
	}

	err = s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		session, err := repos.Sessions().GetByID(ctx, id)
		if err != nil {
			return err
		}
		session.Name = normalized
		return repos.Sessions().Update(ctx, *session)
	})
	if err != nil {
		return fmt.Errorf("failed to rename session: %w", err)
	}

	logging.Logger.Info("Session renamed", "id", id, "name", normalized)
	return nil
}

// UpdateSession replaces a session's mutable fields. An associated layout
// must belong to the same session.
func (s *WorkspaceService) UpdateSession(ctx context.Context, session domain.Session) error {
	normalized, err := domain.NormalizeSessionName(session.Name)
	if err != nil {
		return err
	}
	session.Name = normalized

	return s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		if session.LayoutID != nil {
			layout, err := repos.Layouts().GetByID(ctx, *session.LayoutID)
			if err != nil {
				return err
			}
			if layout.SessionID != session.ID {
				return fmt.Errorf("layout %s belongs to session %s: %w", layout.ID, layout.SessionID, domain.ErrInvalidLayout)
			}
		}
		return repos.Sessions().Update(ctx, session)
	})
}

// DeleteSessionCascade deletes the session, then its panes, then its layouts,
// inside one transaction. Deleting an absent session is not an error.
func (s *WorkspaceService) DeleteSessionCascade(ctx context.Context, id string) (bool, error) {
	var existed bool
	var panes, layouts int64

	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		var err error
		if existed, err = repos.Sessions().Delete(ctx, id); err != nil {
			return err
		}
		if panes, err = repos.Panes().DeleteBySession(ctx, id); err != nil {
			return err
		}
		layouts, err = repos.Layouts().DeleteBySession(ctx, id)
		return err
	})
	if err != nil {
		logging.Logger.Error("Failed to delete session", "id", id, "error", err)
		return false, fmt.Errorf("failed to delete session: %w", err)
	}

	logging.Logger.Info("Session deleted", "id", id, "existed", existed, "panes", panes, "layouts", layouts)
	return existed, nil
}

// TouchSessionActivity bumps last_active with a single-row write
func (s *WorkspaceService) TouchSessionActivity(ctx context.Context, id string) error {
	at := s.now()
	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		return repos.Sessions().Touch(ctx, id, at)
	})
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	logging.Logger.Debug("Session touched", "id", id, "at", at)
	return nil
}

// AddPane appends a pane to an existing session
func (s *WorkspaceService) AddPane(ctx context.Context, pane domain.Pane) (*domain.Pane, error) {
	if _, err := domain.ParsePaneKind(string(pane.Kind)); err != nil {
		return nil, err
	}

	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		if _, err := repos.Sessions().GetByID(ctx, pane.SessionID); err != nil {
			return err
		}
		return repos.Panes().Create(ctx, &pane)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add pane: %w", err)
	}

	logging.Logger.Info("Pane added", "id", pane.ID, "session", pane.SessionID, "kind", pane.Kind)
	return &pane, nil
}

// GetPane loads one pane
func (s *WorkspaceService) GetPane(ctx context.Context, id string) (*domain.Pane, error) {
	var pane *domain.Pane
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		var err error
		pane, err = repos.Panes().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pane, nil
}

// ListPanes returns a session's panes in tab order
func (s *WorkspaceService) ListPanes(ctx context.Context, sessionID string) ([]domain.Pane, error) {
	var panes []domain.Pane
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		if _, err := repos.Sessions().GetByID(ctx, sessionID); err != nil {
			return err
		}
		var err error
		panes, err = repos.Panes().ListBySession(ctx, sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return panes, nil
}

// UpdatePane replaces a pane's geometry, state and kind. Panes cannot move
// between sessions.
func (s *WorkspaceService) UpdatePane(ctx context.Context, pane domain.Pane) error {
	if _, err := domain.ParsePaneKind(string(pane.Kind)); err != nil {
		return err
	}

	return s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		existing, err := repos.Panes().GetByID(ctx, pane.ID)
		if err != nil {
			return err
		}
		if pane.SessionID != "" && pane.SessionID != existing.SessionID {
			return fmt.Errorf("pane %s cannot move to session %s: %w", pane.ID, pane.SessionID, domain.ErrConflict)
		}
		pane.SessionID = existing.SessionID
		return repos.Panes().Update(ctx, pane)
	})
}

// RemovePane deletes a pane and prunes it from its session's layouts.
// Layouts left without panes are deleted.
func (s *WorkspaceService) RemovePane(ctx context.Context, id string) (bool, error) {
	var existed bool

	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		pane, err := repos.Panes().GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if existed, err = repos.Panes().Delete(ctx, id); err != nil {
			return err
		}
		return s.pruneLayouts(ctx, repos, pane.SessionID, id)
	})
	if err != nil {
		return false, fmt.Errorf("failed to remove pane: %w", err)
	}

	logging.Logger.Info("Pane removed", "id", id, "existed", existed)
	return existed, nil
}

func (s *WorkspaceService) pruneLayouts(ctx context.Context, repos ports.Repositories, sessionID, paneID string) error {
	layouts, err := repos.Layouts().ListBySession(ctx, sessionID)
	if err != nil {
		return err
	}

	var dropped []string
	for _, layout := range layouts {
		tree, ok := layout.Tree.WithoutPane(paneID)
		if !ok {
			if _, err := repos.Layouts().Delete(ctx, layout.ID); err != nil {
				return err
			}
			dropped = append(dropped, layout.ID)
			continue
		}
		if len(tree.LeafPaneIDs()) == len(layout.Tree.LeafPaneIDs()) {
			continue
		}
		layout.Tree = tree
		if err := repos.Layouts().Update(ctx, layout); err != nil {
			return err
		}
	}

	if len(dropped) == 0 {
		return nil
	}
	return s.clearSessionLayout(ctx, repos, sessionID, dropped...)
}

// clearSessionLayout unsets the session's layout when it is one of ids
func (s *WorkspaceService) clearSessionLayout(ctx context.Context, repos ports.Repositories, sessionID string, ids ...string) error {
	session, err := repos.Sessions().GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.LayoutID == nil {
		return nil
	}
	for _, id := range ids {
		if *session.LayoutID == id {
			session.LayoutID = nil
			return repos.Sessions().Update(ctx, *session)
		}
	}
	return nil
}
