package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tessera/internal/domain"
	"tessera/internal/logging"
	"tessera/internal/ports"
)

// SaveLayout creates or replaces a session's layout. A layout is matched by
// ID when one is given, otherwise by name. Every leaf must reference a pane
// owned by the same session; anything else is rejected with ErrInvalidLayout
// and nothing is written.
func (s *WorkspaceService) SaveLayout(ctx context.Context, layout domain.Layout) (*domain.Layout, error) {
	layout.Name = strings.TrimSpace(layout.Name)
	if layout.Name == "" {
		return nil, fmt.Errorf("layout name is empty: %w", domain.ErrInvalidName)
	}

	var saved *domain.Layout
	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		session, err := repos.Sessions().GetByID(ctx, layout.SessionID)
		if err != nil {
			return err
		}

		owned := make(map[string]bool, len(session.PaneIDs))
		for _, id := range session.PaneIDs {
			owned[id] = true
		}
		if err := layout.CheckOwnership(owned); err != nil {
			return err
		}

		existing, err := s.findLayout(ctx, repos, layout)
		if err != nil {
			return err
		}

		if existing == nil {
			if err := repos.Layouts().Create(ctx, &layout); err != nil {
				return err
			}
		} else {
			if existing.SessionID != layout.SessionID {
				return fmt.Errorf("layout %s belongs to session %s: %w", existing.ID, existing.SessionID, domain.ErrInvalidLayout)
			}
			if existing.Name != layout.Name {
				if _, err := repos.Layouts().GetByName(ctx, layout.SessionID, layout.Name); err == nil {
					return fmt.Errorf("layout %s: %w", layout.Name, domain.ErrConflict)
				} else if !errors.Is(err, domain.ErrNotFound) {
					return err
				}
			}
			layout.ID = existing.ID
			// Saving never deactivates; use ActivateLayout on a sibling instead
			layout.IsActive = layout.IsActive || existing.IsActive
			if err := repos.Layouts().Update(ctx, layout); err != nil {
				return err
			}
		}

		if layout.IsActive {
			if err := s.activate(ctx, repos, session, layout.ID); err != nil {
				return err
			}
		}

		saved, err = repos.Layouts().GetByID(ctx, layout.ID)
		return err
	})
	if err != nil {
		logging.Logger.Warn("Layout rejected", "session", layout.SessionID, "name", layout.Name, "error", err)
		return nil, fmt.Errorf("failed to save layout: %w", err)
	}

	logging.Logger.Info("Layout saved", "id", saved.ID, "session", saved.SessionID, "name", saved.Name, "panes", len(saved.Tree.LeafPaneIDs()))
	return saved, nil
}

// findLayout returns the stored layout the save should replace, or nil
func (s *WorkspaceService) findLayout(ctx context.Context, repos ports.Repositories, layout domain.Layout) (*domain.Layout, error) {
	var existing *domain.Layout
	var err error
	if layout.ID != "" {
		existing, err = repos.Layouts().GetByID(ctx, layout.ID)
	} else {
		existing, err = repos.Layouts().GetByName(ctx, layout.SessionID, layout.Name)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return existing, err
}

func (s *WorkspaceService) activate(ctx context.Context, repos ports.Repositories, session *domain.Session, layoutID string) error {
	if err := repos.Layouts().SetActive(ctx, session.ID, layoutID); err != nil {
		return err
	}
	session.LayoutID = &layoutID
	return repos.Sessions().Update(ctx, *session)
}

// ActivateLayout makes the layout its session's active one
func (s *WorkspaceService) ActivateLayout(ctx context.Context, id string) error {
	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		layout, err := repos.Layouts().GetByID(ctx, id)
		if err != nil {
			return err
		}
		session, err := repos.Sessions().GetByID(ctx, layout.SessionID)
		if err != nil {
			return err
		}
		return s.activate(ctx, repos, session, id)
	})
	if err != nil {
		return fmt.Errorf("failed to activate layout: %w", err)
	}
	logging.Logger.Info("Layout activated", "id", id)
	return nil
}

// GetLayout loads one layout
func (s *WorkspaceService) GetLayout(ctx context.Context, id string) (*domain.Layout, error) {
	var layout *domain.Layout
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		var err error
		layout, err = repos.Layouts().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return layout, nil
}

// GetLayoutByName loads a session's layout by name
func (s *WorkspaceService) GetLayoutByName(ctx context.Context, sessionID, name string) (*domain.Layout, error) {
	var layout *domain.Layout
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		var err error
		layout, err = repos.Layouts().GetByName(ctx, sessionID, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return layout, nil
}

// ListLayouts returns a session's layouts ordered by name
func (s *WorkspaceService) ListLayouts(ctx context.Context, sessionID string) ([]domain.Layout, error) {
	var layouts []domain.Layout
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		var err error
		layouts, err = repos.Layouts().ListBySession(ctx, sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return layouts, nil
}

// DeleteLayout removes a layout and clears it from its session if active
func (s *WorkspaceService) DeleteLayout(ctx context.Context, id string) (bool, error) {
	var existed bool
	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		layout, err := repos.Layouts().GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if existed, err = repos.Layouts().Delete(ctx, id); err != nil {
			return err
		}
		return s.clearSessionLayout(ctx, repos, layout.SessionID, id)
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete layout: %w", err)
	}
	return existed, nil
}
