package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tessera/internal/domain"
	"tessera/internal/ports"
)

// paneRepository implements ports.PaneRepository using GORM
type paneRepository struct {
	db *gorm.DB
}

var _ ports.PaneRepository = (*paneRepository)(nil)

// Create appends a pane to the end of its session's tab order
func (r *paneRepository) Create(ctx context.Context, pane *domain.Pane) error {
	db := r.db.WithContext(ctx)

	if pane.ID == "" {
		pane.ID = uuid.New().String()
	} else {
		found, err := exists(db, &PaneModel{}, pane.ID)
		if err != nil {
			return fmt.Errorf("failed to check pane: %w", err)
		}
		if found {
			return conflict("pane", pane.ID)
		}
	}

	position, err := nextPosition(db, &PaneModel{}, "session_id = ?", pane.SessionID)
	if err != nil {
		return fmt.Errorf("failed to compute pane position: %w", err)
	}

	now := time.Now().UTC()
	pane.CreatedAt = now
	pane.UpdatedAt = now
	pane.Position = position

	model := domainToPaneModel(*pane)
	if err := db.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create pane: %w", err)
	}
	return nil
}

// GetByID loads one pane
func (r *paneRepository) GetByID(ctx context.Context, id string) (*domain.Pane, error) {
	var model PaneModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("pane", id)
		}
		return nil, fmt.Errorf("failed to get pane: %w", err)
	}
	pane := paneModelToDomain(model)
	return &pane, nil
}

// ListBySession returns a session's panes in tab order
func (r *paneRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.Pane, error) {
	var models []PaneModel
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("position, created_at").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list panes: %w", err)
	}

	result := make([]domain.Pane, len(models))
	for i, m := range models {
		result[i] = paneModelToDomain(m)
	}
	return result, nil
}

// Update replaces a pane's mutable fields. The owning session never changes.
func (r *paneRepository) Update(ctx context.Context, pane domain.Pane) error {
	model := domainToPaneModel(pane)
	res := r.db.WithContext(ctx).Model(&PaneModel{}).
		Where("id = ?", pane.ID).
		Updates(map[string]any{
			"height":        model.Height,
			"kind":          model.Kind,
			"state":         model.State,
			"state_version": model.StateVersion,
			"title":         model.Title,
			"updated_at":    time.Now().UTC(),
			"width":         model.Width,
			"x":             model.X,
			"y":             model.Y,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update pane: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("pane", pane.ID)
	}
	return nil
}

// Delete removes one pane
func (r *paneRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PaneModel{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete pane: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteBySession removes every pane owned by the session
func (r *paneRepository) DeleteBySession(ctx context.Context, sessionID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&PaneModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete session panes: %w", res.Error)
	}
	return res.RowsAffected, nil
}
