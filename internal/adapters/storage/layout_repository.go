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

// layoutRepository implements ports.LayoutRepository using GORM
type layoutRepository struct {
	db *gorm.DB
}

var _ ports.LayoutRepository = (*layoutRepository)(nil)

// Create inserts a layout. Names are unique within a session.
func (r *layoutRepository) Create(ctx context.Context, layout *domain.Layout) error {
	db := r.db.WithContext(ctx)

	if layout.ID == "" {
		layout.ID = uuid.New().String()
	} else {
		found, err := exists(db, &LayoutModel{}, layout.ID)
		if err != nil {
			return fmt.Errorf("failed to check layout: %w", err)
		}
		if found {
			return conflict("layout", layout.ID)
		}
	}

	var sameName int64
	if err := db.Model(&LayoutModel{}).
		Where("session_id = ? AND name = ?", layout.SessionID, layout.Name).
		Count(&sameName).Error; err != nil {
		return fmt.Errorf("failed to check layout name: %w", err)
	}
	if sameName > 0 {
		return conflict("layout", layout.Name)
	}

	now := time.Now().UTC()
	layout.CreatedAt = now
	layout.UpdatedAt = now

	model := domainToLayoutModel(*layout)
	if err := db.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create layout: %w", err)
	}
	return nil
}

// GetByID loads one layout
func (r *layoutRepository) GetByID(ctx context.Context, id string) (*domain.Layout, error) {
	return r.first(ctx, id, "id = ?", id)
}

// GetByName loads a session's layout by name
func (r *layoutRepository) GetByName(ctx context.Context, sessionID, name string) (*domain.Layout, error) {
	return r.first(ctx, name, "session_id = ? AND name = ?", sessionID, name)
}

func (r *layoutRepository) first(ctx context.Context, label string, query string, args ...any) (*domain.Layout, error) {
	var model LayoutModel
	if err := r.db.WithContext(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("layout", label)
		}
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}
	layout := layoutModelToDomain(model)
	return &layout, nil
}

// ListBySession returns a session's layouts ordered by name
func (r *layoutRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.Layout, error) {
	var models []LayoutModel
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("name").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}

	result := make([]domain.Layout, len(models))
	for i, m := range models {
		result[i] = layoutModelToDomain(m)
	}
	return result, nil
}

// Update replaces the name, tree and active flag of a layout
func (r *layoutRepository) Update(ctx context.Context, layout domain.Layout) error {
	model := domainToLayoutModel(layout)
	res := r.db.WithContext(ctx).Model(&LayoutModel{ID: layout.ID}).
		Select("name", "tree", "is_active", "updated_at").
		Updates(&LayoutModel{
			IsActive:  model.IsActive,
			Name:      model.Name,
			Tree:      model.Tree,
			UpdatedAt: time.Now().UTC(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update layout: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("layout", layout.ID)
	}
	return nil
}

// SetActive marks one layout active and clears the flag on its siblings
func (r *layoutRepository) SetActive(ctx context.Context, sessionID, layoutID string) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&LayoutModel{}).
		Where("id = ? AND session_id = ?", layoutID, sessionID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check layout: %w", err)
	}
	if count == 0 {
		return notFound("layout", layoutID)
	}

	if err := db.Model(&LayoutModel{}).
		Where("session_id = ?", sessionID).
		UpdateColumn("is_active", gorm.Expr("id = ?", layoutID)).Error; err != nil {
		return fmt.Errorf("failed to activate layout: %w", err)
	}
	return nil
}

// Delete removes one layout
func (r *layoutRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&LayoutModel{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete layout: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteBySession removes every layout of the session
func (r *layoutRepository) DeleteBySession(ctx context.Context, sessionID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&LayoutModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete session layouts: %w", res.Error)
	}
	return res.RowsAffected, nil
}
