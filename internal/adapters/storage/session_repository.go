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

// sessionRepository implements ports.SessionRepository using GORM
type sessionRepository struct {
	db *gorm.DB
}

var _ ports.SessionRepository = (*sessionRepository)(nil)

// Create inserts a session, assigning an ID when none is supplied
func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	db := r.db.WithContext(ctx)

	if session.ID == "" {
		session.ID = uuid.New().String()
	} else {
		found, err := exists(db, &SessionModel{}, session.ID)
		if err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
		if found {
			return conflict("session", session.ID)
		}
	}

	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	if session.LastActive.IsZero() {
		session.LastActive = session.CreatedAt
	}

	position, err := nextPosition(db, &SessionModel{}, "")
	if err != nil {
		return fmt.Errorf("failed to compute session position: %w", err)
	}

	model := domainToSessionModel(*session)
	model.Position = position
	if err := db.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if session.PaneIDs == nil {
		session.PaneIDs = []string{}
	}
	return nil
}

// GetByID loads a session with its ordered pane identifiers
func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	db := r.db.WithContext(ctx)

	var model SessionModel
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("session", id)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var paneIDs []string
	if err := db.Model(&PaneModel{}).
		Where("session_id = ?", id).
		Order("position, created_at").
		Pluck("id", &paneIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load session panes: %w", err)
	}

	session := sessionModelToDomain(model, paneIDs)
	return &session, nil
}

// List returns all sessions in creation order
func (r *sessionRepository) List(ctx context.Context) ([]domain.Session, error) {
	db := r.db.WithContext(ctx)

	var models []SessionModel
	if err := db.Order("position, created_at").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var panes []PaneModel
	if err := db.Select("id", "session_id").Order("position, created_at").Find(&panes).Error; err != nil {
		return nil, fmt.Errorf("failed to list panes: %w", err)
	}

	paneMap := make(map[string][]string)
	for _, p := range panes {
		paneMap[p.SessionID] = append(paneMap[p.SessionID], p.ID)
	}

	result := make([]domain.Session, len(models))
	for i, m := range models {
		result[i] = sessionModelToDomain(m, paneMap[m.ID])
	}
	return result, nil
}

// Update replaces the mutable fields of a session
func (r *sessionRepository) Update(ctx context.Context, session domain.Session) error {
	model := domainToSessionModel(session)
	res := r.db.WithContext(ctx).Model(&SessionModel{}).
		Where("id = ?", session.ID).
		Updates(map[string]any{
			"last_active":      model.LastActive,
			"layout_id":        model.LayoutID,
			"metadata":         model.Metadata,
			"metadata_version": model.MetadataVersion,
			"name":             model.Name,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("session", session.ID)
	}
	return nil
}

// Touch writes last_active and nothing else
func (r *sessionRepository) Touch(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&SessionModel{}).
		Where("id = ?", id).
		UpdateColumn("last_active", at.UTC())
	if res.Error != nil {
		return fmt.Errorf("failed to touch session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("session", id)
	}
	return nil
}

// Delete removes the session row only; owned rows are the caller's concern
func (r *sessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&SessionModel{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete session: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
