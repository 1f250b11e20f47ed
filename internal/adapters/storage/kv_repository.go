package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tessera/internal/domain"
	"tessera/internal/ports"
)

// keyValueRepository implements ports.KeyValueRepository using GORM
type keyValueRepository struct {
	db *gorm.DB
}

var _ ports.KeyValueRepository = (*keyValueRepository)(nil)

// Get loads one entry
func (r *keyValueRepository) Get(ctx context.Context, namespace, key string) (*domain.KVEntry, error) {
	var model KeyValueModel
	if err := r.db.WithContext(ctx).
		Where("namespace = ? AND key = ?", namespace, key).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("key", namespace+"/"+key)
		}
		return nil, fmt.Errorf("failed to get value: %w", err)
	}
	entry := keyValueModelToDomain(model)
	return &entry, nil
}

// Set upserts an entry. The original created_at survives overwrites.
func (r *keyValueRepository) Set(ctx context.Context, entry *domain.KVEntry) error {
	now := time.Now().UTC()
	model := KeyValueModel{
		CreatedAt:    now,
		Key:          entry.Key,
		Namespace:    entry.Namespace,
		UpdatedAt:    now,
		Value:        entry.Value.Data,
		ValueVersion: entry.Value.SchemaVersion,
	}

	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "value_version", "updated_at"}),
	}).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	stored, err := r.Get(ctx, entry.Namespace, entry.Key)
	if err != nil {
		return err
	}
	*entry = *stored
	return nil
}

// Delete removes one entry
func (r *keyValueRepository) Delete(ctx context.Context, namespace, key string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("namespace = ? AND key = ?", namespace, key).
		Delete(&KeyValueModel{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete value: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListByNamespace returns a namespace's entries ordered by key, optionally
// restricted to keys starting with prefix
func (r *keyValueRepository) ListByNamespace(ctx context.Context, namespace, prefix string) ([]domain.KVEntry, error) {
	query := r.db.WithContext(ctx).Where("namespace = ?", namespace)
	if prefix != "" {
		query = query.Where(`key LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%")
	}

	var models []KeyValueModel
	if err := query.Order("key").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list values: %w", err)
	}

	result := make([]domain.KVEntry, len(models))
	for i, m := range models {
		result[i] = keyValueModelToDomain(m)
	}
	return result, nil
}

// DeleteByNamespace removes every entry of the namespace
func (r *keyValueRepository) DeleteByNamespace(ctx context.Context, namespace string) (int64, error) {
	res := r.db.WithContext(ctx).Where("namespace = ?", namespace).Delete(&KeyValueModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear namespace: %w", res.Error)
	}
	return res.RowsAffected, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
