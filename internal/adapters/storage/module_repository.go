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

// moduleRepository implements ports.ModuleRepository using GORM
type moduleRepository struct {
	db *gorm.DB
}

var _ ports.ModuleRepository = (*moduleRepository)(nil)

// Create registers a module. Both the ID and the name must be unused.
func (r *moduleRepository) Create(ctx context.Context, module *domain.Module) error {
	db := r.db.WithContext(ctx)

	if module.ID == "" {
		module.ID = uuid.New().String()
	} else {
		found, err := exists(db, &ModuleModel{}, module.ID)
		if err != nil {
			return fmt.Errorf("failed to check module: %w", err)
		}
		if found {
			return conflict("module", module.ID)
		}
	}

	var sameName int64
	if err := db.Model(&ModuleModel{}).Where("name = ?", module.Name).Count(&sameName).Error; err != nil {
		return fmt.Errorf("failed to check module name: %w", err)
	}
	if sameName > 0 {
		return conflict("module", module.Name)
	}

	now := time.Now().UTC()
	module.InstalledAt = now
	module.UpdatedAt = now

	model := domainToModuleModel(*module)
	// Select every column so a false Enabled is written rather than defaulted
	if err := db.Select("*").Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create module: %w", err)
	}
	return nil
}

// GetByID loads one module
func (r *moduleRepository) GetByID(ctx context.Context, id string) (*domain.Module, error) {
	return r.first(ctx, id, "id = ?", id)
}

// GetByName loads a module by its unique name
func (r *moduleRepository) GetByName(ctx context.Context, name string) (*domain.Module, error) {
	return r.first(ctx, name, "name = ?", name)
}

func (r *moduleRepository) first(ctx context.Context, label, query string, args ...any) (*domain.Module, error) {
	var model ModuleModel
	if err := r.db.WithContext(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("module", label)
		}
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	module := moduleModelToDomain(model)
	return &module, nil
}

// List returns all modules ordered by name
func (r *moduleRepository) List(ctx context.Context) ([]domain.Module, error) {
	return r.list(r.db.WithContext(ctx))
}

// ListEnabled returns enabled modules ordered by name
func (r *moduleRepository) ListEnabled(ctx context.Context) ([]domain.Module, error) {
	return r.list(r.db.WithContext(ctx).Where("enabled = ?", true))
}

func (r *moduleRepository) list(query *gorm.DB) ([]domain.Module, error) {
	var models []ModuleModel
	if err := query.Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	result := make([]domain.Module, len(models))
	for i, m := range models {
		result[i] = moduleModelToDomain(m)
	}
	return result, nil
}

// Update replaces a module's mutable fields
func (r *moduleRepository) Update(ctx context.Context, module domain.Module) error {
	model := domainToModuleModel(module)
	res := r.db.WithContext(ctx).Model(&ModuleModel{}).
		Where("id = ?", module.ID).
		Updates(map[string]any{
			"config":         model.Config,
			"config_version": model.ConfigVersion,
			"enabled":        model.Enabled,
			"kind":           model.Kind,
			"name":           model.Name,
			"updated_at":     time.Now().UTC(),
			"version":        model.Version,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update module: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("module", module.ID)
	}
	return nil
}

// Delete removes one module
func (r *moduleRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ModuleModel{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete module: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
