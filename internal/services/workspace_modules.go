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

// RegisterModule adds a module descriptor. Names are unique.
func (s *WorkspaceService) RegisterModule(ctx context.Context, module domain.Module) (*domain.Module, error) {
	module.Name = strings.TrimSpace(module.Name)
	if module.Name == "" {
		return nil, fmt.Errorf("module name is empty: %w", domain.ErrInvalidName)
	}

	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		return repos.Modules().Create(ctx, &module)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register module: %w", err)
	}

	logging.Logger.Info("Module registered", "id", module.ID, "name", module.Name, "version", module.Version)
	return &module, nil
}

// GetModule loads a module by name
func (s *WorkspaceService) GetModule(ctx context.Context, name string) (*domain.Module, error) {
	var module *domain.Module
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		var err error
		module, err = repos.Modules().GetByName(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return module, nil
}

// ListModules returns modules ordered by name
func (s *WorkspaceService) ListModules(ctx context.Context, enabledOnly bool) ([]domain.Module, error) {
	var modules []domain.Module
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		var err error
		if enabledOnly {
			modules, err = repos.Modules().ListEnabled(ctx)
		} else {
			modules, err = repos.Modules().List(ctx)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return modules, nil
}

// SetModuleEnabled flips a module's enabled flag
func (s *WorkspaceService) SetModuleEnabled(ctx context.Context, name string, enabled bool) error {
	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		module, err := repos.Modules().GetByName(ctx, name)
		if err != nil {
			return err
		}
		module.Enabled = enabled
		return repos.Modules().Update(ctx, *module)
	})
	if err != nil {
		return fmt.Errorf("failed to update module: %w", err)
	}
	logging.Logger.Info("Module toggled", "name", name, "enabled", enabled)
	return nil
}

// UpdateModule replaces a module's mutable fields, matched by ID
func (s *WorkspaceService) UpdateModule(ctx context.Context, module domain.Module) error {
	return s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		return repos.Modules().Update(ctx, module)
	})
}

// UnregisterModule removes a module by name
func (s *WorkspaceService) UnregisterModule(ctx context.Context, name string) (bool, error) {
	var existed bool
	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		module, err := repos.Modules().GetByName(ctx, name)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		existed, err = repos.Modules().Delete(ctx, module.ID)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to unregister module: %w", err)
	}
	return existed, nil
}
