package services

import (
	"context"
	"fmt"

	"tessera/internal/domain"
	"tessera/internal/ports"
)

func validateKey(namespace, key string) error {
	if namespace == "" || key == "" {
		return fmt.Errorf("namespace and key are required: %w", domain.ErrInvalidName)
	}
	return nil
}

// SetValue stores a value, replacing any previous one
func (s *WorkspaceService) SetValue(ctx context.Context, namespace, key string, value domain.Blob) (*domain.KVEntry, error) {
	if err := validateKey(namespace, key); err != nil {
		return nil, err
	}

	entry := &domain.KVEntry{Key: key, Namespace: namespace, Value: value}
	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		return repos.KeyValues().Set(ctx, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set value: %w", err)
	}
	return entry, nil
}

// GetValue loads one value
func (s *WorkspaceService) GetValue(ctx context.Context, namespace, key string) (*domain.KVEntry, error) {
	var entry *domain.KVEntry
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		var err error
		entry, err = repos.KeyValues().Get(ctx, namespace, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteValue removes one value
func (s *WorkspaceService) DeleteValue(ctx context.Context, namespace, key string) (bool, error) {
	var existed bool
	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		var err error
		existed, err = repos.KeyValues().Delete(ctx, namespace, key)
		return err
	})
	return existed, err
}

// ListValues returns a namespace's entries ordered by key
func (s *WorkspaceService) ListValues(ctx context.Context, namespace, prefix string) ([]domain.KVEntry, error) {
	var entries []domain.KVEntry
	err := s.uow.WithReader(ctx, func(repos ports.Repositories) error {
		var err error
		entries, err = repos.KeyValues().ListByNamespace(ctx, namespace, prefix)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ClearNamespace removes every entry of a namespace
func (s *WorkspaceService) ClearNamespace(ctx context.Context, namespace string) (int64, error) {
	var removed int64
	err := s.uow.WithTransaction(ctx, func(repos ports.Repositories) error {
		var err error
		removed, err = repos.KeyValues().DeleteByNamespace(ctx, namespace)
		return err
	})
	return removed, err
}
