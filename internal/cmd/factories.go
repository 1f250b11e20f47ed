package cmd

import (
	"context"
	"time"

	adaptergit "tessera/internal/adapters/git"
	adapterstorage "tessera/internal/adapters/storage"
	"tessera/internal/logging"
	"tessera/internal/services"
)

// ContainerOptions selects the storage backend and status tuning
type ContainerOptions struct {
	Connection       adapterstorage.ConnectionConfig
	GlobalIgnoreFile string // Empty means git's core.excludesFile or the XDG default
	PathScopedLimit  int
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	StatusService    *services.StatusService
	WorkspaceService *services.WorkspaceService

	// Adapters shared by services and commands
	Ignores *adaptergit.IgnoreProvider
	Scanner *adaptergit.Scanner

	// Internal - for cleanup only
	manager *adapterstorage.ConnectionManager
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	manager, err := adapterstorage.NewConnectionManager(opts.Connection)
	if err != nil {
		return nil, err
	}

	globalIgnore := opts.GlobalIgnoreFile
	if globalIgnore == "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		globalIgnore = adaptergit.ResolveGlobalIgnoreFile(ctx)
		cancel()
	}
	logging.Logger.Debug("Global ignore file", "path", globalIgnore)

	ignores := adaptergit.NewIgnoreProvider(adaptergit.IgnoreOptions{
		GlobalFile:         globalIgnore,
		IncludeInfoExclude: true,
	})
	scanner := adaptergit.NewScanner(ignores)

	return &Container{
		Ignores:          ignores,
		Scanner:          scanner,
		StatusService:    services.NewStatusService(scanner, ignores, opts.PathScopedLimit),
		WorkspaceService: services.NewWorkspaceService(manager),
		manager:          manager,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.manager != nil {
		return c.manager.Close()
	}
	return nil
}
