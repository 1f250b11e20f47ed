package cmd

import (
	"context"
	"fmt"

	"tessera/internal/logging"
)

// SessionsRenameCmd updates the name of a session
type SessionsRenameCmd struct {
	Name    string `help:"New name" required:"" name:"name"`
	Session string `arg:"" help:"Session ID or name"`
}

// Run executes the rename command
func (s *SessionsRenameCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing sessions rename command", "session", s.Session, "name", s.Name)

	ctx := context.Background()
	session, err := resolveSession(ctx, cli.Container.WorkspaceService, s.Session)
	if err != nil {
		return fmt.Errorf("session not found: %w", err)
	}

	if err := cli.Container.WorkspaceService.RenameSession(ctx, session.ID, s.Name); err != nil {
		return err
	}

	fmt.Printf("Session '%s' renamed to '%s'\n", session.Name, s.Name)
	return nil
}
