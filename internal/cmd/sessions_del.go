package cmd

import (
	"context"
	"fmt"

	"tessera/internal/domain"
	"tessera/internal/logging"
)

// SessionsDelCmd deletes a session
type SessionsDelCmd struct {
	Force   bool   `help:"Force deletion without confirmation" short:"f"`
	Session string `arg:"" help:"Session ID or name"`
}

// Run executes the del command
func (s *SessionsDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions del command", "session", s.Session, "force", s.Force)

	ctx := context.Background()
	session, err := resolveSession(ctx, cli.Container.WorkspaceService, s.Session)
	if err != nil {
		logging.Logger.Error("Session not found", "session", s.Session, "error", err)
		return fmt.Errorf("session not found: %w", err)
	}

	if !s.Force {
		ok, err := s.confirmDeletion(ctx, cli, session)
		if err != nil || !ok {
			return err
		}
	}

	if _, err := cli.Container.WorkspaceService.DeleteSessionCascade(ctx, session.ID); err != nil {
		return err
	}

	logging.Logger.Info("Session deleted successfully via CLI", "id", session.ID)
	fmt.Printf("Session '%s' deleted successfully\n", session.Name)
	return nil
}

func (s *SessionsDelCmd) confirmDeletion(ctx context.Context, cli *CLI, session *domain.Session) (bool, error) {
	layouts, err := cli.Container.WorkspaceService.ListLayouts(ctx, session.ID)
	if err != nil {
		return false, err
	}
	description := fmt.Sprintf("This also deletes %d panes and %d layouts.", len(session.PaneIDs), len(layouts))
	return confirm(fmt.Sprintf("Delete session '%s'?", session.Name), description, "Delete")
}
