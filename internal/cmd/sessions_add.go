package cmd

import (
	"context"
	"fmt"

	"tessera/internal/logging"
)

// SessionsAddCmd adds a new session
type SessionsAddCmd struct {
	Format        string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Metadata      string `help:"Opaque metadata payload stored with the session"`
	Name          string `arg:"" help:"Display name of the session"`
	SchemaVersion int    `help:"Schema version tag of the metadata payload" default:"1"`
}

// Run executes the add command
func (s *SessionsAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions add command", "name", s.Name)

	session, err := cli.Container.WorkspaceService.CreateSession(context.Background(), s.Name, blobFromFlag(s.Metadata, s.SchemaVersion))
	if err != nil {
		return err
	}

	if s.Format == "json" {
		return printJSON(session)
	}
	fmt.Printf("Session '%s' created with ID %s\n", session.Name, session.ID)
	return nil
}
