package cmd

import (
	"context"
	"fmt"

	"tessera/internal/domain"
	"tessera/internal/logging"
)

// SessionsCmd manages sessions
type SessionsCmd struct {
	Add    SessionsAddCmd    `cmd:"add" help:"Add a new session"`
	Del    SessionsDelCmd    `cmd:"del" help:"Delete a session with its panes and layouts"`
	List   SessionsListCmd   `cmd:"list" help:"List all sessions" default:"1"`
	Rename SessionsRenameCmd `cmd:"rename" help:"Rename a session"`
	Touch  SessionsTouchCmd  `cmd:"touch" help:"Mark a session as active now"`
	View   SessionsViewCmd   `cmd:"view" help:"View a specific session"`
}

// SessionsListCmd lists all sessions
type SessionsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	sessions, err := cli.Container.WorkspaceService.ListSessions(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if s.Format == "json" {
		return printJSON(sessions)
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tPANES\tLAYOUT\tLAST ACTIVE\tCREATED")
	for _, sess := range sessions {
		layout := ""
		if sess.LayoutID != nil {
			layout = *sess.LayoutID
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			sess.ID,
			sess.Name,
			len(sess.PaneIDs),
			layout,
			formatTime(sess.LastActive),
			formatTime(sess.CreatedAt))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d sessions\n", len(sessions))
	return nil
}

// SessionsTouchCmd bumps a session's last-active timestamp
type SessionsTouchCmd struct {
	Session string `arg:"" help:"Session ID or name"`
}

// Run executes the touch command
func (s *SessionsTouchCmd) Run(cli *CLI) error {
	ctx := context.Background()
	session, err := resolveSession(ctx, cli.Container.WorkspaceService, s.Session)
	if err != nil {
		return err
	}
	if err := cli.Container.WorkspaceService.TouchSessionActivity(ctx, session.ID); err != nil {
		return err
	}
	logging.Logger.Debug("Session touched via CLI", "id", session.ID)
	return nil
}

// SessionsViewCmd views a specific session
type SessionsViewCmd struct {
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Session string `arg:"" help:"Session ID or name"`
}

// sessionView is the JSON shape of `sessions view`
type sessionView struct {
	Layouts []domain.Layout `json:"layouts"`
	Panes   []domain.Pane   `json:"panes"`
	Session *domain.Session `json:"session"`
}

// Run executes the view command
func (s *SessionsViewCmd) Run(cli *CLI) error {
	ctx := context.Background()
	store := cli.Container.WorkspaceService

	session, err := resolveSession(ctx, store, s.Session)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	panes, err := store.ListPanes(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("failed to list panes: %w", err)
	}
	layouts, err := store.ListLayouts(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("failed to list layouts: %w", err)
	}

	if s.Format == "json" {
		return printJSON(sessionView{Layouts: layouts, Panes: panes, Session: session})
	}

	fmt.Printf("Session: %s\n", session.Name)
	fmt.Printf("ID: %s\n", session.ID)
	fmt.Printf("Created: %s\n", formatTime(session.CreatedAt))
	fmt.Printf("Last Active: %s\n", formatTime(session.LastActive))
	if !session.Metadata.IsEmpty() {
		fmt.Printf("Metadata: %d bytes (schema v%d)\n", len(session.Metadata.Data), session.Metadata.SchemaVersion)
	}

	fmt.Printf("\nPanes:\n")
	w := newTable()
	fmt.Fprintln(w, "  #\tID\tKIND\tTITLE\tGEOMETRY")
	for _, p := range panes {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%dx%d+%d+%d\n",
			p.Position, p.ID, p.Kind, p.Title,
			p.Geometry.Width, p.Geometry.Height, p.Geometry.X, p.Geometry.Y)
	}
	w.Flush()

	fmt.Printf("\nLayouts:\n")
	for _, l := range layouts {
		active := ""
		if l.IsActive {
			active = " (active)"
		}
		fmt.Printf("  %s  %s%s  %d panes\n", l.ID, l.Name, active, len(l.Tree.LeafPaneIDs()))
	}
	return nil
}
