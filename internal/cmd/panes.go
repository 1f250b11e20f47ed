package cmd

import (
	"context"
	"fmt"

	"tessera/internal/domain"
	"tessera/internal/logging"
)

// PanesCmd manages panes
type PanesCmd struct {
	Add  PanesAddCmd  `cmd:"add" help:"Add a pane to a session"`
	Del  PanesDelCmd  `cmd:"del" help:"Remove a pane and prune it from layouts"`
	List PanesListCmd `cmd:"list" help:"List the panes of a session" default:"1"`
	Move PanesMoveCmd `cmd:"move" help:"Change the geometry of a pane"`
}

// PanesListCmd lists the panes of a session in tab order
type PanesListCmd struct {
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Session string `arg:"" help:"Session ID or name"`
}

// Run executes the list command
func (p *PanesListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	session, err := resolveSession(ctx, cli.Container.WorkspaceService, p.Session)
	if err != nil {
		return err
	}
	panes, err := cli.Container.WorkspaceService.ListPanes(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("failed to list panes: %w", err)
	}

	if p.Format == "json" {
		return printJSON(panes)
	}

	w := newTable()
	fmt.Fprintln(w, "#\tID\tKIND\tTITLE\tSIZE\tUPDATED")
	for _, pane := range panes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%dx%d\t%s\n",
			pane.Position,
			pane.ID,
			pane.Kind,
			pane.Title,
			pane.Geometry.Width,
			pane.Geometry.Height,
			formatTime(pane.UpdatedAt))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d panes\n", len(panes))
	return nil
}

// PanesAddCmd adds a pane
type PanesAddCmd struct {
	Format  string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Height  int    `help:"Height in cells" default:"24"`
	Kind    string `help:"Pane kind: terminal, editor or custom-module" default:"terminal" short:"k"`
	Session string `arg:"" help:"Session ID or name"`
	State   string `help:"Opaque state payload stored with the pane"`
	Title   string `help:"Pane title" short:"t"`
	Width   int    `help:"Width in cells" default:"80"`
	X       int    `help:"Column offset" default:"0"`
	Y       int    `help:"Row offset" default:"0"`
}

// Run executes the add command
func (p *PanesAddCmd) Run(cli *CLI) error {
	kind, err := domain.ParsePaneKind(p.Kind)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := resolveSession(ctx, cli.Container.WorkspaceService, p.Session)
	if err != nil {
		return err
	}

	pane, err := cli.Container.WorkspaceService.AddPane(ctx, domain.Pane{
		Geometry:  domain.Geometry{Height: p.Height, Width: p.Width, X: p.X, Y: p.Y},
		Kind:      kind,
		SessionID: session.ID,
		State:     blobFromFlag(p.State, 1),
		Title:     p.Title,
	})
	if err != nil {
		return err
	}
	logging.Logger.Info("Pane added via CLI", "id", pane.ID, "session", session.ID)

	if p.Format == "json" {
		return printJSON(pane)
	}
	fmt.Printf("Pane %s (%s) added to '%s' at position %d\n", pane.ID, pane.Kind, session.Name, pane.Position)
	return nil
}

// PanesMoveCmd updates pane geometry
type PanesMoveCmd struct {
	Height int    `help:"Height in cells" required:""`
	Pane   string `arg:"" help:"Pane ID"`
	Width  int    `help:"Width in cells" required:""`
	X      int    `help:"Column offset"`
	Y      int    `help:"Row offset"`
}

// Run executes the move command
func (p *PanesMoveCmd) Run(cli *CLI) error {
	ctx := context.Background()
	pane, err := cli.Container.WorkspaceService.GetPane(ctx, p.Pane)
	if err != nil {
		return err
	}
	pane.Geometry = domain.Geometry{Height: p.Height, Width: p.Width, X: p.X, Y: p.Y}
	if err := cli.Container.WorkspaceService.UpdatePane(ctx, *pane); err != nil {
		return err
	}
	fmt.Printf("Pane %s resized to %dx%d+%d+%d\n", pane.ID, p.Width, p.Height, p.X, p.Y)
	return nil
}

// PanesDelCmd removes a pane
type PanesDelCmd struct {
	Pane string `arg:"" help:"Pane ID"`
}

// Run executes the del command
func (p *PanesDelCmd) Run(cli *CLI) error {
	removed, err := cli.Container.WorkspaceService.RemovePane(context.Background(), p.Pane)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("Pane %s does not exist\n", p.Pane)
		return nil
	}
	fmt.Printf("Pane %s removed\n", p.Pane)
	return nil
}
