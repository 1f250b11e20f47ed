package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tessera/internal/domain"
	"tessera/internal/logging"
)

// LayoutsCmd manages layouts
type LayoutsCmd struct {
	Activate LayoutsActivateCmd `cmd:"activate" help:"Make a layout the active one for its session"`
	Del      LayoutsDelCmd      `cmd:"del" help:"Delete a layout"`
	List     LayoutsListCmd     `cmd:"list" help:"List the layouts of a session" default:"1"`
	Save     LayoutsSaveCmd     `cmd:"save" help:"Save (or replace by name) a layout"`
	Show     LayoutsShowCmd     `cmd:"show" help:"Print a layout tree"`
}

// LayoutsListCmd lists layouts
type LayoutsListCmd struct {
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Session string `arg:"" help:"Session ID or name"`
}

// Run executes the list command
func (l *LayoutsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	session, err := resolveSession(ctx, cli.Container.WorkspaceService, l.Session)
	if err != nil {
		return err
	}
	layouts, err := cli.Container.WorkspaceService.ListLayouts(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("failed to list layouts: %w", err)
	}

	if l.Format == "json" {
		return printJSON(layouts)
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tACTIVE\tPANES\tUPDATED")
	for _, layout := range layouts {
		active := ""
		if layout.IsActive {
			active = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			layout.ID,
			layout.Name,
			active,
			len(layout.Tree.LeafPaneIDs()),
			formatTime(layout.UpdatedAt))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d layouts\n", len(layouts))
	return nil
}

// LayoutsSaveCmd saves a layout. The tree is either given as JSON or built
// as a single even split over the listed panes.
type LayoutsSaveCmd struct {
	Session  string   `arg:"" help:"Session ID or name"`
	Name     string   `arg:"" help:"Layout name"`
	Activate bool     `help:"Activate the layout after saving"`
	Panes    []string `help:"Pane IDs to arrange (defaults to every pane of the session)" sep:","`
	Split    string   `help:"Split orientation when building from --panes" enum:"horizontal,vertical" default:"vertical"`
	Tree     string   `help:"Layout tree as JSON, e.g. {\"split\":\"vertical\",\"children\":[...],\"ratios\":[0.5,0.5]}"`
}

// Run executes the save command
func (l *LayoutsSaveCmd) Run(cli *CLI) error {
	ctx := context.Background()
	store := cli.Container.WorkspaceService

	session, err := resolveSession(ctx, store, l.Session)
	if err != nil {
		return err
	}

	tree, err := l.buildTree(session)
	if err != nil {
		return err
	}

	layout, err := store.SaveLayout(ctx, domain.Layout{
		IsActive:  l.Activate,
		Name:      l.Name,
		SessionID: session.ID,
		Tree:      tree,
	})
	if err != nil {
		return err
	}
	logging.Logger.Info("Layout saved via CLI", "id", layout.ID, "session", session.ID, "active", layout.IsActive)

	fmt.Printf("Layout '%s' saved with ID %s\n", layout.Name, layout.ID)
	return nil
}

func (l *LayoutsSaveCmd) buildTree(session *domain.Session) (domain.LayoutNode, error) {
	if strings.TrimSpace(l.Tree) != "" {
		var tree domain.LayoutNode
		if err := json.Unmarshal([]byte(l.Tree), &tree); err != nil {
			return domain.LayoutNode{}, fmt.Errorf("failed to parse --tree: %v: %w", err, domain.ErrInvalidLayout)
		}
		return tree, nil
	}

	paneIDs := l.Panes
	if len(paneIDs) == 0 {
		paneIDs = session.PaneIDs
	}
	switch len(paneIDs) {
	case 0:
		return domain.LayoutNode{}, fmt.Errorf("session '%s' has no panes: %w", session.Name, domain.ErrInvalidLayout)
	case 1:
		return domain.Leaf(paneIDs[0]), nil
	}

	leaves := make([]domain.LayoutNode, len(paneIDs))
	for i, id := range paneIDs {
		leaves[i] = domain.Leaf(id)
	}
	return domain.Split(domain.SplitOrientation(l.Split), leaves...), nil
}

// LayoutsShowCmd prints one layout
type LayoutsShowCmd struct {
	Layout string `arg:"" help:"Layout ID"`
}

// Run executes the show command
func (l *LayoutsShowCmd) Run(cli *CLI) error {
	layout, err := cli.Container.WorkspaceService.GetLayout(context.Background(), l.Layout)
	if err != nil {
		return err
	}
	return printJSON(layout)
}

// LayoutsActivateCmd activates a layout
type LayoutsActivateCmd struct {
	Layout string `arg:"" help:"Layout ID"`
}

// Run executes the activate command
func (l *LayoutsActivateCmd) Run(cli *CLI) error {
	if err := cli.Container.WorkspaceService.ActivateLayout(context.Background(), l.Layout); err != nil {
		return err
	}
	fmt.Printf("Layout %s is now active\n", l.Layout)
	return nil
}

// LayoutsDelCmd deletes a layout
type LayoutsDelCmd struct {
	Layout string `arg:"" help:"Layout ID"`
}

// Run executes the del command
func (l *LayoutsDelCmd) Run(cli *CLI) error {
	deleted, err := cli.Container.WorkspaceService.DeleteLayout(context.Background(), l.Layout)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Printf("Layout %s does not exist\n", l.Layout)
		return nil
	}
	fmt.Printf("Layout %s deleted\n", l.Layout)
	return nil
}
