package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tessera/internal/adapters/editor"
	"tessera/internal/adapters/watcher"
	"tessera/internal/logging"
	"tessera/internal/services"
	"tessera/internal/ui"
)

// BrowseCmd starts the working-tree browser
type BrowseCmd struct {
	Dev             bool `help:"Show version details in the header"`
	ErrorClearDelay int  `help:"Seconds before an error message disappears" default:"10"`
	Ignored         bool `help:"Start with ignored entries visible"`
	NoTips          bool `help:"Do not show a usage tip at startup"`
	NoWatch         bool `help:"Do not watch the working tree for changes"`
}

// Run executes the browse command
func (b *BrowseCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting browser", "root", cli.Root)

	var editorName string
	if cli.settings != nil {
		editorName = cli.settings.Editor
	}

	opts := ui.Options{
		DevMode:         b.Dev,
		Editor:          editor.NewLauncher(editorName),
		ErrorClearDelay: time.Duration(b.ErrorClearDelay) * time.Second,
		Palette:         statusPalette(cli),
		Root:            cli.Root,
		ShowIgnored:     b.Ignored,
		TipsEnabled:     !b.NoTips,
	}
	if cli.settings != nil {
		opts.Keys = cli.settings.Keys
	}

	if !b.NoWatch {
		feed := services.NewChangeFeed(cli.Container.StatusService)
		w, err := watcher.New(cli.Root, feed, cli.watchOptions())
		if err != nil {
			// Browsing still works; refresh is manual
			logging.Logger.Warn("Failed to start watcher", "root", cli.Root, "error", err)
		} else {
			defer w.Close()
			defer feed.Close()
			opts.Feed = feed
		}
	}

	p := tea.NewProgram(ui.NewModel(cli.Container.StatusService, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
