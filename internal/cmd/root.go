package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"tessera/internal/adapters/storage"
	"tessera/internal/adapters/watcher"
	"tessera/internal/config"
	"tessera/internal/domain"
	"tessera/internal/logging"
)

// storeCommands need durable workspace state; the rest only read status
var storeCommands = map[string]bool{
	"kv":       true,
	"layouts":  true,
	"modules":  true,
	"panes":    true,
	"sessions": true,
}

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DB          string           `help:"Path to the workspace database (overrides $TESSERA_DB)" name:"db"`
	Memory      bool             `help:"Keep workspace state in memory only; nothing is written to disk"`
	Root        string           `help:"Working-tree root for status commands" default:"." type:"path"`

	Browse   BrowseCmd   `cmd:"" help:"Browse the working tree with status annotations (default)" default:"1"`
	KV       KVCmd       `cmd:"kv" help:"Manage namespaced key/value entries"`
	Layouts  LayoutsCmd  `cmd:"layouts" help:"Manage saved pane layouts"`
	Modules  ModulesCmd  `cmd:"modules" help:"Manage installed modules"`
	Panes    PanesCmd    `cmd:"panes" help:"Manage panes of a session"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage sessions (list, view, add, del)"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, keys)"`
	Status   StatusCmd   `cmd:"status" help:"Show version-control status of the working tree"`
	Watch    WatchCmd    `cmd:"watch" help:"Watch the working tree and print status changes"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("TESSERA_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TESSERA_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (git, editors) append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TESSERA_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TESSERA_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("TESSERA_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container opens the store, whose GORM logger needs logging ready
	opts := c.containerOptions()
	container, err := NewContainer(opts)
	if err != nil && domain.IsFatalStorage(err) && opts.Connection.Mode == storage.ModeFile && !needsStore(kctx.Command()) {
		logging.Logger.Warn("Workspace database unusable, using in-memory store", "path", opts.Connection.Path, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: workspace database unusable (%v); continuing without it\n", err)
		opts.Connection = storage.MemoryConnectionConfig()
		container, err = NewContainer(opts)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// containerOptions resolves storage and status settings from flags, env
// vars and settings.json
func (c *CLI) containerOptions() ContainerOptions {
	settings := c.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	conn := storage.DefaultConnectionConfig()
	switch {
	case c.DB != "":
		conn.Path = c.DB
	case os.Getenv("TESSERA_DB") != "":
		conn.Path = os.Getenv("TESSERA_DB")
	case settings.DBPath != "":
		conn.Path = settings.DBPath
	}
	if c.Memory || settings.StorageMode == string(storage.ModeMemory) {
		conn.Mode = storage.ModeMemory
		conn.WAL = false
	}
	if settings.AcquireTimeoutMs != nil {
		conn.AcquireTimeout = time.Duration(*settings.AcquireTimeoutMs) * time.Millisecond
	}
	if settings.BusyTimeoutMs != nil {
		conn.BusyTimeout = time.Duration(*settings.BusyTimeoutMs) * time.Millisecond
	}
	if settings.MaxReaders != nil {
		conn.MaxReaders = *settings.MaxReaders
	}
	if settings.WAL != nil && conn.Mode == storage.ModeFile {
		conn.WAL = *settings.WAL
	}

	opts := ContainerOptions{
		Connection:       conn,
		GlobalIgnoreFile: settings.GlobalIgnoreFile,
	}
	if settings.PathScopedLimit != nil {
		opts.PathScopedLimit = *settings.PathScopedLimit
	}
	return opts
}

// needsStore reports whether a kong command path like "sessions add <name>"
// reads or writes workspace state
func needsStore(command string) bool {
	fields := strings.Fields(command)
	return len(fields) > 0 && storeCommands[fields[0]]
}

// watchOptions resolves watcher tuning from settings.json
func (c *CLI) watchOptions() watcher.Options {
	opts := watcher.Options{Debounce: watcher.DefaultDebounce}
	if c.settings == nil {
		return opts
	}
	if c.settings.WatchDebounceMs != nil && *c.settings.WatchDebounceMs > 0 {
		opts.Debounce = time.Duration(*c.settings.WatchDebounceMs) * time.Millisecond
	}
	opts.Exclude = c.settings.WatchExclude
	return opts
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
