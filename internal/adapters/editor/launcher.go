package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"tessera/internal/logging"
)

// Launcher implements ports.EditorLauncher
type Launcher struct {
	editor string
}

// NewLauncher creates a launcher. An empty editor falls back to the
// environment, then to a platform default.
func NewLauncher(editor string) *Launcher {
	return &Launcher{editor: editor}
}

// Command returns the editor command for path
// Priority: configured editor → $TESSERA_EDITOR → $VISUAL → $EDITOR → platform default
func (l *Launcher) Command(path string) (*exec.Cmd, error) {
	if path == "" {
		return nil, fmt.Errorf("no path provided")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("path does not exist: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	name, args := l.resolve()
	if name == "" {
		return nil, fmt.Errorf("no suitable editor found. Set editor in settings.json, $TESSERA_EDITOR, $VISUAL, or $EDITOR")
	}

	logging.Logger.Info("Launching editor", "editor", name, "path", path)
	return exec.Command(name, append(args, path)...), nil
}

// resolve splits the first configured editor into program and arguments,
// so values like "code --wait" work
func (l *Launcher) resolve() (string, []string) {
	for _, candidate := range []string{
		l.editor,
		os.Getenv("TESSERA_EDITOR"),
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
	} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}
	return findPlatformEditor()
}
