package ports

import "os/exec"

// EditorLauncher builds the command that edits a file in the foreground
type EditorLauncher interface {
	// Command returns an unstarted command; the caller hands it the terminal
	Command(path string) (*exec.Cmd, error)
}
