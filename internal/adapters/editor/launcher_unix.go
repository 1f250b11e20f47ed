//go:build !windows

package editor

import "os/exec"

var defaultEditors = []string{
	"nano",
	"vim",
	"vi",
}

func findPlatformEditor() (string, []string) {
	for _, editor := range defaultEditors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor, nil
		}
	}
	return "", nil
}
