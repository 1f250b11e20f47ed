package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandPriority(t *testing.T) {
	file := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name     string
		editor   string
		env      map[string]string
		wantArgs []string
	}{
		{
			name:     "configured editor wins",
			editor:   "micro",
			env:      map[string]string{"TESSERA_EDITOR": "hx", "VISUAL": "vim", "EDITOR": "nano"},
			wantArgs: []string{"micro", file},
		},
		{
			name:     "TESSERA_EDITOR before VISUAL",
			env:      map[string]string{"TESSERA_EDITOR": "hx", "VISUAL": "vim", "EDITOR": "nano"},
			wantArgs: []string{"hx", file},
		},
		{
			name:     "VISUAL before EDITOR",
			env:      map[string]string{"TESSERA_EDITOR": "", "VISUAL": "vim", "EDITOR": "nano"},
			wantArgs: []string{"vim", file},
		},
		{
			name:     "EDITOR with arguments",
			env:      map[string]string{"TESSERA_EDITOR": "", "VISUAL": "", "EDITOR": "code --wait"},
			wantArgs: []string{"code", "--wait", file},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cmd, err := NewLauncher(tt.editor).Command(file)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestCommandRejectsMissingAndDirectories(t *testing.T) {
	t.Setenv("TESSERA_EDITOR", "vi")
	dir := t.TempDir()

	_, err := NewLauncher("").Command(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = NewLauncher("").Command(dir)
	assert.ErrorContains(t, err, "is a directory")

	_, err = NewLauncher("").Command("")
	assert.Error(t, err)
}
