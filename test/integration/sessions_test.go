package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tessera/test/integration/harness"
)

func TestSessionsAdd(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "add simple session",
			args:         []string{"sessions", "add", "work"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Session 'work' created with ID")
			},
		},
		{
			name:         "add session with metadata as JSON",
			args:         []string{"sessions", "add", "meta", "--metadata", `{"theme":"dark"}`, "--schema-version", "3", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var session map[string]any
				harness.AssertValidJSON(t, result, &session)
				assert.Equal(t, "meta", session["name"])
				metadata, ok := session["metadata"].(map[string]any)
				require.True(t, ok, "metadata missing: %s", result.Stdout)
				assert.EqualValues(t, 3, metadata["schema_version"])
			},
		},
		{
			name: "duplicate names get distinct IDs",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				addSession(t, env, "twin")
			},
			args:         []string{"sessions", "add", "twin"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				listResult := harness.RunCommand(t, env, "sessions", "list", "--format", "json")
				harness.AssertSuccess(t, listResult)
				var sessions []sessionJSON
				harness.AssertValidJSON(t, listResult, &sessions)
				require.Len(t, sessions, 2)
				assert.NotEqual(t, sessions[0].ID, sessions[1].ID)
			},
		},
		{
			name:         "blank name fails",
			args:         []string{"sessions", "add", "   "},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "invalid name")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertExitCode(t, result, tt.wantExitCode)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestSessionsList(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Total: 0 sessions")

	addSession(t, env, "alpha")
	addSession(t, env, "beta")

	result = harness.RunCommand(t, env, "sessions")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "alpha")
	harness.AssertStdoutContains(t, result, "beta")
	harness.AssertStdoutContains(t, result, "Total: 2 sessions")
}

func TestSessionsView(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := addSession(t, env, "viewed")
	paneID := addPane(t, env, id)

	result := harness.RunCommand(t, env, "sessions", "view", "viewed")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Session: viewed")
	harness.AssertStdoutContains(t, result, "ID: "+id)
	harness.AssertStdoutContains(t, result, paneID)

	result = harness.RunCommand(t, env, "sessions", "view", id, "--format", "json")
	harness.AssertSuccess(t, result)
	var view struct {
		Panes   []paneJSON  `json:"panes"`
		Session sessionJSON `json:"session"`
	}
	harness.AssertValidJSON(t, result, &view)
	assert.Equal(t, id, view.Session.ID)
	assert.Equal(t, []string{paneID}, view.Session.PaneIDs)
	require.Len(t, view.Panes, 1)
	assert.Equal(t, "terminal", view.Panes[0].Kind)
}

func TestSessionsViewUnknown(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "view", "ghost")
	harness.AssertCommandError(t, result, "not found")
}

func TestSessionsViewAmbiguousName(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	addSession(t, env, "same")
	addSession(t, env, "same")

	result := harness.RunCommand(t, env, "sessions", "view", "same")
	harness.AssertCommandError(t, result, "already exists")
}

func TestSessionsRename(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := addSession(t, env, "old")

	result := harness.RunCommand(t, env, "sessions", "rename", "old", "--name", "new")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Session 'old' renamed to 'new'")

	result = harness.RunCommand(t, env, "sessions", "view", id, "--format", "json")
	harness.AssertSuccess(t, result)
	var view struct {
		Session sessionJSON `json:"session"`
	}
	harness.AssertValidJSON(t, result, &view)
	assert.Equal(t, "new", view.Session.Name)

	result = harness.RunCommand(t, env, "sessions", "rename", id, "--name", "")
	harness.AssertFailure(t, result)
}

func TestSessionsTouch(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	addSession(t, env, "touched")

	result := harness.RunCommand(t, env, "sessions", "touch", "touched")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutEmpty(t, result)

	result = harness.RunCommand(t, env, "sessions", "touch", "missing")
	harness.AssertFailure(t, result)
}

func TestSessionsDelCascades(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := addSession(t, env, "doomed")
	paneID := addPane(t, env, id)
	result := harness.RunCommand(t, env, "layouts", "save", id, "main", "--activate")
	harness.AssertSuccess(t, result)
	keeper := addSession(t, env, "keeper")

	result = harness.RunCommand(t, env, "sessions", "del", "-f", "doomed")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Session 'doomed' deleted successfully")

	result = harness.RunCommand(t, env, "sessions", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	var sessions []sessionJSON
	harness.AssertValidJSON(t, result, &sessions)
	require.Len(t, sessions, 1)
	assert.Equal(t, keeper, sessions[0].ID)

	result = harness.RunCommand(t, env, "panes", "del", paneID)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "does not exist")
}

func TestSessionsPersistAcrossRuns(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	addSession(t, env, "durable")

	result := harness.RunCommand(t, env, "sessions", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "durable")
	assert.FileExists(t, env.DBPath())
}

func TestSessionsMemoryMode(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--memory", "sessions", "add", "ephemeral")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "--memory", "sessions", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutNotContains(t, result, "ephemeral")
	assert.NoFileExists(t, env.DBPath())
}

func TestSessionsCustomDBPath(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	dbPath := t.TempDir() + "/custom.db"

	result := harness.RunCommand(t, env, "--db", dbPath, "sessions", "add", "elsewhere")
	harness.AssertSuccess(t, result)
	assert.FileExists(t, dbPath)

	env.SetEnv("TESSERA_DB", dbPath)
	result = harness.RunCommand(t, env, "sessions", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "elsewhere")
}
