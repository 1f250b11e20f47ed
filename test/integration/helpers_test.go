package integration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tessera/test/integration/harness"
)

type sessionJSON struct {
	ID       string   `json:"id"`
	LayoutID *string  `json:"layout_id"`
	Name     string   `json:"name"`
	PaneIDs  []string `json:"pane_ids"`
}

type paneJSON struct {
	Geometry struct {
		Height int `json:"height"`
		Width  int `json:"width"`
		X      int `json:"x"`
		Y      int `json:"y"`
	} `json:"geometry"`
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Position  int    `json:"position"`
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
}

type layoutJSON struct {
	ID       string         `json:"id"`
	IsActive bool           `json:"is_active"`
	Name     string         `json:"name"`
	Tree     map[string]any `json:"tree"`
}

// addSession creates a session and returns its ID
func addSession(t *testing.T, env *harness.TestEnvironment, name string) string {
	t.Helper()
	result := harness.RunCommand(t, env, "sessions", "add", name, "--format", "json")
	harness.AssertSuccess(t, result)

	var session sessionJSON
	harness.AssertValidJSON(t, result, &session)
	require.NotEmpty(t, session.ID)
	return session.ID
}

// addPane adds a terminal pane to a session and returns its ID
func addPane(t *testing.T, env *harness.TestEnvironment, session string) string {
	t.Helper()
	result := harness.RunCommand(t, env, "panes", "add", session, "--format", "json")
	harness.AssertSuccess(t, result)

	var pane paneJSON
	harness.AssertValidJSON(t, result, &pane)
	require.NotEmpty(t, pane.ID)
	return pane.ID
}

func listLayouts(t *testing.T, env *harness.TestEnvironment, session string) []layoutJSON {
	t.Helper()
	result := harness.RunCommand(t, env, "layouts", "list", session, "--format", "json")
	harness.AssertSuccess(t, result)

	var layouts []layoutJSON
	harness.AssertValidJSON(t, result, &layouts)
	return layouts
}
