package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own TESSERA_HOME.
type TestEnvironment struct {
	TesseraHome string
	WorkDir     string // Working directory of spawned commands; empty means inherit
	extraEnv    map[string]string
	stdin       string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp TESSERA_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		TesseraHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out TESSERA_* variables and sets:
//   - TESSERA_HOME to the temp directory
//   - TESSERA_DEBUG to empty string (disables debug logging)
//
// XDG_CONFIG_HOME also points inside the temp directory so a developer's
// global git ignore file never leaks into status results.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := map[string]bool{
		"TESSERA_HOME":    true,
		"TESSERA_DEBUG":   true,
		"XDG_CONFIG_HOME": true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "TESSERA_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"TESSERA_HOME="+e.TesseraHome,
		"TESSERA_DEBUG=",
		"XDG_CONFIG_HOME="+filepath.Join(e.TesseraHome, "xdg"),
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.TesseraHome, "state.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.TesseraHome, "settings.json")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// SetStdin feeds input to the next commands run in this environment.
func (e *TestEnvironment) SetStdin(input string) {
	e.stdin = input
}

// WriteSettings writes raw settings.json content.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}
