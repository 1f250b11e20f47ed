package harness

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorPrefix is how main reports a failed command on stderr
const errorPrefix = "Error: "

// exitFailure is the exit code for non-transient command errors
const exitFailure = 1

func describe(result CommandResult) string {
	return fmt.Sprintf("exit %d\nstdout: %s\nstderr: %s", result.ExitCode, result.Stdout, result.Stderr)
}

// AssertSuccess checks for exit code 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "command failed\n%s", describe(result))
}

// AssertFailure checks for any non-zero exit code. Errors raised while the
// CLI is still wiring itself up exit through kong with its own code.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "command succeeded unexpectedly\n%s", describe(result))
}

// AssertExitCode checks for one exact exit code
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode, "%s", describe(result))
}

// AssertCommandError checks that a command failed with a non-transient
// error whose message on stderr contains msg
func AssertCommandError(tb testing.TB, result CommandResult, msg string) {
	tb.Helper()
	assert.Equal(tb, exitFailure, result.ExitCode, "%s", describe(result))
	assert.True(tb, strings.HasPrefix(result.Stderr, errorPrefix) || strings.Contains(result.Stderr, "\n"+errorPrefix),
		"stderr has no %q line\n%s", errorPrefix, describe(result))
	assert.Contains(tb, result.Stderr, msg, "%s", describe(result))
}

// AssertStatusUnavailable checks that a status command degraded instead of
// failing outside a working tree
func AssertStatusUnavailable(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertSuccess(tb, result)
	assert.Contains(tb, result.Stdout, "status unavailable", "%s", describe(result))
}

// AssertStdoutContains checks stdout for a substring
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "%s", describe(result))
}

// AssertStdoutNotContains checks stdout lacks a substring
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "%s", describe(result))
}

// AssertStderrContains checks stderr for a substring
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "%s", describe(result))
}

// AssertStdoutEmpty checks that nothing but whitespace went to stdout
func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout), "%s", describe(result))
}

// AssertValidJSON decodes stdout into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "%s", describe(result))
}

// AssertJSONContains decodes stdout as an object and checks one field
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "field %q\n%s", key, describe(result))
}
