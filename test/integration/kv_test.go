package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tessera/test/integration/harness"
)

func TestKVSetGet(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "kv", "set", "editor", "font", "mono-12")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "editor/font = 7 bytes")

	result = harness.RunCommand(t, env, "kv", "get", "editor", "font")
	harness.AssertSuccess(t, result)
	assert.Equal(t, "mono-12", result.Stdout, "raw output carries no trailing newline")

	// Last write wins
	harness.AssertSuccess(t, harness.RunCommand(t, env, "kv", "set", "editor", "font", "serif-14", "--schema-version", "2"))

	result = harness.RunCommand(t, env, "kv", "get", "editor", "font", "--format", "json")
	harness.AssertSuccess(t, result)
	var entry struct {
		Key       string `json:"key"`
		Namespace string `json:"namespace"`
		Value     struct {
			Data          []byte `json:"data"`
			SchemaVersion int    `json:"schema_version"`
		} `json:"value"`
	}
	harness.AssertValidJSON(t, result, &entry)
	assert.Equal(t, "serif-14", string(entry.Value.Data))
	assert.Equal(t, 2, entry.Value.SchemaVersion)
}

func TestKVSetFromStdin(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.SetStdin("line one\nline two\n")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "kv", "set", "notes", "today", "-"))

	env.SetStdin("")
	result := harness.RunCommand(t, env, "kv", "get", "notes", "today")
	harness.AssertSuccess(t, result)
	assert.Equal(t, "line one\nline two\n", result.Stdout)
}

func TestKVGetMissing(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "kv", "get", "ns", "missing")
	harness.AssertCommandError(t, result, "not found")
}

func TestKVNamespacesAreIsolated(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "kv", "set", "a", "shared", "from-a"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "kv", "set", "b", "shared", "from-b"))

	result := harness.RunCommand(t, env, "kv", "get", "a", "shared")
	harness.AssertSuccess(t, result)
	assert.Equal(t, "from-a", result.Stdout)

	result = harness.RunCommand(t, env, "kv", "get", "b", "shared")
	harness.AssertSuccess(t, result)
	assert.Equal(t, "from-b", result.Stdout)
}

func TestKVListWithPrefix(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	for _, key := range []string{"recent/1", "recent/2", "pinned/1"} {
		harness.AssertSuccess(t, harness.RunCommand(t, env, "kv", "set", "files", key, "x"))
	}

	result := harness.RunCommand(t, env, "kv", "list", "files", "--prefix", "recent/", "--format", "json")
	harness.AssertSuccess(t, result)
	var entries []struct {
		Key string `json:"key"`
	}
	harness.AssertValidJSON(t, result, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, "recent/1", entries[0].Key)
	assert.Equal(t, "recent/2", entries[1].Key)

	result = harness.RunCommand(t, env, "kv", "list", "files")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "pinned/1")
	harness.AssertStdoutContains(t, result, "Total: 3 entries")
}

func TestKVDelAndClear(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	for _, key := range []string{"a", "b", "c"} {
		harness.AssertSuccess(t, harness.RunCommand(t, env, "kv", "set", "ns", key, "v"))
	}
	harness.AssertSuccess(t, harness.RunCommand(t, env, "kv", "set", "keep", "a", "v"))

	result := harness.RunCommand(t, env, "kv", "del", "ns", "a")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "ns/a deleted")

	result = harness.RunCommand(t, env, "kv", "del", "ns", "a")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "ns/a does not exist")

	result = harness.RunCommand(t, env, "kv", "clear", "ns", "-f")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Deleted 2 entries from 'ns'")

	result = harness.RunCommand(t, env, "kv", "list", "keep")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Total: 1 entries")
}

func TestKVRejectsEmptyKey(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "kv", "set", "ns", "", "v")
	harness.AssertCommandError(t, result, "invalid name")
}
