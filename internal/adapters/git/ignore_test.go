package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates files under root; keys are slash-separated paths
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

func TestIgnoreMatcher_NegationStaysInItsDirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{".gitignore": "*.log\n!important.log\n"})
	m := NewIgnoreMatcher(root, IgnoreOptions{})

	assert.True(t, m.IsIgnored("a.log", false))
	assert.False(t, m.IsIgnored("important.log", false))
	assert.True(t, m.IsIgnored("sub/important.log", false))
	assert.True(t, m.IsIgnored("sub/deep/b.log", false))
	assert.False(t, m.IsIgnored("notes.txt", false))
}

func TestIgnoreMatcher_NegationRedeclaredInSubdirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".gitignore":     "*.log\n",
		"sub/.gitignore": "!important.log\n",
	})
	m := NewIgnoreMatcher(root, IgnoreOptions{})

	assert.False(t, m.IsIgnored("sub/important.log", false))
	assert.True(t, m.IsIgnored("important.log", false))
}

func TestIgnoreMatcher_Anchored(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{".gitignore": "/root-only.txt\ndocs/*.md\n"})
	m := NewIgnoreMatcher(root, IgnoreOptions{})

	assert.True(t, m.IsIgnored("root-only.txt", false))
	assert.False(t, m.IsIgnored("sub/root-only.txt", false))
	assert.True(t, m.IsIgnored("docs/readme.md", false))
	assert.False(t, m.IsIgnored("docs/nested/readme.md", false))
	assert.False(t, m.IsIgnored("other/docs/readme.md", false))
}

func TestIgnoreMatcher_DirectoryOnly(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{".gitignore": "build/\n"})
	m := NewIgnoreMatcher(root, IgnoreOptions{})

	assert.True(t, m.IsIgnored("build", true))
	assert.False(t, m.IsIgnored("build", false))
	assert.True(t, m.IsIgnored("build/out.bin", false))
	assert.True(t, m.IsIgnored("pkg/build/out.bin", false))
}

func TestIgnoreMatcher_NegationCannotEscapeIgnoredDirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".gitignore":      "vendor/\n",
		"vendor/.gitignore": "!keep.go\n",
	})
	m := NewIgnoreMatcher(root, IgnoreOptions{})

	assert.True(t, m.IsIgnored("vendor/keep.go", false))
}

func TestIgnoreMatcher_DoubleStar(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{".gitignore": "**/tmp\nlogs/**/*.txt\n"})
	m := NewIgnoreMatcher(root, IgnoreOptions{})

	assert.True(t, m.IsIgnored("tmp", true))
	assert.True(t, m.IsIgnored("a/b/tmp", true))
	assert.True(t, m.IsIgnored("logs/x.txt", false))
	assert.True(t, m.IsIgnored("logs/2024/01/x.txt", false))
	assert.False(t, m.IsIgnored("logs/x.json", false))
}

func TestIgnoreMatcher_CommentsBlanksAndEscapes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{".gitignore": "# comment\n\n\\#hash\n\\!bang\ntrailing.txt   \n"})
	m := NewIgnoreMatcher(root, IgnoreOptions{})

	assert.False(t, m.IsIgnored("# comment", false))
	assert.True(t, m.IsIgnored("#hash", false))
	assert.True(t, m.IsIgnored("!bang", false))
	assert.True(t, m.IsIgnored("trailing.txt", false))
}

func TestIgnoreMatcher_GlobalFileHasLowestPrecedence(t *testing.T) {
	root := t.TempDir()
	global := filepath.Join(t.TempDir(), "ignore")
	require.NoError(t, os.WriteFile(global, []byte("*.swp\n*.env\n"), 0644))
	writeFiles(t, root, map[string]string{".gitignore": "!local.env\n"})

	m := NewIgnoreMatcher(root, IgnoreOptions{GlobalFile: global})

	assert.True(t, m.IsIgnored("x.swp", false))
	assert.True(t, m.IsIgnored("prod.env", false))
	assert.False(t, m.IsIgnored("local.env", false))
}

func TestIgnoreMatcher_InfoExclude(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{".git/info/exclude": "secret.txt\n"})

	withExclude := NewIgnoreMatcher(root, IgnoreOptions{IncludeInfoExclude: true})
	assert.True(t, withExclude.IsIgnored("secret.txt", false))

	without := NewIgnoreMatcher(root, IgnoreOptions{})
	assert.False(t, without.IsIgnored("secret.txt", false))
}

func TestIgnoreMatcher_MissingFilesMeanNoRules(t *testing.T) {
	m := NewIgnoreMatcher(filepath.Join(t.TempDir(), "absent"), IgnoreOptions{GlobalFile: "/does/not/exist"})

	assert.False(t, m.IsIgnored("anything.go", false))
	assert.False(t, m.IsIgnored("", true))
}

func TestIgnoreMatcher_Invalidate(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"sub/.gitignore": "*.o\n"})
	m := NewIgnoreMatcher(root, IgnoreOptions{})

	assert.True(t, m.IsIgnored("sub/a.o", false))

	writeFiles(t, root, map[string]string{"sub/.gitignore": "*.a\n"})
	assert.True(t, m.IsIgnored("sub/a.o", false), "rules stay cached until invalidated")

	m.Invalidate("sub")
	assert.False(t, m.IsIgnored("sub/a.o", false))
	assert.True(t, m.IsIgnored("sub/a.a", false))
}

func TestParseRules(t *testing.T) {
	rules := parseRules("/bin/\n!*.keep\na/b\n  \n#x\n")

	require.Len(t, rules, 3)
	assert.Equal(t, ignoreRule{anchored: true, dirOnly: true, pattern: "bin"}, rules[0])
	assert.Equal(t, ignoreRule{negate: true, pattern: "*.keep"}, rules[1])
	assert.Equal(t, ignoreRule{anchored: true, pattern: "a/b"}, rules[2])
}

func TestIgnoreProvider_CachesPerRoot(t *testing.T) {
	p := NewIgnoreProvider(IgnoreOptions{})
	a := t.TempDir()

	assert.Same(t, p.ForRoot(a), p.ForRoot(a+string(filepath.Separator)))
	assert.NotSame(t, p.ForRoot(a), p.ForRoot(t.TempDir()))
}
