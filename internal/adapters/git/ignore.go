package git

import (
	"context"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"tessera/internal/config"
	"tessera/internal/logging"
	"tessera/internal/ports"
)

// DefaultIgnoreFileName is the per-directory rule file
const DefaultIgnoreFileName = ".gitignore"

// IgnoreOptions configures an IgnoreMatcher
type IgnoreOptions struct {
	FileName           string // Per-directory rule file, defaults to .gitignore
	GlobalFile         string // Process-wide rules, lowest precedence
	IncludeInfoExclude bool   // Also read .git/info/exclude
}

// ignoreRule is one parsed line of a rule file
type ignoreRule struct {
	anchored bool // Pattern is matched against the path relative to the rule file's directory
	dirOnly  bool
	negate   bool
	pattern  string
}

// ruleSet holds the rules declared by one file. base is the slash-separated
// directory the file lives in, "" for the root and for global files.
type ruleSet struct {
	base  string
	rules []ignoreRule
}

// IgnoreMatcher answers ignore queries for one working-tree root. Rule files
// are read lazily and cached per directory until invalidated.
type IgnoreMatcher struct {
	global   []ruleSet
	loaded   bool
	mu       sync.RWMutex
	opts     IgnoreOptions
	root     string
	sets     map[string]ruleSet
	verdicts map[string]bool // Ignored verdicts for directories
}

var _ ports.IgnoreMatcher = (*IgnoreMatcher)(nil)

// NewIgnoreMatcher creates a matcher for root
func NewIgnoreMatcher(root string, opts IgnoreOptions) *IgnoreMatcher {
	if opts.FileName == "" {
		opts.FileName = DefaultIgnoreFileName
	}
	return &IgnoreMatcher{
		opts:     opts,
		root:     root,
		sets:     make(map[string]ruleSet),
		verdicts: make(map[string]bool),
	}
}

// IsIgnored reports whether relPath (relative to the root) is excluded.
// A path inside an ignored directory is always ignored. Missing or unreadable
// rule files count as empty.
func (m *IgnoreMatcher) IsIgnored(relPath string, isDir bool) bool {
	rel := normalizeRel(relPath)
	if rel == "" {
		return false
	}

	parts := strings.Split(rel, "/")
	for i := 1; i < len(parts); i++ {
		if m.dirIgnored(strings.Join(parts[:i], "/")) {
			return true
		}
	}
	if isDir {
		return m.dirIgnored(rel)
	}
	return m.evaluate(rel, false)
}

// Invalidate drops cached rules for the given directories, relative to the
// root. With no arguments every cached file is dropped, global ones included.
func (m *IgnoreMatcher) Invalidate(dirs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(dirs) == 0 {
		m.global = nil
		m.loaded = false
		m.sets = make(map[string]ruleSet)
	}
	for _, d := range dirs {
		delete(m.sets, normalizeRel(d))
	}
	m.verdicts = make(map[string]bool)
}

func (m *IgnoreMatcher) dirIgnored(rel string) bool {
	m.mu.RLock()
	verdict, ok := m.verdicts[rel]
	m.mu.RUnlock()
	if ok {
		return verdict
	}

	verdict = m.evaluate(rel, true)

	m.mu.Lock()
	m.verdicts[rel] = verdict
	m.mu.Unlock()
	return verdict
}

// evaluate applies every rule set visible from rel's parent, lowest
// precedence first. The last matching rule decides.
func (m *IgnoreMatcher) evaluate(rel string, isDir bool) bool {
	dir, name := path.Split(rel)
	dir = strings.TrimSuffix(dir, "/")

	ignored := false
	for _, set := range m.setsFor(dir) {
		for _, r := range set.rules {
			if r.matches(set.base, dir, rel, name, isDir) {
				ignored = !r.negate
			}
		}
	}
	return ignored
}

func (m *IgnoreMatcher) setsFor(dir string) []ruleSet {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		m.loadGlobal()
	}

	sets := append([]ruleSet(nil), m.global...)
	sets = append(sets, m.loadDir(""))
	if dir == "" {
		return sets
	}

	parts := strings.Split(dir, "/")
	for i := 1; i <= len(parts); i++ {
		sets = append(sets, m.loadDir(strings.Join(parts[:i], "/")))
	}
	return sets
}

// loadGlobal reads the global file and the repository exclude file. Callers hold mu.
func (m *IgnoreMatcher) loadGlobal() {
	m.global = nil
	if m.opts.GlobalFile != "" {
		m.global = append(m.global, ruleSet{rules: readRules(config.ExpandPath(m.opts.GlobalFile))})
	}
	if m.opts.IncludeInfoExclude {
		if gitDir, err := resolveGitDir(m.root); err == nil {
			m.global = append(m.global, ruleSet{rules: readRules(filepath.Join(gitDir, "info", "exclude"))})
		}
	}
	m.loaded = true
}

// loadDir returns the cached rules of one directory. Callers hold mu.
func (m *IgnoreMatcher) loadDir(dir string) ruleSet {
	if set, ok := m.sets[dir]; ok {
		return set
	}
	set := ruleSet{
		base:  dir,
		rules: readRules(filepath.Join(m.root, filepath.FromSlash(dir), m.opts.FileName)),
	}
	m.sets[dir] = set
	return set
}

// matches reports whether the rule applies to rel. Unanchored patterns
// match the base name at any depth below the declaring directory, except
// negations, which only reach entries of the declaring directory itself.
func (r ignoreRule) matches(base, dir, rel, name string, isDir bool) bool {
	if r.dirOnly && !isDir {
		return false
	}

	sub := rel
	if base != "" {
		if !strings.HasPrefix(rel, base+"/") {
			return false
		}
		sub = rel[len(base)+1:]
	}

	if r.anchored {
		ok, _ := doublestar.Match(r.pattern, sub)
		return ok
	}
	if r.negate && dir != base {
		return false
	}
	ok, _ := doublestar.Match(r.pattern, name)
	return ok
}

func readRules(file string) []ignoreRule {
	data, err := os.ReadFile(file)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Debug("Ignore file unreadable", "file", file, "error", err)
		}
		return nil
	}
	return parseRules(string(data))
}

// parseRules parses the contents of one rule file
func parseRules(content string) []ignoreRule {
	var rules []ignoreRule
	for _, line := range strings.Split(content, "\n") {
		line = trimTrailingSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var r ignoreRule
		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		// Escaped leading characters are literal; doublestar unescapes them
		if strings.HasSuffix(line, "/") {
			r.dirOnly = true
			line = strings.TrimRight(line, "/")
		}
		if line == "" {
			continue
		}
		if strings.Contains(line, "/") {
			r.anchored = true
			line = strings.TrimPrefix(line, "/")
		}
		r.pattern = line
		rules = append(rules, r)
	}
	return rules
}

// trimTrailingSpace drops trailing spaces unless escaped with a backslash
func trimTrailingSpace(line string) string {
	for strings.HasSuffix(line, " ") && !strings.HasSuffix(line, "\\ ") {
		line = line[:len(line)-1]
	}
	return line
}

func normalizeRel(p string) string {
	p = filepath.ToSlash(p)
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// IgnoreProvider caches one matcher per root
type IgnoreProvider struct {
	matchers map[string]*IgnoreMatcher
	mu       sync.Mutex
	opts     IgnoreOptions
}

var _ ports.IgnoreProvider = (*IgnoreProvider)(nil)

// NewIgnoreProvider creates a provider sharing opts across roots
func NewIgnoreProvider(opts IgnoreOptions) *IgnoreProvider {
	return &IgnoreProvider{
		matchers: make(map[string]*IgnoreMatcher),
		opts:     opts,
	}
}

// ForRoot returns the matcher for root, creating it on first use
func (p *IgnoreProvider) ForRoot(root string) ports.IgnoreMatcher {
	return p.matcher(root)
}

func (p *IgnoreProvider) matcher(root string) *IgnoreMatcher {
	root = filepath.Clean(root)

	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.matchers[root]
	if !ok {
		m = NewIgnoreMatcher(root, p.opts)
		p.matchers[root] = m
	}
	return m
}

// ResolveGlobalIgnoreFile returns git's core.excludesFile when set, else
// the XDG default location
func ResolveGlobalIgnoreFile(ctx context.Context) string {
	cmd := exec.CommandContext(ctx, "git", "config", "--global", "--path", "core.excludesFile")
	output, err := cmd.Output()
	if err == nil {
		if file := strings.TrimSpace(string(output)); file != "" {
			logging.Logger.Debug("Using core.excludesFile", "file", file)
			return file
		}
	}
	return config.GetGlobalIgnorePath()
}
