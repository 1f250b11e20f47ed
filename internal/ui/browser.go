package ui

import (
	"context"
	"fmt"
	"math/rand"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tessera/internal/config"
	"tessera/internal/domain"
	"tessera/internal/logging"
	"tessera/internal/ports"
	"tessera/internal/services"
	"tessera/internal/theme"
)

const (
	headerLines = 3 // App line, branch line, directory line
	footerLines = 3 // Error line and help bar
	scanTimeout = 30 * time.Second
)

// StatusColors picks the annotation color of a status
type StatusColors interface {
	GetColor(status domain.FileStatus) string
}

// Options configures the browser
type Options struct {
	DevMode         bool
	Editor          ports.EditorLauncher // Optional; opening a file is a no-op without it
	ErrorClearDelay time.Duration
	Feed            *services.ChangeFeed // Optional; refreshes the view on watcher batches
	Keys            config.KeyBindingsConfig
	Palette         StatusColors
	Root            string
	ShowIgnored     bool
	TipsEnabled     bool
}

type uiState int

const (
	stateBrowse uiState = iota
	stateHelp
)

// Model is the working-tree browser
type Model struct {
	branch          *domain.BranchSummary
	changesOnly     bool
	cwd             string // Slash-separated, relative to root; empty at the root
	devMode         bool
	editor          ports.EditorLauncher
	engine          ports.StatusEngine
	err             error
	errorClearDelay time.Duration
	feed            *services.ChangeFeed
	help            help.Model
	helpScreen      *HelpScreen
	height          int
	keys            KeyMap
	list            list.Model
	palette         StatusColors
	result          *domain.ScanResult
	root            string
	scanning        bool
	showIgnored     bool
	spinner         spinner.Model
	state           uiState
	tip             *Tip
	unavailable     bool
	width           int
}

// NewModel creates the browser for one root
func NewModel(engine ports.StatusEngine, opts Options) *Model {
	if opts.ErrorClearDelay <= 0 {
		opts.ErrorClearDelay = 10 * time.Second
	}
	if opts.Palette == nil {
		opts.Palette = config.NewStatusPalette("")
	}

	keys := NewKeyMap(opts.Keys)

	// Initial height is replaced on the first WindowSizeMsg
	l := list.New(nil, FileDelegate{palette: opts.Palette}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.KeyMap.CursorUp = keys.Navigation.Up.Binding
	l.KeyMap.CursorDown = keys.Navigation.Down.Binding
	l.KeyMap.Filter = keys.Navigation.Filter.Binding
	l.KeyMap.ClearFilter = keys.Navigation.ClearFilter.Binding
	// Arrow keys and h/l belong to directory navigation
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("pgdown"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("pgup"))
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = theme.SpinnerStyle

	var tip *Tip
	if all := GetTips(); opts.TipsEnabled && len(all) > 0 {
		tip = &all[rand.Intn(len(all))]
	}

	return &Model{
		devMode:         opts.DevMode,
		editor:          opts.Editor,
		engine:          engine,
		errorClearDelay: opts.ErrorClearDelay,
		feed:            opts.Feed,
		help:            help.New(),
		keys:            keys,
		list:            l,
		palette:         opts.Palette,
		root:            opts.Root,
		scanning:        true,
		showIgnored:     opts.ShowIgnored,
		spinner:         s,
		state:           stateBrowse,
		tip:             tip,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.rebuild(), m.scanCmd(), m.branchCmd(), m.waitForChange(), m.spinner.Tick)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.setSize(size.Width, size.Height)
	}
	if m.state == stateHelp {
		return m.updateHelp(msg)
	}

	switch msg := msg.(type) {
	case scanDoneMsg:
		m.scanning = false
		switch {
		case services.StatusUnavailable(msg.err):
			m.unavailable = true
			m.result = nil
		case msg.err != nil:
			return m, m.setError(fmt.Errorf("status scan failed: %w", msg.err))
		default:
			m.unavailable = false
			m.result = msg.result
		}
		return m, m.rebuild()

	case branchDoneMsg:
		if msg.err != nil {
			logging.Logger.Debug("Branch summary unavailable", "root", m.root, "error", msg.err)
			m.branch = nil
			return m, nil
		}
		m.branch = msg.summary
		return m, nil

	case treeChangedMsg:
		m.scanning = true
		cmds := []tea.Cmd{m.scanCmd(), m.waitForChange()}
		if touchesGitDir(msg.paths) {
			cmds = append(cmds, m.branchCmd())
		}
		return m, tea.Batch(cmds...)

	case editorClosedMsg:
		m.scanning = true
		cmd := m.rescanCmd([]string{msg.path})
		if msg.err != nil {
			return m, tea.Batch(cmd, m.setError(fmt.Errorf("editor exited: %w", msg.err)))
		}
		return m, cmd

	case clearErrorMsg:
		m.err = nil
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Application.ForceQuit.Binding, m.keys.Application.Quit.Binding):
		return tea.Quit, true

	case key.Matches(msg, m.keys.Application.Help.Binding):
		m.helpScreen = NewHelpScreen(&m.keys, m.palette)
		m.state = stateHelp
		_, cmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - headerLines})
		return cmd, true

	case key.Matches(msg, m.keys.Application.Refresh.Binding):
		m.engine.Invalidate(m.root, nil)
		m.scanning = true
		return tea.Batch(m.scanCmd(), m.branchCmd()), true

	case key.Matches(msg, m.keys.Navigation.Open.Binding):
		item, ok := m.list.SelectedItem().(FileItem)
		if !ok {
			return nil, true
		}
		if !item.IsDir {
			return m.editCmd(item), true
		}
		m.cwd = item.Path
		m.list.ResetFilter()
		cmd := m.rebuild()
		m.list.Select(0)
		return cmd, true

	case key.Matches(msg, m.keys.Navigation.Parent.Binding):
		if m.cwd == "" {
			return nil, true
		}
		from := m.cwd
		m.cwd = path.Dir(m.cwd)
		if m.cwd == "." {
			m.cwd = ""
		}
		m.list.ResetFilter()
		cmd := m.rebuild()
		m.selectPath(from)
		return cmd, true

	case key.Matches(msg, m.keys.View.ChangesOnly.Binding):
		m.changesOnly = !m.changesOnly
		return m.rebuild(), true

	case key.Matches(msg, m.keys.View.ToggleIgnored.Binding):
		m.showIgnored = !m.showIgnored
		return m.rebuild(), true
	}
	return nil, false
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		msg = tea.WindowSizeMsg{Width: size.Width, Height: size.Height - headerLines}
	}
	_, cmd := m.helpScreen.Update(msg)
	if m.helpScreen.Completed {
		m.helpScreen = nil
		m.state = stateBrowse
	}
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	s := renderHeader(m.devMode, m.root, m.branch)

	if m.state == stateHelp && m.helpScreen != nil {
		return s + "\n" + m.helpScreen.View()
	}

	s += m.renderLocation() + "\n"

	if len(m.list.Items()) == 0 {
		s += theme.HelpLabelStyle.Render("Nothing to show here.") + "\n"
	} else {
		s += m.list.View() + "\n"
	}

	// Keep the footer pinned to the bottom
	if want := m.height - footerLines; want > 0 {
		if got := lipgloss.Height(s); got < want {
			s += strings.Repeat("\n", want-got)
		}
	}

	switch {
	case m.err != nil:
		s += theme.ErrorStyle.Render(formatErrorForDisplay(m.err, m.width)) + "\n"
	case m.tip != nil:
		s += RenderTip(*m.tip) + "\n"
	default:
		s += "\n"
	}
	s += m.help.ShortHelpView(m.keys.ShortHelp())
	return s
}

// renderLocation renders the current directory with status counts
func (m *Model) renderLocation() string {
	s := theme.PathStyle.Render("/" + m.cwd)

	switch {
	case m.unavailable:
		s += "  " + theme.HelpLabelStyle.Render("status unavailable")
	case m.result != nil:
		if counts := renderCounts(m.result, m.palette); counts != "" {
			s += "  " + counts
		}
		if m.result.Truncated {
			s += "  " + theme.HelpLabelStyle.Render("(scan incomplete)")
		}
	}

	var flags []string
	if m.changesOnly {
		flags = append(flags, "changes only")
	}
	if m.showIgnored {
		flags = append(flags, "showing ignored")
	}
	if len(flags) > 0 {
		s += "  " + theme.HelpLabelStyle.Render("["+strings.Join(flags, ", ")+"]")
	}

	if m.scanning {
		s += " " + m.spinner.View()
	}
	return s
}

// renderCounts renders "M:3 ?:1" with the strongest status first
func renderCounts(result *domain.ScanResult, palette StatusColors) string {
	counts := result.Counts()
	statuses := make([]domain.FileStatus, 0, len(counts))
	for st := range counts {
		if st.IsChange() {
			statuses = append(statuses, st)
		}
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Precedes(statuses[j])
	})

	parts := make([]string, len(statuses))
	for i, st := range statuses {
		parts[i] = theme.StatusStyle(palette.GetColor(st)).Render(fmt.Sprintf("%s:%d", st.Symbol(), counts[st]))
	}
	return strings.Join(parts, " ")
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	listHeight := height - headerLines - footerLines - 1
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(width, listHeight)
	m.help.Width = width
}

func (m *Model) setError(err error) tea.Cmd {
	logging.Logger.Warn("Browser error", "error", err)
	m.err = err
	m.tip = nil
	return tea.Tick(m.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// rebuild reloads the current directory listing
func (m *Model) rebuild() tea.Cmd {
	items, err := buildItems(m.root, m.cwd, m.result, listOptions{
		changesOnly: m.changesOnly,
		showIgnored: m.showIgnored,
	})
	if err != nil {
		return m.setError(fmt.Errorf("failed to read /%s: %w", m.cwd, err))
	}

	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}
	return m.list.SetItems(listItems)
}

func (m *Model) selectPath(p string) {
	for i, item := range m.list.Items() {
		if fi, ok := item.(FileItem); ok && fi.Path == p {
			m.list.Select(i)
			return
		}
	}
	m.list.Select(0)
}

func (m *Model) scanCmd() tea.Cmd {
	engine, root := m.engine, m.root
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()
		result, err := engine.ScanAll(ctx, root)
		return scanDoneMsg{err: err, result: result}
	}
}

// rescanCmd merges the given paths into the cached snapshot, then rescans
func (m *Model) rescanCmd(paths []string) tea.Cmd {
	engine, root := m.engine, m.root
	return func() tea.Msg {
		engine.Invalidate(root, paths)
		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()
		result, err := engine.ScanAll(ctx, root)
		return scanDoneMsg{err: err, result: result}
	}
}

// editCmd hands the terminal to the editor for one file
func (m *Model) editCmd(item FileItem) tea.Cmd {
	if m.editor == nil || item.Status == domain.StatusDeleted {
		return nil
	}
	p := filepath.Join(m.root, filepath.FromSlash(item.Path))
	cmd, err := m.editor.Command(p)
	if err != nil {
		return m.setError(err)
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorClosedMsg{err: err, path: p}
	})
}

func (m *Model) branchCmd() tea.Cmd {
	engine, root := m.engine, m.root
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()
		summary, err := engine.BranchSummary(ctx, root)
		return branchDoneMsg{err: err, summary: summary}
	}
}

// waitForChange blocks on the change feed and reports one coalesced batch
func (m *Model) waitForChange() tea.Cmd {
	if m.feed == nil {
		return nil
	}
	feed := m.feed
	return func() tea.Msg {
		if _, ok := <-feed.C(); !ok {
			return nil
		}
		return treeChangedMsg{paths: feed.Drain()}
	}
}

// touchesGitDir reports whether a batch may have moved HEAD or the index
func touchesGitDir(paths []string) bool {
	if paths == nil {
		return true
	}
	for _, p := range paths {
		p = filepath.ToSlash(p)
		if strings.Contains(p, "/.git/") || strings.HasSuffix(p, "/.git") {
			return true
		}
	}
	return false
}
