package ui

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tessera/internal/domain"
	"tessera/internal/ports/mocks"
)

func newTestModel(t *testing.T, root string) (*Model, *mocks.MockStatusEngine) {
	t.Helper()
	engine := mocks.NewMockStatusEngine(t)
	m := NewModel(engine, Options{Root: root})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, engine
}

func selected(t *testing.T, m *Model) FileItem {
	t.Helper()
	item, ok := m.list.SelectedItem().(FileItem)
	require.True(t, ok)
	return item
}

func TestModel_ScanResultAnnotatesListing(t *testing.T) {
	root := makeTree(t, "a.go", "pkg/b.go")
	m, _ := newTestModel(t, root)

	m.Update(scanDoneMsg{result: &domain.ScanResult{Records: []domain.FileStatusRecord{
		{Path: "pkg/b.go", Status: domain.StatusModified},
	}}})

	assert.False(t, m.scanning)
	require.Len(t, m.list.Items(), 2)
	assert.Equal(t, "pkg", selected(t, m).Name)
	assert.Equal(t, domain.StatusModified, selected(t, m).Status)
	assert.Contains(t, m.View(), "M:1")
}

func TestModel_NotARepositoryShowsUnavailable(t *testing.T) {
	root := makeTree(t, "a.go")
	m, _ := newTestModel(t, root)

	m.Update(scanDoneMsg{err: domain.ErrNotAVersionControlRoot})

	assert.True(t, m.unavailable)
	assert.Nil(t, m.err)
	assert.Contains(t, m.View(), "status unavailable")
	assert.Len(t, m.list.Items(), 1, "files are still listed")
}

func TestModel_ScanFailureShowsError(t *testing.T) {
	m, _ := newTestModel(t, makeTree(t, "a.go"))

	_, cmd := m.Update(scanDoneMsg{err: domain.ErrIO})

	require.NotNil(t, cmd)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "Error: status scan failed")

	m.Update(clearErrorMsg{})
	assert.Nil(t, m.err)
}

func TestModel_EnterAndLeaveDirectory(t *testing.T) {
	root := makeTree(t, "a.go", "pkg/b.go", "zeta/c.go")
	m, _ := newTestModel(t, root)
	m.Update(scanDoneMsg{result: &domain.ScanResult{}})

	m.list.Select(1)
	require.Equal(t, "zeta", selected(t, m).Name)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "zeta", m.cwd)
	assert.Equal(t, "zeta/c.go", selected(t, m).Path)

	// Without an editor, opening a file is a no-op
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "zeta", m.cwd)

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", m.cwd)
	assert.Equal(t, "zeta", selected(t, m).Name, "selection returns to the directory we left")

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", m.cwd)
}

func TestModel_OpenFileLaunchesEditor(t *testing.T) {
	root := makeTree(t, "a.go")
	engine := mocks.NewMockStatusEngine(t)
	launcher := mocks.NewMockEditorLauncher(t)
	m := NewModel(engine, Options{Editor: launcher, Root: root})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(scanDoneMsg{result: &domain.ScanResult{}})

	file := filepath.Join(root, "a.go")
	launcher.EXPECT().Command(file).Return(exec.Command("true"), nil).Once()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "", m.cwd)

	engine.EXPECT().Invalidate(root, []string{file}).Once()
	engine.EXPECT().ScanAll(mock.Anything, root).Return(&domain.ScanResult{Records: []domain.FileStatusRecord{
		{Path: "a.go", Status: domain.StatusModified},
	}}, nil).Once()

	_, cmd = m.Update(editorClosedMsg{path: file})
	require.NotNil(t, cmd)
	assert.True(t, m.scanning)

	m.Update(cmd())
	assert.False(t, m.scanning)
	assert.Equal(t, domain.StatusModified, selected(t, m).Status)
}

func TestModel_EditorFailureShowsError(t *testing.T) {
	root := makeTree(t, "a.go")
	engine := mocks.NewMockStatusEngine(t)
	launcher := mocks.NewMockEditorLauncher(t)
	m := NewModel(engine, Options{Editor: launcher, Root: root})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(scanDoneMsg{result: &domain.ScanResult{}})

	launcher.EXPECT().Command(mock.Anything).Return(nil, errors.New("no suitable editor found")).Once()

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "no suitable editor found")
}

func TestModel_ToggleFilters(t *testing.T) {
	root := makeTree(t, "a.go", "b.go", "build/x.o")
	m, _ := newTestModel(t, root)
	m.Update(scanDoneMsg{result: &domain.ScanResult{Records: []domain.FileStatusRecord{
		{Path: "b.go", Status: domain.StatusUntracked},
		{Path: "build", IsDir: true, Status: domain.StatusIgnored},
	}}})
	require.Len(t, m.list.Items(), 2)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	assert.Len(t, m.list.Items(), 3)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.Len(t, m.list.Items(), 1)
	assert.Contains(t, m.View(), "changes only")
}

func TestModel_RefreshInvalidatesRoot(t *testing.T) {
	root := makeTree(t, "a.go")
	m, engine := newTestModel(t, root)
	m.Update(scanDoneMsg{result: &domain.ScanResult{}})

	engine.EXPECT().Invalidate(root, []string(nil)).Once()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.NotNil(t, cmd)
	assert.True(t, m.scanning)
}

func TestModel_HelpScreenOpensAndCloses(t *testing.T) {
	m, _ := newTestModel(t, makeTree(t, "a.go"))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "show or hide ignored entries")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateBrowse, m.state)
}

func TestModel_BranchSummaryRendersInHeader(t *testing.T) {
	m, _ := newTestModel(t, makeTree(t, "a.go"))

	m.Update(branchDoneMsg{summary: &domain.BranchSummary{Branch: "feature", Head: "abc123", Upstream: "origin/main", Ahead: 2}})
	view := m.View()
	assert.Contains(t, view, "feature")
	assert.Contains(t, view, "↑2")

	m.Update(branchDoneMsg{err: domain.ErrNotAVersionControlRoot})
	assert.Nil(t, m.branch)
}

func TestTouchesGitDir(t *testing.T) {
	assert.True(t, touchesGitDir(nil))
	assert.True(t, touchesGitDir([]string{"/repo/a.go", "/repo/.git/HEAD"}))
	assert.False(t, touchesGitDir([]string{"/repo/a.go", "/repo/.github/x.yml"}))
}
