package ui

import (
	"fmt"

	"tessera/internal/domain"
	"tessera/internal/theme"
)

// VersionInfo holds version information for display in the header.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Workspace state and working-tree status",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, optional version details and the branch line
func renderHeader(devMode bool, root string, branch *domain.BranchSummary) string {
	line := theme.AppNameStyle.Render("Tessera")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s", versionInfo.Version, commit, versionInfo.GoVersion))
	}
	line += "  " + theme.PathStyle.Render(root)

	return line + "\n" + renderBranch(branch) + "\n"
}

func renderBranch(branch *domain.BranchSummary) string {
	if branch == nil {
		return theme.BranchStyle.Render(" ")
	}
	if branch.Detached {
		return theme.BranchStyle.Render("HEAD detached at " + branch.Head)
	}
	s := theme.BranchStyle.Render("⎇ " + branch.Branch)
	if branch.Upstream != "" {
		s += theme.BranchStyle.Render(" → "+branch.Upstream+" ") +
			theme.AheadStyle.Render(fmt.Sprintf("↑%d", branch.Ahead)) + " " +
			theme.BehindStyle.Render(fmt.Sprintf("↓%d", branch.Behind))
	}
	return s
}
