package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"tessera/internal/config"
	"tessera/internal/domain"
	"tessera/internal/services"
	"tessera/internal/theme"
)

// statusUnavailable is printed instead of failing when the root is not a
// working tree
const statusUnavailable = "status unavailable"

// StatusCmd shows version-control status
type StatusCmd struct {
	Branch StatusBranchCmd `cmd:"branch" help:"Show the current branch and upstream divergence"`
	Dirty  StatusDirtyCmd  `cmd:"dirty" help:"Exit 1 when the working tree has uncommitted changes"`
	File   StatusFileCmd   `cmd:"file" help:"Show the status of one path"`
	Scan   StatusScanCmd   `cmd:"scan" help:"List every non-clean path" default:"1"`
}

// StatusScanCmd lists non-clean paths
type StatusScanCmd struct {
	Format  string `help:"Output format: table, json or summary" enum:"table,json,summary" default:"table"`
	Ignored bool   `help:"Include ignored paths"`
}

// Run executes the scan command
func (s *StatusScanCmd) Run(cli *CLI) error {
	result, err := cli.Container.StatusService.ScanAll(context.Background(), cli.Root)
	if services.StatusUnavailable(err) {
		fmt.Println(statusUnavailable)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to scan working tree: %w", err)
	}

	records := make([]domain.FileStatusRecord, 0, len(result.Records))
	for _, rec := range result.Records {
		if rec.Status == domain.StatusIgnored && !s.Ignored {
			continue
		}
		records = append(records, rec)
	}

	switch s.Format {
	case "json":
		filtered := *result
		filtered.Records = records
		return printJSON(filtered)
	case "summary":
		printSummary(result.Counts())
		return nil
	}

	palette := statusPalette(cli)
	w := newTable()
	for _, rec := range records {
		name := rec.Path
		if rec.IsDir {
			name += "/"
		}
		if rec.OrigPath != "" {
			name = fmt.Sprintf("%s -> %s", rec.OrigPath, name)
		}
		if rec.Err != nil {
			name = fmt.Sprintf("%s (%v)", name, rec.Err)
		}
		fmt.Fprintf(w, "%s\t%s\n", colorize(palette, rec.Status, rec.Status.Symbol()), name)
	}
	w.Flush()

	if result.Truncated {
		fmt.Println("\n(scan incomplete)")
	}
	return nil
}

// printSummary prints counts as "M:3 ?:1", strongest status first
func printSummary(counts map[domain.FileStatus]int) {
	statuses := make([]domain.FileStatus, 0, len(counts))
	for st := range counts {
		if st.IsChange() {
			statuses = append(statuses, st)
		}
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Precedes(statuses[j])
	})
	for i, st := range statuses {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s:%d", st.Symbol(), counts[st])
	}
	fmt.Println()
}

// StatusFileCmd shows one path
type StatusFileCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Path   string `arg:"" help:"Path, relative to the root or absolute"`
}

// Run executes the file command
func (s *StatusFileCmd) Run(cli *CLI) error {
	rec, err := cli.Container.StatusService.ScanOne(context.Background(), cli.Root, s.Path)
	if services.StatusUnavailable(err) {
		fmt.Println(statusUnavailable)
		return nil
	}
	if err != nil {
		return err
	}
	if s.Format == "json" {
		return printJSON(rec)
	}
	fmt.Printf("%s\t%s\n", rec.Status, rec.Path)
	return nil
}

// StatusBranchCmd shows branch info
type StatusBranchCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

// Run executes the branch command
func (s *StatusBranchCmd) Run(cli *CLI) error {
	summary, err := cli.Container.StatusService.BranchSummary(context.Background(), cli.Root)
	if services.StatusUnavailable(err) {
		fmt.Println(statusUnavailable)
		return nil
	}
	if err != nil {
		return err
	}
	if s.Format == "json" {
		return printJSON(summary)
	}

	if summary.Detached {
		fmt.Printf("HEAD detached at %s\n", summary.Head)
		return nil
	}
	fmt.Printf("%s (%s)", summary.Branch, summary.Head)
	if summary.Upstream != "" {
		fmt.Printf(" -> %s ↑%d ↓%d", summary.Upstream, summary.Ahead, summary.Behind)
	}
	fmt.Println()
	return nil
}

// StatusDirtyCmd reports uncommitted changes through the exit code
type StatusDirtyCmd struct {
	Quiet bool `help:"Print nothing" short:"q"`
}

// Run executes the dirty command
func (s *StatusDirtyCmd) Run(cli *CLI) error {
	dirty, err := cli.Container.StatusService.HasUncommittedChanges(context.Background(), cli.Root)
	if services.StatusUnavailable(err) {
		if !s.Quiet {
			fmt.Println(statusUnavailable)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if !dirty {
		if !s.Quiet {
			fmt.Println("clean")
		}
		return nil
	}
	if !s.Quiet {
		fmt.Println("dirty")
	}
	cli.Close()
	os.Exit(1)
	return nil
}

func statusPalette(cli *CLI) *config.StatusPalette {
	if cli.settings != nil && len(cli.settings.StatusColors) > 0 {
		return config.NewStatusPalette(strings.Join(cli.settings.StatusColors, ","))
	}
	return config.NewStatusPalette("")
}

func colorize(palette *config.StatusPalette, status domain.FileStatus, text string) string {
	return theme.StatusStyle(palette.GetColor(status)).Render(text)
}
