package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
)

// KVCmd manages namespaced key/value entries
type KVCmd struct {
	Clear KVClearCmd `cmd:"clear" help:"Delete every entry of a namespace"`
	Del   KVDelCmd   `cmd:"del" help:"Delete an entry"`
	Get   KVGetCmd   `cmd:"get" help:"Print the value of an entry"`
	List  KVListCmd  `cmd:"list" help:"List the entries of a namespace" default:"1"`
	Set   KVSetCmd   `cmd:"set" help:"Write an entry (last write wins)"`
}

// KVGetCmd prints a value
type KVGetCmd struct {
	Namespace string `arg:"" help:"Namespace"`
	Key       string `arg:"" help:"Key"`
	Format    string `help:"Output format: raw or json" enum:"raw,json" default:"raw"`
}

// Run executes the get command
func (k *KVGetCmd) Run(cli *CLI) error {
	entry, err := cli.Container.WorkspaceService.GetValue(context.Background(), k.Namespace, k.Key)
	if err != nil {
		return err
	}
	if k.Format == "json" {
		return printJSON(entry)
	}
	_, err = os.Stdout.Write(entry.Value.Data)
	return err
}

// KVSetCmd writes a value
type KVSetCmd struct {
	Namespace     string `arg:"" help:"Namespace"`
	Key           string `arg:"" help:"Key"`
	Value         string `arg:"" help:"Value, or - to read it from stdin"`
	SchemaVersion int    `help:"Schema version tag of the value" default:"1"`
}

// Run executes the set command
func (k *KVSetCmd) Run(cli *CLI) error {
	data := []byte(k.Value)
	if k.Value == "-" {
		var err error
		if data, err = io.ReadAll(os.Stdin); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	entry, err := cli.Container.WorkspaceService.SetValue(context.Background(), k.Namespace, k.Key, blobFromFlag(string(data), k.SchemaVersion))
	if err != nil {
		return err
	}
	fmt.Printf("%s/%s = %d bytes\n", entry.Namespace, entry.Key, len(entry.Value.Data))
	return nil
}

// KVDelCmd deletes a value
type KVDelCmd struct {
	Namespace string `arg:"" help:"Namespace"`
	Key       string `arg:"" help:"Key"`
}

// Run executes the del command
func (k *KVDelCmd) Run(cli *CLI) error {
	deleted, err := cli.Container.WorkspaceService.DeleteValue(context.Background(), k.Namespace, k.Key)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Printf("%s/%s does not exist\n", k.Namespace, k.Key)
		return nil
	}
	fmt.Printf("%s/%s deleted\n", k.Namespace, k.Key)
	return nil
}

// KVListCmd lists a namespace
type KVListCmd struct {
	Format    string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Namespace string `arg:"" help:"Namespace"`
	Prefix    string `help:"Only keys starting with this prefix" short:"p"`
}

// Run executes the list command
func (k *KVListCmd) Run(cli *CLI) error {
	entries, err := cli.Container.WorkspaceService.ListValues(context.Background(), k.Namespace, k.Prefix)
	if err != nil {
		return fmt.Errorf("failed to list values: %w", err)
	}

	if k.Format == "json" {
		return printJSON(entries)
	}

	w := newTable()
	fmt.Fprintln(w, "KEY\tSIZE\tSCHEMA\tUPDATED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", e.Key, len(e.Value.Data), e.Value.SchemaVersion, formatTime(e.UpdatedAt))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d entries\n", len(entries))
	return nil
}

// KVClearCmd clears a namespace
type KVClearCmd struct {
	Force     bool   `help:"Clear without confirmation" short:"f"`
	Namespace string `arg:"" help:"Namespace"`
}

// Run executes the clear command
func (k *KVClearCmd) Run(cli *CLI) error {
	if !k.Force {
		ok, err := confirm(fmt.Sprintf("Clear namespace '%s'?", k.Namespace), "Every entry in it is deleted.", "Clear")
		if err != nil || !ok {
			return err
		}
	}
	n, err := cli.Container.WorkspaceService.ClearNamespace(context.Background(), k.Namespace)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d entries from '%s'\n", n, k.Namespace)
	return nil
}
