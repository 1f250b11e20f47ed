package cmd

import (
	"context"
	"fmt"

	"tessera/internal/domain"
)

// ModulesCmd manages the module registry
type ModulesCmd struct {
	Add     ModulesAddCmd     `cmd:"add" help:"Register a module"`
	Del     ModulesDelCmd     `cmd:"del" help:"Unregister a module"`
	Disable ModulesDisableCmd `cmd:"disable" help:"Disable a module"`
	Enable  ModulesEnableCmd  `cmd:"enable" help:"Enable a module"`
	List    ModulesListCmd    `cmd:"list" help:"List registered modules" default:"1"`
	Upgrade ModulesUpgradeCmd `cmd:"upgrade" help:"Change the version or config of a module"`
}

// ModulesListCmd lists modules
type ModulesListCmd struct {
	Enabled bool   `help:"Only show enabled modules"`
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (m *ModulesListCmd) Run(cli *CLI) error {
	modules, err := cli.Container.WorkspaceService.ListModules(context.Background(), m.Enabled)
	if err != nil {
		return fmt.Errorf("failed to list modules: %w", err)
	}

	if m.Format == "json" {
		return printJSON(modules)
	}

	w := newTable()
	fmt.Fprintln(w, "NAME\tKIND\tVERSION\tENABLED\tINSTALLED")
	for _, mod := range modules {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n",
			mod.Name, mod.Kind, mod.Version, mod.Enabled, formatTime(mod.InstalledAt))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d modules\n", len(modules))
	return nil
}

// ModulesAddCmd registers a module
type ModulesAddCmd struct {
	Config   string `help:"Opaque module configuration payload"`
	Disabled bool   `help:"Register without enabling"`
	Kind     string `help:"Module kind" default:"custom"`
	Name     string `arg:"" help:"Unique module name"`
	Version  string `help:"Module version" default:"0.0.0"`
}

// Run executes the add command
func (m *ModulesAddCmd) Run(cli *CLI) error {
	mod, err := cli.Container.WorkspaceService.RegisterModule(context.Background(), domain.Module{
		Config:  blobFromFlag(m.Config, 1),
		Enabled: !m.Disabled,
		Kind:    m.Kind,
		Name:    m.Name,
		Version: m.Version,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Module '%s' %s registered with ID %s\n", mod.Name, mod.Version, mod.ID)
	return nil
}

// ModulesUpgradeCmd updates version and config
type ModulesUpgradeCmd struct {
	Config  string `help:"Replace the module configuration payload"`
	Name    string `arg:"" help:"Module name"`
	Version string `help:"New version" required:""`
}

// Run executes the upgrade command
func (m *ModulesUpgradeCmd) Run(cli *CLI) error {
	ctx := context.Background()
	mod, err := cli.Container.WorkspaceService.GetModule(ctx, m.Name)
	if err != nil {
		return err
	}
	mod.Version = m.Version
	if m.Config != "" {
		mod.Config = blobFromFlag(m.Config, mod.Config.SchemaVersion+1)
	}
	if err := cli.Container.WorkspaceService.UpdateModule(ctx, *mod); err != nil {
		return err
	}
	fmt.Printf("Module '%s' upgraded to %s\n", mod.Name, mod.Version)
	return nil
}

// ModulesEnableCmd enables a module
type ModulesEnableCmd struct {
	Name string `arg:"" help:"Module name"`
}

// Run executes the enable command
func (m *ModulesEnableCmd) Run(cli *CLI) error {
	return setModuleEnabled(cli, m.Name, true)
}

// ModulesDisableCmd disables a module
type ModulesDisableCmd struct {
	Name string `arg:"" help:"Module name"`
}

// Run executes the disable command
func (m *ModulesDisableCmd) Run(cli *CLI) error {
	return setModuleEnabled(cli, m.Name, false)
}

func setModuleEnabled(cli *CLI, name string, enabled bool) error {
	if err := cli.Container.WorkspaceService.SetModuleEnabled(context.Background(), name, enabled); err != nil {
		return err
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Printf("Module '%s' %s\n", name, state)
	return nil
}

// ModulesDelCmd unregisters a module
type ModulesDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	Name  string `arg:"" help:"Module name"`
}

// Run executes the del command
func (m *ModulesDelCmd) Run(cli *CLI) error {
	if !m.Force {
		ok, err := confirm(fmt.Sprintf("Unregister module '%s'?", m.Name), "Its configuration is discarded.", "Unregister")
		if err != nil || !ok {
			return err
		}
	}
	removed, err := cli.Container.WorkspaceService.UnregisterModule(context.Background(), m.Name)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("Module '%s' is not registered\n", m.Name)
		return nil
	}
	fmt.Printf("Module '%s' unregistered\n", m.Name)
	return nil
}
