package main

import (
	"github.com/lerenn/project-init/pkg/console"
	"github.com/spf13/cobra"
)

var force bool

func createConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pinit configuration",
	}
	configCmd.AddCommand(createConfigInitCmd())
	return configCmd
}

func createConfigInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration to the config path (--config, or .pinit.yaml ` +
			`in the working directory). An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager := newConfigManager()
			if err := manager.InitConfig(force); err != nil {
				return err
			}
			if !quiet {
				console.NewConsole().Success("Configuration written to %s", manager.GetConfigPath())
			}
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")
	return initCmd
}
