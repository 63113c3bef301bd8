package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bidscan/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newConfigShowCommand(ctx))
	cmd.AddCommand(newConfigValidateCommand(ctx))
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dir, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config directory: %s\n", dir)
			if config.HasLocalOverride(dir) {
				fmt.Fprintln(out, "Local override: local.toml applied")
			} else {
				fmt.Fprintln(out, "Local override: none")
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(
				[]string{"Setting", "Value"},
				[][]string{
					{"paths.bids_project_dir", valueOrUnset(cfg.Paths.BIDSProjectDir)},
					{"paths.inventory_output_dir", valueOrUnset(cfg.Paths.InventoryOutputDir)},
					{"paths.code_root", valueOrUnset(cfg.Paths.CodeRoot)},
					{"paths.output_dir", valueOrUnset(cfg.Paths.OutputDir)},
					{"slurm.partition", valueOrUnset(cfg.Slurm.Partition)},
					{"slurm.time", cfg.Slurm.Time},
					{"slurm.memory", cfg.Slurm.Memory},
					{"slurm.cpus", cfg.Slurm.CPUs},
					{"slurm.email", valueOrUnset(cfg.Slurm.Email)},
					{"logging.level", cfg.Logging.Level},
					{"logging.format", cfg.Logging.Format},
					{"inventory.cell_style", cfg.Inventory.CellStyle},
					{"inventory.history_enabled", yesNo(cfg.Inventory.HistoryEnabled)},
					{"inventory.history_path", cfg.Inventory.HistoryPath},
				},
			))
			return nil
		},
	}
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dir, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration valid (%s)\n", dir)
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample base.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := config.CreateSample(dirFlag)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "config", "Directory to create base.toml in")

	return cmd
}

func valueOrUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
