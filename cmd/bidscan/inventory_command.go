package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bidscan/internal/dataset"
	"bidscan/internal/history"
	"bidscan/internal/inventory"
)

func newInventoryCommand(ctx *commandContext) *cobra.Command {
	var subjectsFlag []string

	cmd := &cobra.Command{
		Use:   "inventory [dataset-root] [output-path]",
		Short: "Build the BIDS file inventory TSV",
		Long: `Scan a BIDS dataset and write a tab-separated inventory: one row per
shorthand file label, one column per subject, cells holding the file path
or DNE when the subject lacks the file.

The dataset root and output path default to paths.bids_project_dir and
paths.inventory_output_dir from the configuration. Subjects are
auto-discovered from sub-* directories unless --subjects is given.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventory(cmd, ctx, args, subjectsFlag)
		},
	}

	cmd.Flags().StringSliceVar(&subjectsFlag, "subjects", nil,
		"Explicit subject list (comma-separated or repeated); overrides auto-discovery")

	return cmd
}

func runInventory(cmd *cobra.Command, ctx *commandContext, args, subjectsFlag []string) error {
	logger := ctx.ensureLogger()
	started := time.Now()

	root, output, err := resolveInventoryPaths(ctx, args)
	if err != nil {
		return err
	}

	walker, err := dataset.NewWalker(root, logger)
	if err != nil {
		return err
	}

	subjects := normalizeSubjects(subjectsFlag)
	if len(subjects) == 0 {
		logger.Info("auto-discovering subjects", "root", root)
		discovered, err := dataset.DiscoverSubjects(root)
		if err != nil {
			return err
		}
		if len(discovered) == 0 {
			return fmt.Errorf("no subjects found in %s; pass --subjects or check the dataset root", root)
		}
		subjects = discovered
		logger.Info("subjects discovered", "count", len(subjects))
	}

	builder := &inventory.Builder{Walker: walker, Subjects: subjects, Logger: logger}
	result, err := builder.Build()
	if err != nil {
		return err
	}

	style := inventory.CellStylePath
	if cfg := ctx.configValue(); cfg != nil {
		style = inventory.StyleFromConfig(cfg.Inventory.CellStyle)
	}
	if err := inventory.WriteTSV(result.Table, output, style); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inventory created: %s\n", output)
	fmt.Fprintf(cmd.OutOrStdout(), "Rows: %d  Subjects: %d  Files: %d  Skipped: %d\n",
		result.Table.Len(), len(subjects), result.FilesScanned, result.FilesSkipped)

	recordHistory(cmd.Context(), ctx, history.Run{
		DatasetRoot:  root,
		OutputPath:   output,
		SubjectCount: len(subjects),
		RowCount:     result.Table.Len(),
		FilesScanned: result.FilesScanned,
		FilesSkipped: result.FilesSkipped,
		StartedAt:    started,
		FinishedAt:   time.Now(),
	})
	return nil
}

// resolveInventoryPaths picks the dataset root and output path from
// positional arguments first, configuration second. Only when an argument is
// missing does a config load failure become the user's problem.
func resolveInventoryPaths(ctx *commandContext, args []string) (root, output string, err error) {
	if len(args) > 0 {
		root = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}
	if root != "" && output != "" {
		return root, output, nil
	}

	cfg, _, cfgErr := ctx.ensureConfig()
	if root == "" {
		if cfg == nil || cfg.Paths.BIDSProjectDir == "" {
			return "", "", missingPathError("dataset root", "paths.bids_project_dir", cfgErr)
		}
		root = cfg.Paths.BIDSProjectDir
	}
	if output == "" {
		if cfg == nil || cfg.DefaultInventoryPath() == "" {
			return "", "", missingPathError("output path", "paths.inventory_output_dir", cfgErr)
		}
		output = cfg.DefaultInventoryPath()
	}
	return root, output, nil
}

func missingPathError(what, key string, cfgErr error) error {
	if cfgErr != nil {
		return fmt.Errorf("%s not given and configuration unavailable: %w", what, cfgErr)
	}
	return fmt.Errorf("%s not given and %s is not configured", what, key)
}

// normalizeSubjects accepts identifiers with or without the sub- prefix and
// returns bare identifiers, dropping empties.
func normalizeSubjects(values []string) []string {
	subjects := make([]string, 0, len(values))
	for _, value := range values {
		id := strings.TrimPrefix(strings.TrimSpace(value), dataset.SubjectPrefix)
		if id != "" {
			subjects = append(subjects, id)
		}
	}
	return subjects
}

// recordHistory appends the run to the scan-history database. Best-effort:
// the inventory is already on disk, so store problems only warn.
func recordHistory(cmdCtx context.Context, ctx *commandContext, run history.Run) {
	cfg := ctx.configValue()
	if cfg == nil || !cfg.Inventory.HistoryEnabled {
		return
	}
	logger := ctx.ensureLogger()

	store, err := history.Open(cfg.Inventory.HistoryPath)
	if err != nil {
		logger.Warn("scan history unavailable", "path", cfg.Inventory.HistoryPath, "error", err)
		return
	}
	defer store.Close()

	if cmdCtx == nil {
		cmdCtx = context.Background()
	}
	if _, err := store.Record(cmdCtx, run); err != nil {
		logger.Warn("failed to record scan history", "error", err)
	}
}
