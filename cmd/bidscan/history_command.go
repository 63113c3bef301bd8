package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bidscan/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past inventory runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Inventory.HistoryEnabled {
				return fmt.Errorf("scan history is disabled (inventory.history_enabled = false)")
			}

			store, err := history.Open(cfg.Inventory.HistoryPath)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No inventory runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					fmt.Sprintf("%d", run.ID),
					run.FinishedAt.Local().Format(time.DateTime),
					run.DatasetRoot,
					fmt.Sprintf("%d", run.SubjectCount),
					fmt.Sprintf("%d", run.RowCount),
					fmt.Sprintf("%d", run.FilesScanned),
					fmt.Sprintf("%d", run.FilesSkipped),
					run.OutputPath,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Finished", "Dataset", "Subjects", "Rows", "Files", "Skipped", "Output"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum number of runs to show (0 for all)")

	return cmd
}
