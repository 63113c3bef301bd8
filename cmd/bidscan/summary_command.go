package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bidscan/internal/dataset"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [dataset-root]",
		Short: "Summarize the contents of a BIDS dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.ensureLogger()

			var root string
			if len(args) > 0 {
				root = args[0]
			} else {
				cfg, _, cfgErr := ctx.ensureConfig()
				if cfg == nil || cfg.Paths.BIDSProjectDir == "" {
					return missingPathError("dataset root", "paths.bids_project_dir", cfgErr)
				}
				root = cfg.Paths.BIDSProjectDir
			}

			summary, err := dataset.Summarize(root, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dataset: %s\n\n", summary.Root)
			fmt.Fprintln(out, renderTable(
				[]string{"Metric", "Value"},
				[][]string{
					{"Subjects", fmt.Sprintf("%d", len(summary.Subjects))},
					{"Sessions", joinOrNone(summary.Sessions)},
					{"Datatypes", joinOrNone(summary.Datatypes)},
					{"Modalities", joinOrNone(summary.Suffixes)},
					{"Tasks", joinOrNone(summary.Tasks)},
					{"Files scanned", fmt.Sprintf("%d", summary.FilesScanned)},
					{"Files skipped", fmt.Sprintf("%d", summary.FilesSkipped)},
				},
			))

			if len(summary.Datatypes) > 0 {
				rows := make([][]string, 0, len(summary.Datatypes))
				for _, datatype := range summary.Datatypes {
					rows = append(rows, []string{datatype, fmt.Sprintf("%d", summary.CountByType[datatype])})
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderTable([]string{"Datatype", "Files"}, rows))
			}
			return nil
		},
	}
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
