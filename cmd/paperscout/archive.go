// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscout/internal/archive"
	"github.com/pdiddy/paperscout/internal/report"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse and export archived fetch runs",
	Long: `Archive manages the local SQLite archive of fetch runs. Use subcommands
to list recorded runs, show one run's rows, or export a run to YAML or
JSON.`,
}

// --- list subcommand ---

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived runs, newest first",
	RunE:  runArchiveList,
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No archived runs.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%-5s  %-20s  %-5s  %s\n", "ID", "Recorded", "Rows", "Query")
	for _, run := range runs {
		fmt.Fprintf(cmd.OutOrStdout(), "%-5d  %-20s  %-5d  %s\n",
			run.ID, run.Timestamp.Format("2006-01-02 15:04:05"), run.RowCount, run.Term)
	}
	return nil
}

// --- show subcommand ---

var archiveShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the rows of one archived run",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveShow,
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	runID, err := parseRunID(args[0])
	if err != nil {
		return err
	}

	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.RunRows(context.Background(), runID)
	if err != nil {
		return err
	}
	return report.FormatJSON(rows, cmd.OutOrStdout())
}

// --- export subcommand ---

var archiveExportCmd = &cobra.Command{
	Use:   "export [run-id]",
	Short: "Export one archived run to a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveExport,
}

func runArchiveExport(cmd *cobra.Command, args []string) error {
	runID, err := parseRunID(args[0])
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = fmt.Sprintf("run-%d.%s", runID, format)
	}

	store, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		err = store.ExportYAML(context.Background(), runID, out)
	case "json":
		err = store.ExportJSON(context.Background(), runID, out)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
	return nil
}

func parseRunID(arg string) (int64, error) {
	runID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID %q: %w", arg, err)
	}
	return runID, nil
}

func init() {
	archiveExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	archiveExportCmd.Flags().String("out", "", "output file (default run-<id>.<format>)")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveExportCmd)

	rootCmd.AddCommand(archiveCmd)
}
