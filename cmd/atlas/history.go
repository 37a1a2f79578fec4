package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/atlas/pkg/cli"
	"mercator-hq/atlas/pkg/config"
	"mercator-hq/atlas/pkg/history"
)

var historyFlags struct {
	path    string
	since   time.Duration
	invalid bool
	limit   int
	format  string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Query past validation runs",
	Long: `Query the validation history store, newest runs first.

Watch mode records every lint run; this command reads them back for
auditing how a template's structural health evolved over time. Results
can be narrowed to a single template, a time window, or failing runs
only, and exported as text, JSON, or CSV.`,
	Example: `  # The 20 most recent runs
  atlas history --limit 20

  # Failing runs for one template in the last day
  atlas history --path templates/network.yaml --since 24h --invalid

  # Export everything as CSV
  atlas history --format csv > runs.csv`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyFlags.path, "path", "p", "", "restrict to runs of one template file")
	historyCmd.Flags().DurationVar(&historyFlags.since, "since", 0, "restrict to runs within this duration (e.g. 24h)")
	historyCmd.Flags().BoolVar(&historyFlags.invalid, "invalid", false, "restrict to runs that reported errors")
	historyCmd.Flags().IntVarP(&historyFlags.limit, "limit", "n", 0, "maximum number of runs to return (0 = all)")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format (text, json, or csv)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	store, err := openHistoryStore(cfg)
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	defer store.Close()

	query := &history.Query{
		Path:        historyFlags.path,
		OnlyInvalid: historyFlags.invalid,
		Limit:       historyFlags.limit,
	}
	if historyFlags.since > 0 {
		since := time.Now().UTC().Add(-historyFlags.since)
		query.Since = &since
	}

	records, err := store.Query(cmd.Context(), query)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	switch historyFlags.format {
	case "json":
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(os.Stdout, records); err != nil {
			return cli.NewCommandError("history", err)
		}
	case "csv":
		if err := writeHistoryCSV(records); err != nil {
			return cli.NewCommandError("history", err)
		}
	default:
		printHistoryRecords(records)
	}

	return nil
}

func writeHistoryCSV(records []*history.Record) error {
	formatter := &cli.CSVFormatter{
		Headers: []string{"id", "path", "valid", "errors", "warnings", "resource_count", "checked_at"},
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID,
			r.Path,
			strconv.FormatBool(r.Valid),
			strconv.Itoa(len(r.Errors)),
			strconv.Itoa(len(r.Warnings)),
			strconv.Itoa(r.ResourceCount),
			r.CheckedAt.Format(time.RFC3339),
		})
	}

	return formatter.FormatTo(os.Stdout, rows)
}

func printHistoryRecords(records []*history.Record) {
	if len(records) == 0 {
		fmt.Println("No validation runs recorded.")
		return
	}

	for _, r := range records {
		status := "OK"
		if !r.Valid {
			status = "INVALID"
		}
		fmt.Printf("%s  %-7s  %s (%d resources, %d errors, %d warnings)\n",
			r.CheckedAt.Format(time.RFC3339), status, r.Path,
			r.ResourceCount, len(r.Errors), len(r.Warnings))
		for _, msg := range r.Errors {
			fmt.Printf("    error: %s\n", msg)
		}
	}
}
