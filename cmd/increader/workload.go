package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/increader/internal/statistics"
)

func newWorkloadCommand() *cobra.Command {
	var (
		days   int
		format OutputFormat
	)
	command := &cobra.Command{
		Use:   "workload",
		Short: "Forecast flashcard and document reviews for the coming days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 || days > 365 {
				return fmt.Errorf("--days must be between 1 and 365")
			}
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			dashboard, err := svc.reporter.Dashboard(cmd.Context(), days)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, dashboard, func(w io.Writer) error {
				return printDashboard(w, dashboard)
			})
		},
	}
	command.Flags().IntVar(&days, "days", 7, "Number of days to forecast")
	addOutputFlag(command, &format)
	return command
}

func printDashboard(w io.Writer, dashboard *statistics.Dashboard) error {
	lines := []string{
		fmt.Sprintf("Workload for the next %d days", dashboard.Days),
		"==============================",
		"",
		fmt.Sprintf("%-10s  %5s  %9s  %5s", "Date", "Items", "Documents", "Total"),
		fmt.Sprintf("%-10s  %5s  %9s  %5s", "----", "-----", "---------", "-----"),
	}
	for _, day := range dashboard.Workload {
		lines = append(lines, fmt.Sprintf("%-10s  %5d  %9d  %5d", day.Date, day.Items, day.Documents, day.Total))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("%-10s  %5d  %9d  %5d", "Totals:", dashboard.TotalItems, dashboard.TotalDocuments,
			dashboard.TotalItems+dashboard.TotalDocuments),
		fmt.Sprintf("Overdue documents: %d, new documents: %d", dashboard.OverdueDocuments, dashboard.Queue.NewDocuments),
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
