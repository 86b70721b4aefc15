package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/increader/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Analyze review history",
	}
	cmd.AddCommand(
		newStatsReviewsCommand(),
		newStatsItemCommand(),
		newStatsSessionCommand(),
		newStatsEfficiencyCommand(),
	)
	return cmd
}

func newStatsReviewsCommand() *cobra.Command {
	var (
		year, month int
		format      OutputFormat
	)

	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Show monthly/yearly report of flashcard reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			result, err := svc.reporter.ReviewStatistics(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, result, func(w io.Writer) error {
				return printReviewStatistics(w, result)
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2025)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")
	addOutputFlag(cmd, &format)

	return cmd
}

func printReviewStatistics(w io.Writer, result *statistics.StatisticsResult) error {
	if len(result.Periods) == 0 {
		_, err := fmt.Fprintln(w, "No reviews found for the specified period.")
		return err
	}

	row := "%-10s  %-8s  %-14s  %-13s  %-22s\n"
	if _, err := fmt.Fprintf(w, "Review Statistics Report\n========================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, row, "Period", "Reviews", "Items reviewed", "First reviews", "Lapses (Total/Unique)"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, row, "------", "-------", "--------------", "-------------", "---------------------"); err != nil {
		return err
	}
	for _, s := range result.Periods {
		if _, err := fmt.Fprintf(w, row,
			s.Period,
			fmt.Sprint(s.ReviewsCount),
			fmt.Sprint(s.ItemsReviewed),
			fmt.Sprint(s.FirstReviews),
			fmt.Sprintf("%d / %d", s.LapsesCount, s.LapsesUnique),
		); err != nil {
			return err
		}
	}

	total := result.Aggregate
	_, err := fmt.Fprintf(w, "\n"+row,
		"Totals:",
		fmt.Sprint(total.ReviewsCount),
		fmt.Sprint(total.ItemsReviewed),
		fmt.Sprint(total.FirstReviews),
		fmt.Sprintf("%d / %d", total.LapsesCount, total.LapsesUnique),
	)
	return err
}

func newStatsItemCommand() *cobra.Command {
	var format OutputFormat

	cmd := &cobra.Command{
		Use:   "item <item id>",
		Short: "Show performance metrics of a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID("item id", args[0])
			if err != nil {
				return err
			}

			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			metrics, err := svc.analyzer.ItemMetrics(cmd.Context(), itemID)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, metrics, func(w io.Writer) error {
				return printItemMetrics(w, metrics)
			})
		},
	}
	addOutputFlag(cmd, &format)
	return cmd
}

func newStatsSessionCommand() *cobra.Command {
	var (
		days   int
		format OutputFormat
	)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Summarise the reviews of the last days",
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

			analysis, err := svc.analyzer.SessionAnalysis(cmd.Context(), days)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, analysis, func(w io.Writer) error {
				return printSessionAnalysis(w, analysis)
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "Number of days to look back")
	addOutputFlag(cmd, &format)
	return cmd
}

func newStatsEfficiencyCommand() *cobra.Command {
	var format OutputFormat

	cmd := &cobra.Command{
		Use:   "efficiency [item id...]",
		Short: "Show reviews needed to learn items and retention by interval",
		Long:  "Show reviews needed to learn items and retention by interval. Without ids every reviewed item is analysed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			itemIDs := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseID("item id", arg)
				if err != nil {
					return err
				}
				itemIDs = append(itemIDs, id)
			}

			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			efficiency, err := svc.analyzer.LearningEfficiency(cmd.Context(), itemIDs)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, efficiency, func(w io.Writer) error {
				return printLearningEfficiency(w, efficiency)
			})
		},
	}
	addOutputFlag(cmd, &format)
	return cmd
}

func printItemMetrics(w io.Writer, m *statistics.ItemMetrics) error {
	if m.TotalReviews == 0 {
		_, err := fmt.Fprintf(w, "Item %d has not been reviewed yet.\n", m.ItemID)
		return err
	}
	lines := []string{
		fmt.Sprintf("Item %d", m.ItemID),
		fmt.Sprintf("  Reviews:           %d", m.TotalReviews),
		fmt.Sprintf("  Success rate:      %.0f%%", m.SuccessRate*100),
		fmt.Sprintf("  Average interval:  %.1f days", m.AverageInterval),
		fmt.Sprintf("  Average response:  %.0f ms", m.AverageResponseTimeMs),
		fmt.Sprintf("  Retention rate:    %.0f%%", m.RetentionRate*100),
		fmt.Sprintf("  Predicted recall:  %.0f%%", m.PredictedRecall*100),
		fmt.Sprintf("  Optimal interval:  %d days", m.OptimalInterval),
		fmt.Sprintf("  Difficulty:        %.2f (%s)", m.Difficulty, m.DifficultyTrend),
	}
	if m.IsLeech {
		lines = append(lines, "  Leech: failed 3 of the last 5 reviews")
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func printSessionAnalysis(w io.Writer, a *statistics.SessionAnalysis) error {
	if a.TotalReviews == 0 {
		_, err := fmt.Fprintf(w, "No reviews in the last %d days.\n", a.Days)
		return err
	}
	lines := []string{
		fmt.Sprintf("Reviews in the last %d days: %d", a.Days, a.TotalReviews),
		fmt.Sprintf("Daily average: %.1f", a.DailyAverage),
		fmt.Sprintf("Success rate:  %.0f%%", a.SuccessRate*100),
		fmt.Sprintf("Improvement:   %+.0f%%", a.ImprovementTrend*100),
		"",
		fmt.Sprintf("%-10s  %7s", "Date", "Reviews"),
		fmt.Sprintf("%-10s  %7s", "----", "-------"),
	}
	for _, d := range a.DailyCounts {
		lines = append(lines, fmt.Sprintf("%-10s  %7d", d.Date, d.Count))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func printLearningEfficiency(w io.Writer, e *statistics.LearningEfficiency) error {
	if e.ItemsAnalyzed == 0 {
		_, err := fmt.Fprintln(w, "No reviewed items found.")
		return err
	}
	lines := []string{
		fmt.Sprintf("Items analysed: %d", e.ItemsAnalyzed),
		fmt.Sprintf("Average reviews to learn: %.1f", e.AverageReviewsToLearn),
		"",
		fmt.Sprintf("%-8s  %9s  %7s", "Interval", "Retention", "Samples"),
		fmt.Sprintf("%-8s  %9s  %7s", "--------", "---------", "-------"),
	}
	for _, r := range e.RetentionVsInterval {
		lines = append(lines, fmt.Sprintf("%-8s  %8.0f%%  %7d", fmt.Sprintf("%dd+", r.Interval), r.RetentionRate*100, r.SampleSize))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
