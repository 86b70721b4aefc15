package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/queue"
)

func newQueueCommand() *cobra.Command {
	queueCmd := &cobra.Command{
		Use:   "queue",
		Short: "Reading queue commands",
	}
	queueCmd.AddCommand(newQueueNextCommand())
	queueCmd.AddCommand(newQueueStatsCommand())
	queueCmd.AddCommand(newQueueDueCommand())
	return queueCmd
}

func newQueueNextCommand() *cobra.Command {
	var (
		count      int
		categoryID int64
		tags       []string
		randomness float64
		format     OutputFormat
	)
	command := &cobra.Command{
		Use:   "next",
		Short: "Show the next documents to read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var queueOpts []queue.Option
			if cmd.Flags().Changed("randomness") {
				queueOpts = append(queueOpts, queue.WithRandomness(randomness))
			}
			svc, err := openServices(cmd.Context(), queueOpts...)
			if err != nil {
				return err
			}
			defer svc.close()

			docs, err := svc.queue.NextDocuments(cmd.Context(), count, document.Filter{
				CategoryID: optionalID(categoryID),
				Tags:       tags,
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, docs, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "Selection: %s\n", queue.BandFor(svc.queue.Randomness())); err != nil {
					return err
				}
				return printDocuments(w, docs)
			})
		},
	}
	command.Flags().IntVar(&count, "count", 10, "Number of documents to select")
	command.Flags().Int64Var(&categoryID, "category-id", 0, "Only select documents of this category")
	command.Flags().StringSliceVar(&tags, "tag", nil, "Only select documents with all of these tags")
	command.Flags().Float64Var(&randomness, "randomness", 0, "Randomness factor from 0 to 1, overriding the config file")
	addOutputFlag(command, &format)
	return command
}

func newQueueStatsCommand() *cobra.Command {
	var format OutputFormat
	command := &cobra.Command{
		Use:   "stats",
		Short: "Show document counts of the reading queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			counts, err := svc.queue.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, counts, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Total: %d\nDue today: %d\nDue this week: %d\nNew: %d\nOverdue: %d\n",
					counts.TotalDocuments, counts.DueToday, counts.DueThisWeek, counts.NewDocuments, counts.Overdue)
				return err
			})
		},
	}
	addOutputFlag(command, &format)
	return command
}

func newQueueDueCommand() *cobra.Command {
	var (
		days       int
		categoryID int64
		includeNew bool
		format     OutputFormat
	)
	command := &cobra.Command{
		Use:   "due",
		Short: "Group upcoming documents by the day they are due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--days must not be negative")
			}
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			buckets, err := svc.queue.DocumentsByDueDate(cmd.Context(), days, optionalID(categoryID), includeNew)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, buckets, func(w io.Writer) error {
				return printBuckets(w, buckets)
			})
		},
	}
	command.Flags().IntVar(&days, "days", 7, "Number of days to look ahead")
	command.Flags().Int64Var(&categoryID, "category-id", 0, "Only count documents of this category")
	command.Flags().BoolVar(&includeNew, "include-new", true, "Include never-read documents")
	addOutputFlag(command, &format)
	return command
}

func printDocuments(w io.Writer, docs []document.Document) error {
	bold := color.New(color.Bold)
	if len(docs) == 0 {
		_, err := fmt.Fprintln(w, "No documents")
		return err
	}
	for i, doc := range docs {
		state := "new"
		if doc.NextReadingDate != nil {
			state = "due " + doc.NextReadingDate.Format(time.DateOnly)
		}
		if _, err := fmt.Fprintf(w, "%2d. %s (id %d, priority %d, %s)\n",
			i+1, bold.Sprint(doc.Title), doc.ID, doc.Priority, state); err != nil {
			return err
		}
	}
	return nil
}

// printBuckets lists overdue and new documents first, then each day in order.
func printBuckets(w io.Writer, buckets map[string][]document.Document) error {
	var days []string
	for key := range buckets {
		if key != queue.BucketNew && key != queue.BucketOverdue {
			days = append(days, key)
		}
	}
	sort.Strings(days)

	keys := make([]string, 0, len(buckets))
	for _, key := range []string{queue.BucketOverdue, queue.BucketNew} {
		if _, ok := buckets[key]; ok {
			keys = append(keys, key)
		}
	}
	keys = append(keys, days...)

	bold := color.New(color.Bold)
	for _, key := range keys {
		docs := buckets[key]
		if _, err := fmt.Fprintf(w, "%s: %d\n", bold.Sprint(key), len(docs)); err != nil {
			return err
		}
		for _, doc := range docs {
			if _, err := fmt.Fprintf(w, "  - %s (id %d)\n", doc.Title, doc.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
