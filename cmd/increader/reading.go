package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/increader/internal/document"
)

func newReadingCommand() *cobra.Command {
	readingCmd := &cobra.Command{
		Use:   "reading",
		Short: "Incremental reading commands",
	}
	readingCmd.AddCommand(newReadingAddCommand())
	readingCmd.AddCommand(newReadingListCommand())
	readingCmd.AddCommand(newReadingSessionCommand())
	return readingCmd
}

func newReadingAddCommand() *cobra.Command {
	var priority float64
	command := &cobra.Command{
		Use:   "add <document id>",
		Short: "Start reading a document incrementally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			documentID, err := parseID("document id", args[0])
			if err != nil {
				return err
			}
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			entry, err := svc.incremental.AddDocument(cmd.Context(), documentID, priority)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Reading %d for document %d with priority %.1f\n",
				entry.ID, entry.DocumentID, entry.ReadingPriority)
			return err
		},
	}
	command.Flags().Float64Var(&priority, "priority", 50, "Reading priority from 0 to 100")
	return command
}

func newReadingListCommand() *cobra.Command {
	var (
		limit  int
		format OutputFormat
	)
	command := &cobra.Command{
		Use:   "list",
		Short: "List the readings that are due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			entries, err := svc.incremental.ReadingQueue(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, entries, func(w io.Writer) error {
				return printReadings(w, entries)
			})
		},
	}
	command.Flags().IntVar(&limit, "limit", 20, "Maximum number of readings")
	addOutputFlag(command, &format)
	return command
}

func newReadingSessionCommand() *cobra.Command {
	var (
		position int
		grade    int
		percent  float64
	)
	command := &cobra.Command{
		Use:   "session <reading id>",
		Short: "Record a reading session and schedule the next one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			readingID, err := parseID("reading id", args[0])
			if err != nil {
				return err
			}
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			entry, err := svc.incremental.RecordSession(cmd.Context(), readingID, position, grade, percent)
			if err != nil {
				return err
			}
			next := "-"
			if entry.NextReadDate != nil {
				next = entry.NextReadDate.Format(time.DateOnly)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Reading %d is %s, next session in %d days (%s)\n",
				entry.ID, entry.ScheduleState, entry.Interval, next)
			return err
		},
	}
	command.Flags().IntVar(&position, "position", 0, "Position reached in the document")
	command.Flags().IntVar(&grade, "grade", 4, "How well the session went, from 0 to 5")
	command.Flags().Float64Var(&percent, "percent", 0, "Percentage of the document read, from 0 to 100")
	return command
}

func printReadings(w io.Writer, entries []document.ReadingQueueEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "Nothing to read")
		return err
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%d. %s (%s, %.0f%% read, priority %.1f)\n",
			entry.ID, entry.DocumentTitle, entry.ScheduleState, entry.PercentComplete, entry.ReadingPriority); err != nil {
			return err
		}
	}
	return nil
}
