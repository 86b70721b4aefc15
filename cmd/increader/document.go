package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

func newDocumentCommand() *cobra.Command {
	documentCmd := &cobra.Command{
		Use:   "document",
		Short: "Document scheduling commands",
	}
	documentCmd.AddCommand(newDocumentScheduleCommand())
	documentCmd.AddCommand(newDocumentPriorityCommand())
	return documentCmd
}

func newDocumentScheduleCommand() *cobra.Command {
	var format OutputFormat
	command := &cobra.Command{
		Use:   "schedule <document id> <rating>",
		Short: "Record a reading of a document rated 1 (hard) to 5 (easy) and schedule the next one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			documentID, err := parseID("document id", args[0])
			if err != nil {
				return err
			}
			rating, err := parseInt("rating", args[1])
			if err != nil {
				return err
			}
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			result, err := svc.documents.ScheduleDocument(cmd.Context(), documentID, rating)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s: next reading in %d days (%s), stability %.2f, difficulty %.2f, read %d times\n",
					result.Title,
					result.IntervalDays,
					result.NextReadingDate.Format(time.DateOnly),
					result.Stability,
					result.Difficulty,
					result.ReadingCount,
				)
				return err
			})
		},
	}
	addOutputFlag(command, &format)
	return command
}

func newDocumentPriorityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "priority <document id> <priority>",
		Short: "Set a document's priority from 1 to 100",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			documentID, err := parseID("document id", args[0])
			if err != nil {
				return err
			}
			priority, err := parseInt("priority", args[1])
			if err != nil {
				return err
			}
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			applied, err := svc.queue.UpdateDocumentPriority(cmd.Context(), documentID, priority)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Document %d priority set to %d\n", documentID, applied)
			return err
		},
	}
}
