package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/increader/internal/cli"
	"github.com/at-ishikawa/increader/internal/document"
	"github.com/at-ishikawa/increader/internal/queue"
)

func newReviewCommand() *cobra.Command {
	var (
		limit      int
		categoryID int64
	)
	command := &cobra.Command{
		Use:   "review",
		Short: "Review the flashcards that are due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be positive")
			}
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			reviewCLI, err := cli.NewReviewSessionCLI(cmd.Context(), svc.scheduler, limit, optionalID(categoryID))
			if err != nil {
				return err
			}

			fmt.Printf("Review session started with %d items.\n", reviewCLI.ItemCount())
			fmt.Println("Grade each answer from 0 (blackout) to 5 (perfect). Type 'q' to exit.")
			fmt.Println()
			return reviewCLI.Run(cmd.Context(), reviewCLI)
		},
	}
	command.Flags().IntVar(&limit, "limit", 50, "Maximum number of items in the session")
	command.Flags().Int64Var(&categoryID, "category-id", 0, "Only review items of this category")
	return command
}

func newReadCommand() *cobra.Command {
	var (
		count      int
		categoryID int64
		tags       []string
		randomness float64
	)
	command := &cobra.Command{
		Use:   "read",
		Short: "Read the next documents from the queue and rate them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive")
			}
			var queueOpts []queue.Option
			if cmd.Flags().Changed("randomness") {
				queueOpts = append(queueOpts, queue.WithRandomness(randomness))
			}
			svc, err := openServices(cmd.Context(), queueOpts...)
			if err != nil {
				return err
			}
			defer svc.close()

			readingCLI, err := cli.NewReadingSessionCLI(cmd.Context(), svc.queue, svc.documents, count, document.Filter{
				CategoryID: optionalID(categoryID),
				Tags:       tags,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Reading session started (%s selection).\n", queue.BandFor(svc.queue.Randomness()))
			fmt.Println("Rate each document from 1 (hard) to 5 (easy). Type 's' to skip or 'q' to exit.")
			fmt.Println()
			return readingCLI.Run(cmd.Context(), readingCLI)
		},
	}
	command.Flags().IntVar(&count, "count", 10, "Number of documents to select")
	command.Flags().Int64Var(&categoryID, "category-id", 0, "Only select documents of this category")
	command.Flags().StringSliceVar(&tags, "tag", nil, "Only select documents with all of these tags")
	command.Flags().Float64Var(&randomness, "randomness", 0, "Randomness factor from 0 to 1, overriding the config file")
	return command
}

func newClozeCommand() *cobra.Command {
	var (
		hint   string
		format OutputFormat
	)
	command := &cobra.Command{
		Use:   "cloze <extract id> <text>",
		Short: "Create a cloze flashcard from an extract. Mark the deletion with {{...}}",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extractID, err := parseID("extract id", args[0])
			if err != nil {
				return err
			}
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			item, err := svc.scheduler.CreateClozeItem(cmd.Context(), extractID, args[1], hint)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, item, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Created item %d\n  Q: %s\n  A: %s\n", item.ID, item.Question, item.Answer)
				return err
			})
		},
	}
	command.Flags().StringVar(&hint, "hint", "", "Hint shown in place of the deletion")
	addOutputFlag(command, &format)
	return command
}
