package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/increader/internal/srs"
)

func newLeechesCommand() *cobra.Command {
	var format OutputFormat
	leechesCmd := &cobra.Command{
		Use:   "leeches",
		Short: "List flashcards that keep failing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.close()

			reports, err := svc.leeches.DetectLeeches(cmd.Context())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, reports, func(w io.Writer) error {
				return printLeeches(w, reports)
			})
		},
	}
	addOutputFlag(leechesCmd, &format)
	leechesCmd.AddCommand(newLeechesTreatCommand())
	return leechesCmd
}

func newLeechesTreatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "treat <item id> <relearn|simplify|hint|mnemonic>",
		Short: "Apply a treatment to a leech",
		Args:  cobra.ExactArgs(2),
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

			item, err := svc.leeches.ApplyTreatment(cmd.Context(), itemID, srs.TreatmentStrategy(args[1]))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Item %d: %s\n", item.ID, item.Question)
			return err
		},
	}
}

func printLeeches(w io.Writer, reports []srs.LeechReport) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "No leeches found")
		return err
	}
	bold := color.New(color.Bold)
	for _, report := range reports {
		if _, err := fmt.Fprintf(w, "%s (item %d, %d reviews)\n", bold.Sprint(report.Question), report.ItemID, report.TotalReviews); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  suggested: %s: %s\n", report.Treatment.Strategy, report.Treatment.Action); err != nil {
			return err
		}
	}
	return nil
}
