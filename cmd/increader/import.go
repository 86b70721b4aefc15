package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/increader/internal/datasync"
)

func newImportCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool

	command := &cobra.Command{
		Use:   "import <seed file>",
		Short: "Import documents, extracts and flashcards from a YAML seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			seed, err := datasync.LoadSeedFile(args[0])
			if err != nil {
				return fmt.Errorf("datasync.LoadSeedFile() > %w", err)
			}

			_, db, err := openDatabase(ctx)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(datasync.NewDBStore(db), out)
			opts := datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}
			result, err := importer.Import(ctx, seed, opts)
			if err != nil {
				return fmt.Errorf("importer.Import() > %w", err)
			}

			fmt.Fprintln(out, "\nImport Summary:")
			if opts.DryRun {
				fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			fmt.Fprintf(out, "  Documents:  %d new, %d skipped, %d updated\n",
				result.DocumentsNew, result.DocumentsSkipped, result.DocumentsUpdated)
			fmt.Fprintf(out, "  Categories: %d new\n", result.CategoriesNew)
			fmt.Fprintf(out, "  Extracts:   %d new\n", result.ExtractsNew)
			fmt.Fprintf(out, "  Items:      %d new\n", result.ItemsNew)
			return nil
		},
	}

	command.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	command.Flags().BoolVar(&updateExisting, "update-existing", false, "Update priority, category and tags of documents that already exist")
	return command
}
