package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/increader/internal/database"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateDirectionCommand(database.Up, "Apply all pending migrations"))
	migrateCmd.AddCommand(newMigrateDirectionCommand(database.Down, "Revert all migrations"))

	return migrateCmd
}

func newMigrateDirectionCommand(direction database.Direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(direction),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.Migrate(db, direction); err != nil {
				return fmt.Errorf("database.Migrate(%s) > %w", direction, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s\n", direction)
			return nil
		},
	}
}
