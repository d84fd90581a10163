package commands

import (
	"context"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"officesite/migration"
)

// DBOpener opens the database a command works on. The returned close
// function releases it.
type DBOpener func(ctx context.Context) (*gorm.DB, func() error, error)

func withMigrator(cmd *cobra.Command, open DBOpener, fn func(*migration.Migrator) error) error {
	db, closeDB, err := open(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()
	return fn(migration.NewMigrator(db))
}

// MigrateCmd groups the migration subcommands.
func MigrateCmd(open DBOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}
	cmd.AddCommand(
		UpCmd(open),
		DownCmd(open),
		StatusCmd(open),
		HistoryCmd(open),
		ValidateCmd(),
		TablesCmd(),
	)
	return cmd
}
