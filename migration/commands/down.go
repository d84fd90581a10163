package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"officesite/migration"
)

func DownCmd(open DBOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revert the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, open, func(m *migration.Migrator) error {
				reverted, err := m.Down(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Successfully reverted migration: %s\n", reverted.Name)
				return nil
			})
		},
	}
}
