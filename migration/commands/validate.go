package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"officesite/migration"
)

// Validate checks that every migration has a unique version and both
// directions defined.
func Validate(migrations []*migration.Migration) error {
	seen := make(map[string]string, len(migrations))
	for _, mr := range migrations {
		if mr.Version == "" {
			return fmt.Errorf("migration %q has no version", mr.Name)
		}
		if other, ok := seen[mr.Version]; ok {
			return fmt.Errorf("version %s used by both %q and %q", mr.Version, other, mr.Name)
		}
		seen[mr.Version] = mr.Name
		if mr.Up == nil || mr.Down == nil {
			return fmt.Errorf("migration %s (%s) must define Up and Down", mr.Name, mr.Version)
		}
	}
	return nil
}

func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := Validate(migration.GetRegisteredMigrations()); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All migrations are valid")
			return nil
		},
	}
}
