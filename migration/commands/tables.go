package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"officesite/internal/models"
	"officesite/internal/schema"
)

func TablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Describe the tables defined by the models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(models.ModelTypeRegistry))
			for name := range models.ModelTypeRegistry {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				table, err := schema.FromModel(models.ModelTypeRegistry[name])
				if err != nil {
					return fmt.Errorf("failed to parse model %s: %w", name, err)
				}

				fmt.Fprintf(out, "%s (%s)\n", table.TableName(), name)
				for _, col := range table.Columns {
					fmt.Fprintf(out, "  %-20s  %-10s  %s\n", col.ColumnName(), col.Type(), col.Flags())
				}
				for _, fk := range table.ForeignKeys() {
					fmt.Fprintf(out, "  fk: %s\n", fk)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
