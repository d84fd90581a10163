package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"officesite/internal/redirect"
)

func newRedirectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redirects",
		Short: "Inspect the dormant URL redirect table",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every dormant path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				table := redirect.DefaultTable()
				out := cmd.OutOrStdout()
				for _, p := range table.Paths() {
					fmt.Fprintln(out, p)
				}
				fmt.Fprintf(out, "%d paths redirect to %s\n", table.Len(), redirect.Target)
				return nil
			},
		},
		&cobra.Command{
			Use:   "check [path]",
			Short: "Report whether a path is redirected",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if redirect.DefaultTable().Contains(args[0]) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> 301 %s\n", args[0], redirect.Target)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is not redirected\n", args[0])
				}
				return nil
			},
		},
	)
	return cmd
}
