package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"officesite/internal/seed"
	"officesite/internal/store"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert missing locations, offices and testimonials",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			report, err := seed.New(store.New(db), seed.DefaultCatalog(), a.logger).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if report.Empty() {
				fmt.Fprintln(out, "Reference data already present, nothing inserted.")
				return nil
			}
			fmt.Fprintf(out, "Locations created: %d\n", report.LocationsCreated)
			printCounts(cmd, "Offices created", report.OfficesCreated)
			printCounts(cmd, "Testimonials created", report.TestimonialsCreated)
			return nil
		},
	}
}

func printCounts(cmd *cobra.Command, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	slugs := make([]string, 0, len(counts))
	for slug := range counts {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s:\n", title)
	for _, slug := range slugs {
		fmt.Fprintf(out, "  %-12s %d\n", slug, counts[slug])
	}
}
