package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glamstack/attire/internal/cli"
	"github.com/glamstack/attire/internal/model"
	"github.com/glamstack/attire/internal/trend"
)

func trendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Inspect the trend reference table",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List trend entries and brand tiers",
		RunE: func(_ *cobra.Command, _ []string) error {
			book := trend.DefaultBook()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Dimension"),
				cli.BoldStyle.Render("Trend"),
				cli.BoldStyle.Render("Weight"))

			dimensions := []model.TrendDimension{
				model.DimensionColor,
				model.DimensionPattern,
				model.DimensionFabric,
				model.DimensionSilhouette,
			}
			for _, dim := range dimensions {
				for _, entry := range book.Entries(dim) {
					fmt.Fprintf(w, "%s\t%s\t%.2f\n", dim, entry.Name, entry.PopularityWeight)
				}
			}
			w.Flush()

			fmt.Println()
			fmt.Println(cli.BoldStyle.Render("Premium brands: ") + strings.Join(book.PremiumBrands(), ", "))
			fmt.Println(cli.BoldStyle.Render("Luxury brands:  ") + strings.Join(book.LuxuryBrands(), ", "))

			return nil
		},
	})

	return cmd
}
