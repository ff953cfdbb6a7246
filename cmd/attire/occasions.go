package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glamstack/attire/internal/cli"
	"github.com/glamstack/attire/internal/occasion"
)

func occasionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "occasions",
		Short: "Inspect occasion profiles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List occasion profiles",
		Long:  `Display each occasion's key pieces, avoid pieces, palette, and styling tip.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Occasion"),
				cli.BoldStyle.Render("Key pieces"),
				cli.BoldStyle.Render("Avoid"),
				cli.BoldStyle.Render("Palette"))

			for _, p := range occasion.DefaultProfiles() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					p.Key,
					strings.Join(p.KeyPieces, ", "),
					strings.Join(p.AvoidPieces, ", "),
					strings.Join(p.ColorPalette, ", "))
			}

			return nil
		},
	})

	return cmd
}
