package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/glamstack/attire/internal/catalog"
	"github.com/glamstack/attire/internal/cli"
	"github.com/glamstack/attire/internal/model"
)

// saveBatchSize bounds the number of items written per storage call during
// import so the progress bar advances smoothly on large catalogs.
const saveBatchSize = 50

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the local catalog",
		Long:  `Import, list, and clear the locally stored clothing catalog used by 'attire curate'.`,
	}

	cmd.AddCommand(importCatalogCmd())
	cmd.AddCommand(listCatalogCmd())
	cmd.AddCommand(clearCatalogCmd())

	return cmd
}

func importCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a catalog JSON file",
		Long: `Parse a catalog JSON file and store its items locally.

Records may be a bare array or wrapped under "items"/"products"; field names
are matched loosely, so catalogs from different providers import as-is.
Re-importing updates items with matching IDs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied path
			if err != nil {
				return fmt.Errorf("failed to read catalog file: %w", err)
			}

			items, err := catalog.ParseItems(data)
			if err != nil {
				return fmt.Errorf("failed to parse catalog: %w", err)
			}

			if len(items) == 0 {
				fmt.Println(cli.FormatWarning("Catalog file contains no items."))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			bar := progressbar.Default(int64(len(items)), "importing")
			for start := 0; start < len(items); start += saveBatchSize {
				end := start + saveBatchSize
				if end > len(items) {
					end = len(items)
				}
				if err := store.SaveItems(ctx, items[start:end]); err != nil {
					return fmt.Errorf("failed to save items: %w", err)
				}
				_ = bar.Add(end - start)
			}
			_ = bar.Finish()

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d items.", len(items))))
			return nil
		},
	}
}

func listCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported catalog items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			items, err := store.ListItems(ctx)
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			if len(items) == 0 {
				fmt.Println(cli.FormatInfo("No catalog imported. Use 'attire catalog import' to add one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Brand"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Price"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 28),
				strings.Repeat("-", 14),
				strings.Repeat("-", 12),
				strings.Repeat("-", 8))

			for _, item := range items {
				category := string(item.Category)
				if category == "" {
					category = string(model.CategoryUncategorized)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.2f\n",
					item.ID, item.Name, brandOrDash(item.Brand), category, item.Price)
			}

			return nil
		},
	}
}

func clearCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all imported catalog items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.CountItems(ctx)
			if err != nil {
				return err
			}

			if err := store.Clear(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %d items.", count)))
			return nil
		},
	}
}

func brandOrDash(brand string) string {
	if brand == "" {
		return "-"
	}
	return brand
}
