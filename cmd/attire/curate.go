package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glamstack/attire/internal/catalog"
	"github.com/glamstack/attire/internal/cli"
	"github.com/glamstack/attire/internal/engine"
	"github.com/glamstack/attire/internal/model"
	"github.com/glamstack/attire/internal/tui"
)

func curateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curate [prompt...]",
		Short: "Curate outfits from a catalog",
		Long: `Curate ranked, priced outfits from a clothing catalog.

The prompt describes what you're dressing for; the occasion is derived from
it unless given explicitly. The catalog comes from --catalog or, if omitted,
from the locally imported catalog (see 'attire catalog import').`,
		RunE: runCurate,
	}

	cmd.Flags().StringP("catalog", "c", "", "Path to a catalog JSON file (defaults to the imported catalog)")
	cmd.Flags().StringP("occasion", "o", "", "Occasion (casual, business, festival, formal, vacation)")
	cmd.Flags().StringP("gender", "g", "", "Gender preference, carried on the request")
	cmd.Flags().Float64P("budget", "b", 0, "Maximum price per item; items above it are excluded")
	cmd.Flags().StringSlice("keywords", []string{}, "Style keywords (comma-separated)")
	cmd.Flags().Bool("json", false, "Emit the response as JSON")
	cmd.Flags().BoolP("interactive", "i", false, "Browse results in an interactive viewer")

	_ = viper.BindPFlag("curate.catalog", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("curate.occasion", cmd.Flags().Lookup("occasion"))

	return cmd
}

func runCurate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	items, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	req := model.Request{
		Prompt:   strings.Join(args, " "),
		Occasion: viper.GetString("curate.occasion"),
	}
	req.Gender, _ = cmd.Flags().GetString("gender")
	req.StyleKeywords, _ = cmd.Flags().GetStringSlice("keywords")

	if cmd.Flags().Changed("budget") {
		budget, _ := cmd.Flags().GetFloat64("budget")
		req.Budget = &budget
	}

	eng := engine.NewDefault()
	resp, err := eng.Curate(ctx, req, items)
	if err != nil {
		return fmt.Errorf("curation failed: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resp)
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		return tui.Run(resp.Outfits)
	}

	if len(resp.Outfits) == 0 {
		fmt.Println(cli.FormatWarning("No outfits could be assembled from this catalog. Try a broader catalog or a different occasion."))
		return nil
	}

	for _, o := range resp.Outfits {
		fmt.Println(cli.RenderOutfit(o))
		fmt.Println()
	}

	return nil
}

// loadCatalog reads items from --catalog when given, otherwise from the
// locally imported catalog.
func loadCatalog(cmd *cobra.Command) ([]model.Item, error) {
	if path := viper.GetString("curate.catalog"); path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-supplied path
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		return catalog.ParseItems(data)
	}

	store, err := initStorage(cmd.Context())
	if err != nil {
		return nil, err
	}
	defer store.Close()

	items, err := store.ListItems(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to load imported catalog: %w", err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no catalog available: pass --catalog or run 'attire catalog import' first")
	}

	return items, nil
}
