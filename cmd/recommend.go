package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anirudh-why/SmartSkin/internal/api"
	"github.com/anirudh-why/SmartSkin/internal/output"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get product recommendations",
	Long: `Fetch skincare product recommendations matching your criteria.

Without --skin-type, the skin type saved on your profile is used when
you are logged in.

Examples:
  skinctl recommend --skin-type Dry --concern Dryness
  skinctl recommend --skin-type Oily --category Moisturizer --allergy fragrance
  skinctl recommend --meta            # Show available filter values
  skinctl recommend --json`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().String("skin-type", "", "skin type to match")
	recommendCmd.Flags().StringSlice("concern", nil, "skin concern (repeatable)")
	recommendCmd.Flags().StringSlice("ingredient", nil, "preferred ingredient (repeatable)")
	recommendCmd.Flags().StringSlice("allergy", nil, "ingredient to avoid (repeatable)")
	recommendCmd.Flags().StringSlice("category", nil, "preferred product category (repeatable)")
	recommendCmd.Flags().Bool("meta", false, "show available filter values and exit")
	recommendCmd.Flags().Bool("json", false, "output as JSON")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := context.Background()
	client := newAPIClient()

	meta, _ := cmd.Flags().GetBool("meta")
	if meta {
		return showRecommenderMetadata(ctx, printer, client, cmd)
	}

	skinType, _ := cmd.Flags().GetString("skin-type")
	concerns, _ := cmd.Flags().GetStringSlice("concern")
	ingredients, _ := cmd.Flags().GetStringSlice("ingredient")
	allergies, _ := cmd.Flags().GetStringSlice("allergy")
	categories, _ := cmd.Flags().GetStringSlice("category")

	// Fall back to the saved profile when no skin type was given.
	if skinType == "" {
		store, _ := openSession(ctx)
		if identity := store.Identity(); identity != nil && identity.Preferences != nil {
			skinType = identity.Preferences.SkinType
			if len(concerns) == 0 {
				concerns = identity.Preferences.SkinConcerns
			}
		}
	}
	if skinType == "" {
		return &output.CLIError{
			Summary:    "skin type is required",
			Suggestion: "Pass --skin-type, or run 'skinctl assess --save' to store one",
			ExitCode:   output.ExitUsageError,
		}
	}

	products, err := client.Recommendations(ctx, api.RecommendationRequest{
		SkinType:             skinType,
		SkinConcerns:         concerns,
		PreferredIngredients: ingredients,
		Allergies:            allergies,
		PreferredCategories:  categories,
	})
	if err != nil {
		return &output.CLIError{
			Summary:  "failed to get recommendations",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	}

	if len(products) == 0 {
		printer.Warning("No products matched your criteria")
		return nil
	}

	printer.Header(fmt.Sprintf("Recommendations for %s skin", skinType))
	table := output.NewQuietTable([]string{"ID", "PRODUCT", "BRAND", "CATEGORY", "RATING", "PRICE"}, printer.IsQuiet())
	for _, p := range products {
		table.AddRow([]string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			p.Brand,
			p.Label,
			fmt.Sprintf("%.1f", p.Rating),
			fmt.Sprintf("$%.2f", p.Price),
		})
	}
	table.Render()

	printer.Info("\n%d product(s) found", len(products))
	printer.PrintHints("recommend")
	return nil
}

func showRecommenderMetadata(ctx context.Context, printer *output.Printer, client *api.Client, cmd *cobra.Command) error {
	metadata, err := client.RecommenderMetadata(ctx)
	if err != nil {
		return &output.CLIError{
			Summary:  "failed to load filter values",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(metadata)
	}

	printer.Header("Available Filters")
	printer.Print("Skin types: %s", strings.Join(metadata.SkinTypes, ", "))
	printer.Print("Concerns:   %s", strings.Join(metadata.SkinConcerns, ", "))
	printer.Print("Categories: %s", strings.Join(metadata.Categories, ", "))
	if len(metadata.CommonIngredients) > 0 {
		printer.Print("Common ingredients: %s", strings.Join(metadata.CommonIngredients, ", "))
	}
	return nil
}
