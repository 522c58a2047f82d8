package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anirudh-why/SmartSkin/internal/output"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze product ingredients",
	Long: `Score an ingredient list against each skin type, either from
text or extracted from a product label photo.

Examples:
  skinctl analyze ingredients "aqua, glycerin, niacinamide"
  skinctl analyze ingredients --file label.txt
  skinctl analyze image label.jpg`,
}

var analyzeIngredientsCmd = &cobra.Command{
	Use:   "ingredients [text]",
	Short: "Analyze an ingredient list",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyzeIngredients,
}

var analyzeImageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Extract and analyze ingredients from a label photo",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyzeImage,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.AddCommand(analyzeIngredientsCmd)
	analyzeCmd.AddCommand(analyzeImageCmd)

	analyzeIngredientsCmd.Flags().String("file", "", "read the ingredient list from a file")
	analyzeIngredientsCmd.Flags().Bool("json", false, "output as JSON")
	analyzeImageCmd.Flags().Bool("json", false, "output as JSON")
}

func runAnalyzeIngredients(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	var text string
	if len(args) > 0 {
		text = args[0]
	}
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return &output.CLIError{
				Summary:  "cannot read ingredient file",
				Detail:   err.Error(),
				ExitCode: output.ExitUsageError,
			}
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return &output.CLIError{
			Summary:    "no ingredients to analyze",
			Suggestion: "Pass the list as an argument or with --file",
			ExitCode:   output.ExitUsageError,
		}
	}

	client := newAPIClient()
	result, err := client.AnalyzeIngredients(context.Background(), text)
	if err != nil {
		return &output.CLIError{
			Summary:  "analysis failed",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}
	if !result.Success {
		return &output.CLIError{
			Summary:  "analysis failed",
			Detail:   result.Error,
			ExitCode: output.ExitAPIError,
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	renderSuitability(printer, result.SuitabilityScores, result.BestFor)
	printer.PrintHints("analyze")
	return nil
}

func runAnalyzeImage(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	path := args[0]
	image, err := os.ReadFile(path)
	if err != nil {
		return &output.CLIError{
			Summary:  "cannot read image",
			Detail:   err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	client := newAPIClient()
	result, err := client.AnalyzeImage(context.Background(), image, mimeType)
	if err != nil {
		return &output.CLIError{
			Summary:  "image analysis failed",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}
	if !result.Success {
		return &output.CLIError{
			Summary:  "could not extract ingredients from the image",
			Detail:   result.Error,
			ExitCode: output.ExitAPIError,
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer.Header("Extracted Ingredients")
	printer.Print("%s", result.Ingredients)
	renderSuitability(printer, result.SuitabilityScores, result.BestFor)
	printer.PrintHints("analyze")
	return nil
}

// renderSuitability prints per-skin-type scores, best match first.
func renderSuitability(printer *output.Printer, scores map[string]float64, bestFor string) {
	printer.Header("Suitability by Skin Type")

	types := make([]string, 0, len(scores))
	for name := range scores {
		types = append(types, name)
	}
	sort.Slice(types, func(i, j int) bool {
		if scores[types[i]] != scores[types[j]] {
			return scores[types[i]] > scores[types[j]]
		}
		return types[i] < types[j]
	})

	table := output.NewQuietTable([]string{"SKIN TYPE", "SCORE", ""}, printer.IsQuiet())
	for _, name := range types {
		marker := ""
		if name == bestFor {
			marker = printer.StatusBadge("suitable") + " best match"
		}
		table.AddRow([]string{name, fmt.Sprintf("%.2f", scores[name]), marker})
	}
	table.Render()
}
