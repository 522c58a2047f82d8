package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anirudh-why/SmartSkin/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently viewed products",
	Long: `List the products you viewed most recently, newest first.

Examples:
  skinctl history
  skinctl history --limit 20`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Int("limit", 5, "maximum number of entries")
	historyCmd.Flags().Bool("json", false, "output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := context.Background()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return &output.CLIError{
			Summary:  "limit must be positive",
			ExitCode: output.ExitUsageError,
		}
	}

	_, client, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	entries, err := client.History(ctx, limit)
	if err != nil {
		return &output.CLIError{
			Summary:  "failed to fetch history",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		printer.Info("No products viewed yet")
		return nil
	}

	printer.Header("Recently Viewed")
	table := output.NewQuietTable([]string{"ID", "PRODUCT", "CATEGORY", "VIEWED"}, printer.IsQuiet())
	for _, e := range entries {
		table.AddRow([]string{
			fmt.Sprintf("%d", e.ProductID),
			e.ProductName,
			e.Category,
			e.ViewedAt,
		})
	}
	table.Render()
	printer.PrintHints("history")
	return nil
}
