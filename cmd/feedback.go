package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/anirudh-why/SmartSkin/internal/api"
	"github.com/anirudh-why/SmartSkin/internal/output"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Rate a recommended product",
	Long: `Record your opinion of a product to improve future recommendations.

At least one of --liked, --disliked, --rating, or --review is required.

Examples:
  skinctl feedback --product-id 42 --liked
  skinctl feedback --product-id 42 --rating 4 --review "Works well" --used`,
	Args: cobra.NoArgs,
	RunE: runFeedback,
}

func init() {
	rootCmd.AddCommand(feedbackCmd)

	feedbackCmd.Flags().Int("product-id", 0, "product ID from the recommendations table")
	feedbackCmd.Flags().String("product-name", "", "product name")
	feedbackCmd.Flags().String("category", "", "product category")
	feedbackCmd.Flags().Bool("liked", false, "mark the product as liked")
	feedbackCmd.Flags().Bool("disliked", false, "mark the product as disliked")
	feedbackCmd.Flags().Int("rating", 0, "star rating from 1 to 5")
	feedbackCmd.Flags().String("review", "", "free-form review text")
	feedbackCmd.Flags().Bool("used", false, "you have actually used the product")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := context.Background()

	productID, _ := cmd.Flags().GetInt("product-id")
	if productID <= 0 {
		return &output.CLIError{
			Summary:    "product ID is required",
			Suggestion: "Find the ID in the 'skinctl recommend' table",
			ExitCode:   output.ExitUsageError,
		}
	}

	liked, _ := cmd.Flags().GetBool("liked")
	disliked, _ := cmd.Flags().GetBool("disliked")
	rating, _ := cmd.Flags().GetInt("rating")
	review, _ := cmd.Flags().GetString("review")
	used, _ := cmd.Flags().GetBool("used")

	if liked && disliked {
		return &output.CLIError{
			Summary:  "--liked and --disliked are mutually exclusive",
			ExitCode: output.ExitUsageError,
		}
	}
	if !liked && !disliked && rating == 0 && review == "" {
		return &output.CLIError{
			Summary:    "nothing to submit",
			Suggestion: "Pass at least one of --liked, --disliked, --rating, or --review",
			ExitCode:   output.ExitUsageError,
		}
	}
	if cmd.Flags().Changed("rating") && (rating < 1 || rating > 5) {
		return &output.CLIError{
			Summary:  "rating must be between 1 and 5",
			ExitCode: output.ExitUsageError,
		}
	}

	productName, _ := cmd.Flags().GetString("product-name")
	category, _ := cmd.Flags().GetString("category")

	fb := api.Feedback{
		ProductID:   productID,
		ProductName: productName,
		Category:    category,
		Review:      review,
		Used:        used,
	}
	if liked || disliked {
		fb.Liked = &liked
	}
	if cmd.Flags().Changed("rating") {
		fb.Rating = &rating
	}

	_, client, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	if err := client.SubmitFeedback(ctx, fb); err != nil {
		return &output.CLIError{
			Summary:  "failed to submit feedback",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	printer.Success("Feedback recorded, thanks")
	return nil
}
