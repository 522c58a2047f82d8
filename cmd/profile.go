package cmd

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anirudh-why/SmartSkin/internal/api"
	"github.com/anirudh-why/SmartSkin/internal/output"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your skin profile",
	Long: `Display the skin profile stored on your account.

Examples:
  skinctl profile
  skinctl profile set --skin-type Dry --concern Dryness --concern Redness`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update your skin profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileSet,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)

	profileCmd.Flags().Bool("json", false, "output as JSON")

	profileSetCmd.Flags().String("skin-type", "", "skin type to store")
	profileSetCmd.Flags().StringSlice("concern", nil, "skin concern (repeatable)")
}

func runProfile(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := context.Background()

	store, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	identity := store.Identity()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(identity)
	}

	printer.Header("Skin Profile")
	printer.Print("Email: %s", identity.Email)
	if identity.Name != "" {
		printer.Print("Name:  %s", identity.Name)
	}
	if identity.Preferences == nil || identity.Preferences.SkinType == "" {
		printer.Warning("No skin profile stored yet")
		printer.Info("Run 'skinctl assess --save' to create one")
		return nil
	}
	printer.Print("Skin type: %s", printer.Bold(identity.Preferences.SkinType))
	if len(identity.Preferences.SkinConcerns) > 0 {
		printer.Print("Concerns:  %s", strings.Join(identity.Preferences.SkinConcerns, ", "))
	}
	printer.PrintHints("profile")
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := context.Background()

	skinType, _ := cmd.Flags().GetString("skin-type")
	concerns, _ := cmd.Flags().GetStringSlice("concern")
	if skinType == "" && len(concerns) == 0 {
		return &output.CLIError{
			Summary:    "nothing to update",
			Suggestion: "Pass --skin-type and/or --concern, or run 'skinctl assess --save'",
			ExitCode:   output.ExitUsageError,
		}
	}

	store, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	// Start from the stored profile so a partial update keeps the rest.
	prefs := api.Preferences{SkinType: skinType, SkinConcerns: concerns}
	if identity := store.Identity(); identity != nil && identity.Preferences != nil {
		if prefs.SkinType == "" {
			prefs.SkinType = identity.Preferences.SkinType
		}
		if len(prefs.SkinConcerns) == 0 {
			prefs.SkinConcerns = identity.Preferences.SkinConcerns
		}
	}

	if err := store.UpdatePreferences(ctx, prefs); err != nil {
		return &output.CLIError{
			Summary:  "failed to update profile",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	printer.Success("Profile updated")
	return nil
}
