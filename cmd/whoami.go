package cmd

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anirudh-why/SmartSkin/internal/output"
	"github.com/anirudh-why/SmartSkin/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `Display the authenticated identity and session details.

Exits nonzero when no valid session exists.

Examples:
  skinctl whoami
  skinctl whoami --json`,
	Args: cobra.NoArgs,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("json", false, "output as JSON")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, _ := openSession(context.Background())
	identity := store.Identity()
	if identity == nil {
		return &output.CLIError{
			Summary:    "not logged in",
			Suggestion: "Run 'skinctl login' first",
			ExitCode:   output.ExitAuthError,
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(identity)
	}

	status, _ := store.Status()
	printer.Header("Session")
	printer.Print("%s %s", printer.StatusBadge(status.String()), identity.Email)
	if identity.Name != "" {
		printer.Print("Name:  %s", identity.Name)
	}
	if identity.ID != "" {
		printer.Print("ID:    %s", identity.ID)
	}
	if prefs := identity.Preferences; prefs != nil && prefs.SkinType != "" {
		printer.Print("Skin:  %s", prefs.SkinType)
		if len(prefs.SkinConcerns) > 0 {
			printer.Print("Concerns: %s", strings.Join(prefs.SkinConcerns, ", "))
		}
	}

	// Best-effort token detail; opaque tokens show nothing extra.
	if info, err := session.PeekToken(store.Token()); err == nil && !info.ExpiresAt.IsZero() {
		badge := "authenticated"
		if time.Until(info.ExpiresAt) < time.Hour {
			badge = "expiring"
		}
		printer.Print("Token: %s expires %s", printer.StatusBadge(badge),
			info.ExpiresAt.Local().Format(time.RFC822))
	}

	return nil
}
