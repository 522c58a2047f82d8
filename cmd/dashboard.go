package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/anirudh-why/SmartSkin/internal/api"
	"github.com/anirudh-why/SmartSkin/internal/output"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your account overview",
	Long: `Display your skin profile, saved routines, and recently viewed
products in one view.

Examples:
  skinctl dashboard
  skinctl dashboard --json`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().Bool("json", false, "output as JSON")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := context.Background()

	store, client, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	identity := store.Identity()

	var (
		routines []api.SavedRoutine
		history  []api.HistoryEntry
	)

	// The two lists are independent, fetch them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		routines, err = client.Routines(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = client.History(gctx, 5)
		return err
	})
	if err := g.Wait(); err != nil {
		return &output.CLIError{
			Summary:  "failed to load dashboard",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"user":     identity,
			"routines": routines,
			"history":  history,
		})
	}

	name := identity.Name
	if name == "" {
		name = identity.Email
	}
	printer.Header(fmt.Sprintf("Welcome back, %s", name))

	if identity.Preferences != nil && identity.Preferences.SkinType != "" {
		printer.Print("Skin type: %s", printer.Bold(identity.Preferences.SkinType))
		if len(identity.Preferences.SkinConcerns) > 0 {
			printer.Print("Concerns:  %s", strings.Join(identity.Preferences.SkinConcerns, ", "))
		}
	} else {
		printer.Warning("No skin profile yet, run 'skinctl assess --save'")
	}

	printer.Header(fmt.Sprintf("Saved Routines (%d)", len(routines)))
	if len(routines) == 0 {
		printer.Print("None yet, try 'skinctl routine suggest'")
	}
	for _, r := range routines {
		steps := len(r.Routine.Morning) + len(r.Routine.Evening) + len(r.Routine.Weekly)
		printer.Print("  %s %s", printer.Bold(r.Name), printer.Dim(fmt.Sprintf("(%d steps)", steps)))
	}

	printer.Header("Recently Viewed")
	if len(history) == 0 {
		printer.Print("None yet, try 'skinctl recommend'")
	}
	for _, e := range history {
		printer.Print("  [%d] %s %s", e.ProductID, e.ProductName, printer.Dim(e.Category))
	}

	printer.PrintHints("dashboard")
	return nil
}
