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

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Build and manage skincare routines",
	Long: `Generate a personalized routine from your skin profile, and
manage routines saved on your account.

Examples:
  skinctl routine suggest --skin-type Dry --climate cold_dry
  skinctl routine list
  skinctl routine save --name "Winter" --file routine.json`,
}

var routineSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate a personalized routine",
	RunE:  runRoutineSuggest,
}

var routineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List routines saved on your account",
	Args:  cobra.NoArgs,
	RunE:  runRoutineList,
}

var routineSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a routine to your account",
	RunE:  runRoutineSave,
}

func init() {
	rootCmd.AddCommand(routineCmd)
	routineCmd.AddCommand(routineSuggestCmd)
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineSaveCmd)

	routineSuggestCmd.Flags().String("skin-type", "", "skin type (defaults to your saved profile)")
	routineSuggestCmd.Flags().StringSlice("concern", nil, "skin concern (repeatable)")
	routineSuggestCmd.Flags().StringSlice("allergy", nil, "ingredient to avoid (repeatable)")
	routineSuggestCmd.Flags().String("climate", "mild", "climate: mild, hot_humid, or cold_dry")
	routineSuggestCmd.Flags().Int("age", 25, "age in years")
	routineSuggestCmd.Flags().Bool("with-products", false, "include product suggestions per step")
	routineSuggestCmd.Flags().Bool("meta", false, "show available attribute values and exit")
	routineSuggestCmd.Flags().Bool("json", false, "output as JSON")

	routineSaveCmd.Flags().String("name", "", "name for the saved routine")
	routineSaveCmd.Flags().String("file", "", "JSON file with the routine to save")
}

func runRoutineSuggest(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := context.Background()
	client := newAPIClient()

	meta, _ := cmd.Flags().GetBool("meta")
	if meta {
		return showRoutineMetadata(ctx, printer, client, cmd)
	}

	skinType, _ := cmd.Flags().GetString("skin-type")
	concerns, _ := cmd.Flags().GetStringSlice("concern")
	allergies, _ := cmd.Flags().GetStringSlice("allergy")
	climate, _ := cmd.Flags().GetString("climate")
	age, _ := cmd.Flags().GetInt("age")
	withProducts, _ := cmd.Flags().GetBool("with-products")

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

	routine, err := client.RoutineRecommendation(ctx, api.RoutineRequest{
		SkinType:        skinType,
		SkinConcerns:    concerns,
		Allergies:       allergies,
		Climate:         climate,
		Age:             age,
		IncludeProducts: withProducts,
	})
	if err != nil {
		return &output.CLIError{
			Summary:  "failed to generate routine",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(routine)
	}

	renderRoutineSection(printer, "Morning", routine.Morning)
	renderRoutineSection(printer, "Evening", routine.Evening)
	renderRoutineSection(printer, "Weekly", routine.Weekly)
	printer.PrintHints("routine")
	return nil
}

func renderRoutineSection(printer *output.Printer, title string, steps []api.RoutineStep) {
	if len(steps) == 0 {
		return
	}
	printer.Header(title + " Routine")
	for i, step := range steps {
		name := step.Step
		if step.Texture != "" {
			name = fmt.Sprintf("%s (%s)", name, step.Texture)
		}
		printer.Print("%d. %s", i+1, printer.Bold(name))
		if step.Frequency != "" {
			printer.Print("   Frequency: %s", step.Frequency)
		}
		if len(step.RecommendedIngredients) > 0 {
			printer.Print("   Look for:  %s", strings.Join(step.RecommendedIngredients, ", "))
		}
		if len(step.AvoidIngredients) > 0 {
			printer.Print("   Avoid:     %s", printer.Dim(strings.Join(step.AvoidIngredients, ", ")))
		}
	}
}

func showRoutineMetadata(ctx context.Context, printer *output.Printer, client *api.Client, cmd *cobra.Command) error {
	metadata, err := client.RoutineMetadata(ctx)
	if err != nil {
		return &output.CLIError{
			Summary:  "failed to load attribute values",
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

	printer.Header("Available Attributes")
	printer.Print("Skin types: %s", strings.Join(metadata.SkinTypes, ", "))
	printer.Print("Concerns:   %s", strings.Join(metadata.SkinConcerns, ", "))
	printer.Print("Climates:   %s", strings.Join(metadata.Climates, ", "))
	return nil
}

func runRoutineList(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := context.Background()

	_, client, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	routines, err := client.Routines(ctx)
	if err != nil {
		return &output.CLIError{
			Summary:  "failed to fetch routines",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	if len(routines) == 0 {
		printer.Info("No saved routines yet")
		return nil
	}

	printer.Header("Saved Routines")
	table := output.NewQuietTable([]string{"ID", "NAME", "STEPS", "CREATED"}, printer.IsQuiet())
	for _, r := range routines {
		steps := len(r.Routine.Morning) + len(r.Routine.Evening) + len(r.Routine.Weekly)
		table.AddRow([]string{r.ID, r.Name, fmt.Sprintf("%d", steps), r.CreatedAt})
	}
	table.Render()
	return nil
}

func runRoutineSave(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	ctx := context.Background()

	name, _ := cmd.Flags().GetString("name")
	file, _ := cmd.Flags().GetString("file")
	if name == "" || file == "" {
		return &output.CLIError{
			Summary:    "name and file are required",
			Suggestion: "skinctl routine save --name \"Winter\" --file routine.json",
			ExitCode:   output.ExitUsageError,
		}
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return &output.CLIError{
			Summary:  "cannot read routine file",
			Detail:   err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}
	var routine api.Routine
	if err := json.Unmarshal(data, &routine); err != nil {
		return &output.CLIError{
			Summary:    "routine file is not valid JSON",
			Detail:     err.Error(),
			Suggestion: "Generate one with 'skinctl routine suggest --json'",
			ExitCode:   output.ExitUsageError,
		}
	}

	_, client, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	saved, err := client.SaveRoutine(ctx, api.SavedRoutine{Name: name, Routine: routine})
	if err != nil {
		return &output.CLIError{
			Summary:  "failed to save routine",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	printer.Success("Routine %s saved", printer.Bold(saved.Name))
	return nil
}
