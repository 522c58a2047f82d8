package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anirudh-why/SmartSkin/internal/assessment"
	"github.com/anirudh-why/SmartSkin/internal/output"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Take the skin-type assessment quiz",
	Long: `Answer 5 questions to determine your skin type and concerns.

The quiz runs entirely locally. Pass --save to store the resulting
profile as your account preferences (requires login).

Examples:
  skinctl assess                     # Interactive quiz
  skinctl assess --answers 0,1,2,0,3 # Non-interactive
  skinctl assess --save              # Save the profile afterwards`,
	Args: cobra.NoArgs,
	RunE: runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().String("answers", "", "comma-separated option indexes, one per question")
	assessCmd.Flags().Bool("save", false, "save the profile to your account preferences")
}

func runAssess(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	quiz := assessment.NewQuiz()

	answersFlag, _ := cmd.Flags().GetString("answers")
	if answersFlag != "" {
		if err := applyAnswers(quiz, answersFlag); err != nil {
			return &output.CLIError{
				Summary:    "invalid answers",
				Detail:     err.Error(),
				Suggestion: "Pass one option index per question, e.g. --answers 0,1,2,0,3",
				ExitCode:   output.ExitUsageError,
			}
		}
	} else {
		if err := runInteractiveQuiz(cmd, printer, quiz); err != nil {
			return err
		}
	}

	profile, err := quiz.Result()
	if err != nil {
		return err
	}

	printer.Header("Your Skin Assessment Results")
	printer.Print("Skin type: %s", printer.Bold(profile.SkinType))
	if len(profile.Concerns) > 0 {
		printer.Print("Concerns:  %s", strings.Join(profile.Concerns, ", "))
	} else {
		printer.Print("Concerns:  none detected")
	}

	save, _ := cmd.Flags().GetBool("save")
	if !save {
		printer.Info("\nRun with --save to store this profile on your account")
		printer.PrintHints("assess")
		return nil
	}

	ctx := context.Background()
	store, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}
	if err := store.UpdatePreferences(ctx, profile.Preferences()); err != nil {
		return &output.CLIError{
			Summary:  "failed to save assessment results",
			Detail:   err.Error(),
			ExitCode: output.ExitAPIError,
		}
	}

	printer.Success("Profile saved to your preferences")
	printer.PrintHints("assess")
	return nil
}

// applyAnswers feeds a comma-separated index list into the quiz.
func applyAnswers(quiz *assessment.Quiz, raw string) error {
	parts := strings.Split(raw, ",")
	_, total := quiz.Progress()
	if len(parts) != total {
		return fmt.Errorf("expected %d answers, got %d", total, len(parts))
	}
	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("answer %q is not a number", part)
		}
		if err := quiz.Answer(idx); err != nil {
			return err
		}
	}
	return nil
}

// runInteractiveQuiz walks the questions one at a time on the terminal.
func runInteractiveQuiz(cmd *cobra.Command, printer *output.Printer, quiz *assessment.Quiz) error {
	for {
		question, ok := quiz.Current()
		if !ok {
			return nil
		}

		answered, total := quiz.Progress()
		printer.Header(fmt.Sprintf("Question %d of %d", answered+1, total))
		printer.Print("%s", question.Prompt)
		for i, opt := range question.Options {
			printer.Print("  [%d] %s", i, opt.Text)
		}

		raw, err := readLine(cmd, "Answer")
		if err != nil {
			return err
		}
		idx, err := strconv.Atoi(raw)
		if err != nil {
			printer.Warning("Enter the number of an option")
			continue
		}
		if err := quiz.Answer(idx); err != nil {
			printer.Warning("%v", err)
		}
	}
}
