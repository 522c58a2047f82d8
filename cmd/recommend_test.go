package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/anirudh-why/SmartSkin/internal/output"
)

func setupRecommendTest(t *testing.T, baseURL string) {
	t.Helper()
	setupCmdTest(t, baseURL)
	recommendCmd.Flags().Set("skin-type", "")
	recommendCmd.Flags().Set("meta", "false")
	recommendCmd.Flags().Set("json", "false")
}

func TestRecommend_WithSkinType(t *testing.T) {
	server := newStubAPI(t)
	setupRecommendTest(t, server.URL)

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"recommend", "--skin-type", "Dry", "--concern", "Dryness"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
}

func TestRecommend_MissingSkinType(t *testing.T) {
	server := newStubAPI(t)
	setupRecommendTest(t, server.URL)

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"recommend"})

	err := rootCmd.Execute()
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) || cliErr.ExitCode != output.ExitUsageError {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestAnalyzeIngredients_NoInput(t *testing.T) {
	setupCmdTest(t, "")

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"analyze", "ingredients"})

	err := rootCmd.Execute()
	var cliErr *output.CLIError
	if !errors.As(err, &cliErr) || cliErr.ExitCode != output.ExitUsageError {
		t.Errorf("expected usage error, got %v", err)
	}
}
