package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIError_Error(t *testing.T) {
	err := &CLIError{
		Summary:    "something failed",
		Detail:     "because of reasons",
		Suggestion: "try again",
		ExitCode:   ExitGeneral,
	}

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
}

func TestFormatError_AllFields(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
	})
	p.err = &stderr

	cliErr := &CLIError{
		Summary:    "not logged in",
		Detail:     "no credential found",
		Suggestion: "Run 'skinctl login' first",
		ExitCode:   ExitAuthError,
	}

	p.FormatError(cliErr)

	out := stderr.String()
	if !strings.Contains(out, "not logged in") {
		t.Errorf("missing summary in output: %q", out)
	}
	if !strings.Contains(out, "no credential found") {
		t.Errorf("missing detail in output: %q", out)
	}
	if !strings.Contains(out, "Run 'skinctl login' first") {
		t.Errorf("missing suggestion in output: %q", out)
	}
}

func TestFormatError_NoDetail(t *testing.T) {
	var stderr bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{
		ColorMode:    ColorNever,
		ConfigColors: false,
	})
	p.err = &stderr

	cliErr := &CLIError{
		Summary:    "config file not found",
		Suggestion: "Check .skinctl.yaml syntax or use --config flag",
		ExitCode:   ExitConfigError,
	}

	p.FormatError(cliErr)

	out := stderr.String()
	if !strings.Contains(out, "config file not found") {
		t.Errorf("missing summary in output: %q", out)
	}
	if strings.Contains(out, "Cause:") {
		t.Errorf("should not contain Cause line when Detail is empty: %q", out)
	}
}

func TestExitCodes(t *testing.T) {
	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsageError != 2 {
		t.Error("exit code constants changed unexpectedly")
	}
	if ExitAPIError != 3 || ExitConfigError != 4 || ExitAuthError != 5 {
		t.Error("exit code constants changed unexpectedly")
	}
}
