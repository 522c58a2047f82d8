package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseColorMode_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"auto", ColorAuto},
		{"always", ColorAlways},
		{"never", ColorNever},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColorMode_Invalid(t *testing.T) {
	_, err := ParseColorMode("invalid")
	if err == nil {
		t.Error("expected error for invalid color mode, got nil")
	}
}

func TestResolveColors_Always(t *testing.T) {
	// Even with NO_COLOR set, ColorAlways should return true
	t.Setenv("NO_COLOR", "1")
	got := ResolveColors(ColorAlways, false)
	if !got {
		t.Error("ResolveColors(ColorAlways, false) with NO_COLOR=1 should return true")
	}
}

func TestResolveColors_Never(t *testing.T) {
	got := ResolveColors(ColorNever, true)
	if got {
		t.Error("ResolveColors(ColorNever, true) should return false")
	}
}

func TestResolveColors_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	got := ResolveColors(ColorAuto, true)
	if got {
		t.Error("ResolveColors(ColorAuto, true) with NO_COLOR set should return false")
	}
}

func TestPrinter_Quiet(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{ColorMode: ColorNever, Quiet: true})
	p.out = &out

	p.Info("hidden")
	p.Success("hidden")
	p.Print("hidden")

	if out.Len() != 0 {
		t.Errorf("quiet printer wrote output: %q", out.String())
	}
}

func TestPrinter_ErrorAlwaysPrinted(t *testing.T) {
	var errBuf bytes.Buffer
	p := NewPrinterWithOptions(PrinterOptions{ColorMode: ColorNever, Quiet: true})
	p.err = &errBuf

	p.Error("login failed")

	if !strings.Contains(errBuf.String(), "login failed") {
		t.Errorf("error message missing from stderr: %q", errBuf.String())
	}
}

func TestStatusBadge_NoColors(t *testing.T) {
	p := NewPrinter(false)
	if got := p.StatusBadge("authenticated"); got != "[authenticated]" {
		t.Errorf("StatusBadge = %q, want [authenticated]", got)
	}
}
