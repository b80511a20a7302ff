package prettier_test

import (
	"bytes"
	"strings"
	"testing"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
)

func TestCheck(t *testing.T) {
	source := "  mov r0,r1\nnop\n    bx    lr\n"

	diagnostics, err := prettier.Check(source)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	expected := []prettier.Diagnostic{
		{
			Range:    prettier.TextRange{Start: prettier.TextPosition{Line: 0, Char: 2}, End: prettier.TextPosition{Line: 0, Char: 11}},
			Message:  "Line is not formatted",
			Severity: prettier.Information,
		},
		{
			Range:    prettier.TextRange{Start: prettier.TextPosition{Line: 1, Char: 0}, End: prettier.TextPosition{Line: 1, Char: 3}},
			Message:  "Unknown mnemonic: \"nop\"",
			Severity: prettier.Warning,
		},
	}
	validateDiagnostics(t, diagnostics, expected)
}

func TestCheckFormattedSource(t *testing.T) {
	diagnostics, err := prettier.Check(sampleProgramFormatted)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(diagnostics) != 0 {
		t.Errorf("Expected no diagnostics for formatted source, got %v", diagnostics)
	}
}

func TestCheckIgnoresSymbolsAndComments(t *testing.T) {
	source := "STACK = 0x20001000\n/*\n * frobnicate r0\n */\n@ frobnicate\nloop: b loop"
	diagnostics, err := prettier.Check(source)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	for _, d := range diagnostics {
		if d.Severity == prettier.Warning {
			t.Errorf("Expected no mnemonic warnings, got %q on line %d", d.Message, d.Range.Start.Line)
		}
	}
}

func TestAdjustRange(t *testing.T) {
	r := prettier.LineRange(3, "  foo \t")
	r, text := prettier.AdjustRange(r, "  foo \t")
	if text != "foo" {
		t.Errorf("Expected \"foo\", got %q", text)
	}
	if r.Start.Char != 2 || r.End.Char != 5 {
		t.Errorf("Expected range 2-5, got %d-%d", r.Start.Char, r.End.Char)
	}
}

func TestMnemonicInfo(t *testing.T) {
	for _, keyword := range prettier.Keywords() {
		info, ok := prettier.MnemonicInfo(strings.ToUpper(keyword))
		if !ok || info == "" {
			t.Errorf("Expected hover information for %q", keyword)
		}
	}
	if _, ok := prettier.MnemonicInfo("nop"); ok {
		t.Errorf("Expected no hover information for \"nop\"")
	}
}

func TestFormatBuffer(t *testing.T) {
	if got := prettier.FormatBuffer(nil); got != nil {
		t.Errorf("Expected nil for a nil buffer, got %q", got)
	}
	if got := prettier.FormatBuffer([]byte{0, 'm', 'o', 'v'}); got != nil {
		t.Errorf("Expected nil for a buffer starting with NUL, got %q", got)
	}

	got := prettier.FormatBuffer([]byte("mov r0,r1\n\x00garbage"))
	expected := []byte("mov   r0, r1\n\x00")
	if !bytes.Equal(got, expected) {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	got = prettier.FormatBuffer([]byte("@x"))
	if !bytes.Equal(got, []byte("@ x\x00")) {
		t.Errorf("Expected a NUL-terminated result, got %q", got)
	}
}

func validateDiagnostics(t *testing.T, diagnostics []prettier.Diagnostic, expected []prettier.Diagnostic) {
	t.Helper()

	if len(diagnostics) != len(expected) {
		t.Fatalf("Expected %d diagnostics, got %d (%v)", len(expected), len(diagnostics), diagnostics)
	}

	for i, diagnostic := range diagnostics {
		if diagnostic.Severity != expected[i].Severity {
			t.Errorf("Expected diagnostic %d to have severity %d, got %d", i, expected[i].Severity, diagnostic.Severity)
		}
		if diagnostic.Range != expected[i].Range {
			t.Errorf("Expected diagnostic %d to cover %+v, got %+v", i, expected[i].Range, diagnostic.Range)
		}
		if diagnostic.Message != expected[i].Message {
			t.Errorf("Expected diagnostic %d to be \"%s\", got \"%s\"", i, expected[i].Message, diagnostic.Message)
		}
	}
}
