package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()

	// flags keep their values between executions of the same command tree
	for _, name := range []string{"check", "stdout", "quiet"} {
		if err := fmtCmd.Flags().Set(name, "false"); err != nil {
			t.Fatalf("Could not reset --%s: %v", name, err)
		}
	}

	rootCmd.SetArgs(append([]string{"--color", "off"}, args...))
	return rootCmd.ExecuteContext(context.Background())
}

func TestFormatCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.s")
	if err := os.WriteFile(path, []byte("main:\n  push {r4,lr}\n"), 0o644); err != nil {
		t.Fatalf("Could not write source: %v", err)
	}

	err := runCommand(t, "format", "--check", "--quiet", path)
	if err == nil || !strings.Contains(err.Error(), "formatting changes required") {
		t.Fatalf("Expected check to fail on an unformatted file, got %v", err)
	}

	if err := runCommand(t, "format", "--quiet", path); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Could not read source: %v", err)
	}
	if expected := "main:\n    push  {r4, lr}\n"; string(b) != expected {
		t.Errorf("Expected %q, got %q", expected, b)
	}

	if err := runCommand(t, "format", "--check", path); err != nil {
		t.Errorf("Expected check to pass after formatting, got %v", err)
	}
}

func TestFormatCommandRejectsConflictingFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.s")
	if err := os.WriteFile(path, []byte("bx lr\n"), 0o644); err != nil {
		t.Fatalf("Could not write source: %v", err)
	}

	if err := runCommand(t, "format", "--check", "--stdout", path); err == nil {
		t.Errorf("Expected --check and --stdout to be rejected together")
	}
}

func TestInvalidColorMode(t *testing.T) {
	rootCmd.SetArgs([]string{"--color", "sometimes", "format", "x.s"})
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Errorf("Expected an invalid --color value to be rejected")
	}
}
