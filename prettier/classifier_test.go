package prettier_test

import (
	"errors"
	"testing"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
)

func TestIsInstructionFormat(t *testing.T) {
	instructions := []string{
		"cpsid i",
		"mov r0, r1",
		"MOV r0, r1",
		"mov r0, #5",
		"adds r0, r1, r2",
		"adds r0 , r1, #0x12",
		"push {r0-r7, lr}",
		"ldr r0, variable",
		"ldr r0, =0x20000000",
		"ldr r0, variable \t @ with comment",
		"b .exit",
		" mOV r0,  r1 ",
		"rev16 r0, r1",
	}
	for _, line := range instructions {
		if !prettier.IsInstructionFormat(line) {
			t.Errorf("Expected %q to be an instruction", line)
		}
	}

	notInstructions := []string{
		"@ rgeq",
		"  @ ireugbewufbqi",
		"",
		"   ",
		"\t",
		".thumb_func",
		"main:",
		"nop",
		"mov,r0",
		"/* push {r0}",
	}
	for _, line := range notInstructions {
		if prettier.IsInstructionFormat(line) {
			t.Errorf("Expected %q not to be an instruction", line)
		}
	}
}

func TestIsNotInstruction(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"@ this is a comment with subs and mov", true},
		{"@ comment", true},
		{"/* adds", true},
		{"/* start", true},
		{" eors */", true},
		{" * comment body with push", true},
		{" * body", true},
		{".thumb_func", true},
		{".directive", true},
		{"\n", true},
		{"", true},
		{" mov r0, r1", false},
		{"loop:", false},
	}
	for _, tc := range tests {
		if got := prettier.IsNotInstruction(tc.line); got != tc.expected {
			t.Errorf("IsNotInstruction(%q) = %v, expected %v", tc.line, got, tc.expected)
		}
	}
}

func TestKeywordCaseInsensitive(t *testing.T) {
	for _, keyword := range prettier.Keywords() {
		if len(keyword) > prettier.MaxKeywordLength {
			t.Errorf("Keyword %q is wider than the mnemonic column", keyword)
		}
		if !prettier.IsKeyword(keyword) {
			t.Errorf("Expected %q to be a keyword", keyword)
		}
	}

	if prettier.IsInstructionFormat("MOV r0, r1") != prettier.IsInstructionFormat("mov r0, r1") {
		t.Errorf("Expected keyword recognition to ignore case")
	}
	if !prettier.IsKeyword("LdRsH") {
		t.Errorf("Expected \"LdRsH\" to be a keyword")
	}
	if prettier.IsKeyword("nop") {
		t.Errorf("Expected \"nop\" not to be a keyword")
	}
}

func TestIsLabel(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"main:", true},
		{"  loop:  ", true},
		{"\t.Lfoo:", true},
		{"loop: movs r0, #1", false},
		{"loop", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range tests {
		if got := prettier.IsLabel(tc.line); got != tc.expected {
			t.Errorf("IsLabel(%q) = %v, expected %v", tc.line, got, tc.expected)
		}
	}
}

func TestGetAlignedIndent(t *testing.T) {
	tests := []struct {
		column int
		spaces int
	}{
		{0, 0},
		{1, 4},
		{3, 4},
		{4, 4},
		{5, 8},
		{8, 8},
		{9, 12},
	}
	for _, tc := range tests {
		got := prettier.GetAlignedIndent(tc.column)
		if len(got) != tc.spaces {
			t.Errorf("GetAlignedIndent(%d) has %d characters, expected %d", tc.column, len(got), tc.spaces)
		}
		for _, c := range got {
			if c != ' ' {
				t.Fatalf("GetAlignedIndent(%d) = %q, expected only spaces", tc.column, got)
			}
		}
	}
}

func TestNormalizeCommandSpacing(t *testing.T) {
	tests := []struct {
		command  string
		expected string
	}{
		{"ldr r1, r2", "ldr   r1, r2"},
		{"b        .init", "b     .init"},
		{"adds r0 , r1, r2", "adds  r0, r1, r2"},
		{"adds r0 , r1 , r2", "adds  r0, r1, r2"},
		{"adds\tr0,r1,r2\r", "adds  r0, r1, r2"},
		{"push {r4-r7,lr}", "push  {r4-r7, lr}"},
		{"cpsid i", "cpsid i"},
		{"MOVS r0, #1", "MOVS  r0, #1"},
		{"bkpt", "bkpt"},
		{"  bx   lr  ", "bx    lr"},
	}
	for _, tc := range tests {
		if got := prettier.NormalizeCommandSpacing(tc.command); got != tc.expected {
			t.Errorf("NormalizeCommandSpacing(%q) = %q, expected %q", tc.command, got, tc.expected)
		}
	}
}

func TestNormalizeCommandSpacingUnknownMnemonic(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected a panic for an unknown mnemonic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("Expected the panic value to be an error, got %T", r)
		}
		var inv *prettier.InvariantError
		if !errors.As(err, &inv) {
			t.Fatalf("Expected an InvariantError, got %v", err)
		}
		if inv.Text != "nop" {
			t.Errorf("Expected the error to name \"nop\", got %q", inv.Text)
		}
	}()

	prettier.NormalizeCommandSpacing("nop r0, r1")
}
