package languageServer

import (
	"strings"
	"testing"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
)

const hoverSource = `main:
    movs  r0, #1
loop:
    subs  r0, r0, #1
    bne   loop			@ spin`

func TestWordAt(t *testing.T) {
	tests := []struct {
		line  string
		char  int
		word  string
		start int
	}{
		{"    subs  r0, r0, #1", 5, "subs", 4},
		{"    subs  r0, r0, #1", 10, "r0", 10},
		{"    subs  r0, r0, #1", 12, "r0", 10},
		{"    subs  r0, r0, #1", 13, "", 13},
		{"main:", 5, "main:", 0},
		{"", 0, "", 0},
		{"abc", 9, "", 0},
	}
	for _, tc := range tests {
		word, start := wordAt(tc.line, tc.char)
		if word != tc.word || (word != "" && start != tc.start) {
			t.Errorf("wordAt(%q, %d) = (%q, %d), expected (%q, %d)", tc.line, tc.char, word, start, tc.word, tc.start)
		}
	}
}

func TestEvaluateHover(t *testing.T) {
	tests := []struct {
		name     string
		position prettier.TextPosition
		contains string
	}{
		{"Mnemonic", prettier.TextPosition{Line: 1, Char: 5}, "Move Instruction"},
		{"LabelDefinition", prettier.TextPosition{Line: 2, Char: 1}, "Definition of label `loop`"},
		{"LabelReference", prettier.TextPosition{Line: 4, Char: 11}, "Defined on line 3"},
	}
	for _, tc := range tests {
		text, ok := evaluateHover(hoverSource, tc.position)
		if !ok {
			t.Errorf("[%s] expected a hover", tc.name)
			continue
		}
		if !strings.Contains(text, tc.contains) {
			t.Errorf("[%s] expected hover to contain %q, got %q", tc.name, tc.contains, text)
		}
	}

	misses := []prettier.TextPosition{
		{Line: 1, Char: 11},  // register
		{Line: 4, Char: 20},  // inside the comment
		{Line: 40, Char: 0},  // past the end
		{Line: 3, Char: 100}, // past the line
	}
	for _, position := range misses {
		if text, ok := evaluateHover(hoverSource, position); ok {
			t.Errorf("Expected no hover at %+v, got %q", position, text)
		}
	}
}

func TestFindLabels(t *testing.T) {
	labels := findLabels(hoverSource)
	if len(labels) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(labels))
	}
	if labels[0].name != "main" || labels[0].line != 0 {
		t.Errorf("Unexpected first label %+v", labels[0])
	}
	if labels[1].name != "loop" || labels[1].line != 2 {
		t.Errorf("Unexpected second label %+v", labels[1])
	}
}
