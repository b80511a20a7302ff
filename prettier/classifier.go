package prettier

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// Both shapes are intentionally loose; input is expected to assemble already.
	reInstruction   = regexp.MustCompile(`^[A-Za-z]{1,5}\s*(\w|\W)*(\s*,\s*=?#?\w+(\s*,\s*#?\w+)?)?.*$`)
	reRegisterList  = regexp.MustCompile(`^[A-Za-z]{1,5}\s*\{(\w|\W|\d)*\}.*$`)
	defaultIndenter = indenter{width: 4}
)

// IsInstructionFormat reports whether line is an instruction this formatter
// knows how to realign.
func IsInstructionFormat(line string) bool {
	if IsNotInstruction(line) || !startsWithKeyword(line) {
		return false
	}

	trimmed := strings.TrimSpace(line)
	return reInstruction.MatchString(trimmed) || reRegisterList.MatchString(trimmed)
}

// IsNotInstruction reports lines that can never be instructions: blanks,
// directives and anything belonging to a comment.
func IsNotInstruction(line string) bool {
	stripped := strings.TrimSpace(line)

	return stripped == "" ||
		strings.HasPrefix(stripped, ".") ||
		strings.HasPrefix(stripped, "@") ||
		strings.HasPrefix(stripped, "/*") ||
		strings.Contains(stripped, "*/") ||
		strings.HasPrefix(stripped, "*")
}

func startsWithKeyword(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	return IsKeyword(tokens[0])
}

// IsLabel reports whether line consists of a single token ending in ':'.
func IsLabel(line string) bool {
	tokens := strings.Fields(line)
	return len(tokens) == 1 && strings.HasSuffix(strings.TrimSpace(tokens[0]), ":")
}

// GetAlignedIndent returns the indentation for a line whose first
// non-whitespace character sits at column, rounded up to a multiple of four.
func GetAlignedIndent(column int) string {
	return defaultIndenter.aligned(column)
}

type indenter struct {
	width int
}

func (in indenter) aligned(column int) string {
	if column <= 0 {
		return ""
	}
	rounded := (column + in.width - 1) / in.width * in.width
	return strings.Repeat(" ", rounded)
}

// leadingIndent is the byte offset of the first non-whitespace character,
// or -1 for a blank line.
func leadingIndent(line string) int {
	return strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })
}

// NormalizeCommandSpacing pads the mnemonic to the mnemonic column and joins
// the operands with ", ". Whitespace and commas in the input are discarded.
// It panics with an *InvariantError when asked to pad something that is not
// a known mnemonic.
func NormalizeCommandSpacing(command string) string {
	tokens := strings.FieldsFunc(command, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		panic(&InvariantError{Reason: "no mnemonic in instruction", Text: command})
	}

	normalized := tokens[0]
	if len(tokens) == 1 {
		return normalized
	}

	return normalized + keywordSpaces(normalized) + strings.Join(tokens[1:], ", ")
}

func keywordSpaces(keyword string) string {
	if !IsKeyword(keyword) || len(keyword) > MaxKeywordLength {
		panic(&InvariantError{Reason: "not a valid keyword", Text: keyword})
	}
	return strings.Repeat(" ", MaxKeywordLength-len(keyword))
}
