package prettier

import (
	"errors"
	"regexp"
	"strings"
)

var reMnemonicLike = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(\.[A-Za-z]+)?$`)

// Check formats source with the default options and reports what differs.
func Check(source string) ([]Diagnostic, error) {
	return defaultFormatter.Check(source)
}

// Check reports every line that Format would change, and code lines whose
// first token is not a known mnemonic. When formatting itself fails the
// returned diagnostics point at the offending line.
func (f *Formatter) Check(source string) ([]Diagnostic, error) {
	lines := strings.Split(source, "\n")
	formatted, err := f.FormatLines(lines)
	if err != nil {
		var inv *InvariantError
		if errors.As(err, &inv) && inv.Line > 0 && inv.Line <= len(lines) {
			r := LineRange(inv.Line-1, lines[inv.Line-1])
			return []Diagnostic{Errors.Internal(err, r)}, err
		}
		return nil, err
	}

	diagnostics := make([]Diagnostic, 0)
	comments := commentTracker{}
	for i, line := range lines {
		if formatted[i] != line {
			r, _ := AdjustRange(LineRange(i, line), line)
			if r.End.Char < r.Start.Char {
				r = LineRange(i, line)
			}
			diagnostics = append(diagnostics, Errors.UnformattedLine(r))
		}

		comments.handle(line)
		if comments.isComment() {
			comments.render()
			continue
		}
		if mnemonic, r, ok := unknownMnemonic(i, line); ok {
			diagnostics = append(diagnostics, Errors.UnknownMnemonic(mnemonic, r))
		}
	}
	return diagnostics, nil
}

func unknownMnemonic(lineNumber int, line string) (string, TextRange, bool) {
	if IsNotInstruction(line) || IsLabel(line) || IsInstructionFormat(line) {
		return "", TextRange{}, false
	}

	tokens := strings.Fields(line)
	first := tokens[0]
	if strings.HasSuffix(first, ":") || !reMnemonicLike.MatchString(first) {
		return "", TextRange{}, false
	}
	// symbol assignments such as "STACK_TOP = 0x20001000"
	if len(tokens) > 1 && strings.HasPrefix(tokens[1], "=") {
		return "", TextRange{}, false
	}

	start := leadingIndent(line)
	return first, TextRange{
		Start: TextPosition{Line: lineNumber, Char: start},
		End:   TextPosition{Line: lineNumber, Char: start + len(first)},
	}, true
}
