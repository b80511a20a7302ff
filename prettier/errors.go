package prettier

const diagnosticSource = "Thumb Prettier"

// AdjustRange shrinks r so it no longer covers the leading and trailing
// whitespace of text, returning the trimmed text as well.
func AdjustRange(r TextRange, text string) (TextRange, string) {
	for len(text) > 0 && (text[0] == ' ' || text[0] == '\t') {
		text = text[1:]
		r.Start.Char += 1
	}

	for len(text) > 0 && (text[len(text)-1] == ' ' || text[len(text)-1] == '\t' || text[len(text)-1] == '\r') {
		text = text[:len(text)-1]
		r.End.Char -= 1
	}

	return r, text
}

type formatError struct{}

// Errors groups the constructors of every diagnostic the checker reports.
var Errors formatError

func (formatError) UnformattedLine(r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Line is not formatted",
		Source:   diagnosticSource,
		Severity: Information,
	}
}

func (formatError) UnknownMnemonic(mnemonic string, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Unknown mnemonic: \"" + mnemonic + "\"",
		Source:   diagnosticSource,
		Severity: Warning,
	}
}

func (formatError) Internal(err error, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Formatter failure: " + err.Error(),
		Source:   diagnosticSource,
		Severity: Error,
	}
}
