package prettier

type TextPosition struct {
	Line int `json:"line"`
	Char int `json:"character"`
}

type TextRange struct {
	Start TextPosition `json:"start"`
	End   TextPosition `json:"end"`
}

type DiagnosticSeverity int

const (
	Error       DiagnosticSeverity = 1
	Warning     DiagnosticSeverity = 2
	Information DiagnosticSeverity = 3
	Hint        DiagnosticSeverity = 4
)

type Diagnostic struct {
	Range    TextRange          `json:"range"`
	Message  string             `json:"message"`
	Source   string             `json:"source,omitempty"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
}

// LineRange covers the whole of line number lineNumber (0-based).
func LineRange(lineNumber int, line string) TextRange {
	return TextRange{
		Start: TextPosition{Line: lineNumber, Char: 0},
		End:   TextPosition{Line: lineNumber, Char: len(line)},
	}
}
