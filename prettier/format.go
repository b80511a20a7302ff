package prettier

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	DefaultIndentWidth   = 4
	DefaultCommentGutter = "\t\t\t"
)

// Options tunes the output layout. Zero values select the defaults.
type Options struct {
	IndentWidth   int
	CommentGutter string
}

// DefaultOptions returns the canonical layout.
func DefaultOptions() Options {
	return Options{
		IndentWidth:   DefaultIndentWidth,
		CommentGutter: DefaultCommentGutter,
	}
}

// InvariantError reports a disagreement between the line classifier and the
// normalizer. It indicates a bug rather than bad input.
type InvariantError struct {
	Line   int // 1-based, 0 when unknown
	Reason string
	Text   string
}

func (e *InvariantError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Text)
}

// Formatter rewrites Thumb assembly source into the canonical layout. A
// Formatter holds no per-call state and may be shared between goroutines.
type Formatter struct {
	opts   Options
	indent indenter
}

func New(opts Options) *Formatter {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = DefaultIndentWidth
	}
	if opts.CommentGutter == "" {
		opts.CommentGutter = DefaultCommentGutter
	}
	return &Formatter{opts: opts, indent: indenter{width: opts.IndentWidth}}
}

var defaultFormatter = New(DefaultOptions())

// Format formats source with the default options.
func Format(source string) (string, error) {
	return defaultFormatter.Format(source)
}

// Options returns the effective options of f.
func (f *Formatter) Options() Options {
	return f.opts
}

// Format returns the formatted source. The output has exactly as many lines
// as the input; a trailing newline stays a single trailing newline.
func (f *Formatter) Format(source string) (string, error) {
	lines, err := f.FormatLines(strings.Split(source, "\n"))
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// FormatLines formats an already split source, one output entry per input
// line. A trailing empty entry is kept empty.
func (f *Formatter) FormatLines(lines []string) (out []string, err error) {
	current := 0
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		inv, ok := r.(*InvariantError)
		if !ok {
			panic(r)
		}
		inv.Line = current + 1
		out, err = nil, inv
	}()

	out = make([]string, 0, len(lines))
	comments := commentTracker{}
	for i, line := range lines {
		current = i
		if i == len(lines)-1 && line == "" {
			out = append(out, "")
			break
		}
		out = append(out, f.formatLine(&comments, line))
	}
	return out, nil
}

func (f *Formatter) formatLine(comments *commentTracker, line string) string {
	comments.handle(line)
	if comments.isComment() {
		return comments.render()
	}

	column := leadingIndent(line)
	builder := strings.Builder{}
	builder.WriteString(f.indent.aligned(column))

	if !IsInstructionFormat(line) {
		builder.WriteString(strings.TrimSpace(line))
		return builder.String()
	}

	command := line[column:]
	if marker := strings.IndexByte(command, '@'); marker != -1 {
		// whitespace before the marker is swallowed by the tokenizer
		builder.WriteString(NormalizeCommandSpacing(command[:marker]))
		builder.WriteString(f.opts.CommentGutter)
		builder.WriteString(normalizeSingleLineComment(strings.TrimRightFunc(command[marker:], unicode.IsSpace)))
		return builder.String()
	}

	builder.WriteString(NormalizeCommandSpacing(command))
	return builder.String()
}
