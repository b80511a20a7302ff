package prettier

import (
	"strings"
	"unicode"
)

type commentKind int

const (
	commentIdle commentKind = iota
	commentSingleLine
	commentMultiLine
	commentPendingBlank
)

// commentTracker follows comment regions across consecutive lines. Only
// inMultiLine survives from one line to the next; kind is recomputed by
// every call to handle.
type commentTracker struct {
	kind        commentKind
	inMultiLine bool
	line        string
}

func (c *commentTracker) handle(line string) {
	c.line = line
	c.kind = commentIdle

	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		c.kind = commentPendingBlank
	case strings.HasPrefix(trimmed, "@"):
		c.kind = commentSingleLine
	case strings.HasPrefix(line, "/*"):
		c.inMultiLine = true
	}

	if c.kind == commentIdle && c.inMultiLine {
		c.kind = commentMultiLine
	}
}

func (c *commentTracker) isComment() bool {
	return c.kind != commentIdle
}

// render returns the canonical form of the current comment line.
func (c *commentTracker) render() string {
	switch {
	case c.kind == commentPendingBlank && !c.inMultiLine:
		c.kind = commentIdle
		return ""
	case c.kind == commentSingleLine:
		c.kind = commentIdle
		return normalizeSingleLineComment(strings.TrimRightFunc(c.line, unicode.IsSpace))
	case strings.Contains(c.line, "*/"):
		c.inMultiLine = false
		return " */"
	case strings.Contains(c.line, "/*"):
		return "/*"
	case c.inMultiLine:
		body := strings.TrimSpace(c.line)
		body = strings.TrimSpace(strings.TrimPrefix(body, "*"))
		if body == "" {
			return " *"
		}
		return " * " + body
	}

	panic(&InvariantError{Reason: "comment line matched no rendering rule", Text: c.line})
}

// normalizeSingleLineComment puts a space after the first '@' unless one
// (or a second '@') is already there.
func normalizeSingleLineComment(comment string) string {
	marker := strings.IndexByte(comment, '@')
	if marker == -1 || marker == len(comment)-1 {
		return comment
	}

	switch comment[marker+1] {
	case ' ', '@':
		return comment
	}
	return comment[:marker+1] + " " + comment[marker+1:]
}
