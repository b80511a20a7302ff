package languageServer

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/sourcegraph/jsonrpc2"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
)

type label struct {
	name string
	line int
	char int
}

// findLabels returns every label definition line of text in order.
func findLabels(text string) []label {
	labels := make([]label, 0)
	for i, line := range strings.Split(text, "\n") {
		if !prettier.IsLabel(line) {
			continue
		}
		name := strings.TrimSuffix(strings.TrimSpace(line), ":")
		labels = append(labels, label{name: name, line: i, char: strings.Index(line, name)})
	}
	return labels
}

// wordAt returns the token under char, split on whitespace and commas.
func wordAt(line string, char int) (string, int) {
	if char < 0 || char > len(line) {
		return "", 0
	}
	isSeparator := func(b byte) bool {
		return b == ',' || unicode.IsSpace(rune(b))
	}

	start := char
	for start > 0 && !isSeparator(line[start-1]) {
		start--
	}
	end := char
	for end < len(line) && !isSeparator(line[end]) {
		end++
	}
	return line[start:end], start
}

// evaluateHover returns markdown for the token under position, if any.
func evaluateHover(text string, position prettier.TextPosition) (string, bool) {
	lines := strings.Split(text, "\n")
	if position.Line < 0 || position.Line >= len(lines) {
		return "", false
	}
	line := lines[position.Line]
	if marker := strings.IndexByte(line, '@'); marker != -1 && position.Char >= marker {
		return "", false
	}

	word, start := wordAt(line, position.Char)
	if word == "" {
		return "", false
	}

	if start == strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) }) {
		if info, ok := prettier.MnemonicInfo(word); ok && prettier.IsInstructionFormat(line) {
			return info, true
		}
	}

	name := strings.TrimSuffix(word, ":")
	for _, l := range findLabels(text) {
		if l.name != name {
			continue
		}
		if l.line == position.Line {
			return fmt.Sprintf("Definition of label `%s`.", l.name), true
		}
		return fmt.Sprintf("Reference to label `%s`\n\nDefined on line %d", l.name, l.line+1), true
	}
	return "", false
}

func (h handler) hoverRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := TextDocumentPositionParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	doc, _ := h.documents.get(decodedParams.TextDocument.URI)
	text, ok := evaluateHover(doc.Text, decodedParams.Position)
	if !ok {
		conn.Reply(ctx, req.ID, nil)
		return
	}

	conn.Reply(ctx, req.ID, Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: text,
		},
	})
}

func (h handler) documentSymbolRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentSymbolParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	doc, _ := h.documents.get(decodedParams.TextDocument.URI)
	symbols := make([]DocumentSymbol, 0)
	for _, l := range findLabels(doc.Text) {
		r := prettier.TextRange{
			Start: prettier.TextPosition{Line: l.line, Char: l.char},
			End:   prettier.TextPosition{Line: l.line, Char: l.char + len(l.name) + 1},
		}
		symbols = append(symbols, DocumentSymbol{
			Name:           l.name,
			Detail:         "label",
			Kind:           SymbolKindFunction,
			Range:          r,
			SelectionRange: r,
		})
	}
	conn.Reply(ctx, req.ID, symbols)
}
