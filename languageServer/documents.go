package languageServer

import (
	"context"
	"strings"
	"sync"

	"github.com/sourcegraph/jsonrpc2"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
	"github.gatech.edu/ECEInnovation/Thumb-Prettier/util"
)

type documentStore struct {
	mu        sync.Mutex
	documents map[DocumentUri]TextDocumentItem
}

func newDocumentStore() *documentStore {
	return &documentStore{documents: make(map[DocumentUri]TextDocumentItem)}
}

func (s *documentStore) get(uri DocumentUri) (TextDocumentItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[uri]
	return doc, ok
}

func (s *documentStore) put(doc TextDocumentItem) {
	s.mu.Lock()
	s.documents[doc.URI] = doc
	s.mu.Unlock()
}

func (s *documentStore) remove(uri DocumentUri) {
	s.mu.Lock()
	delete(s.documents, uri)
	s.mu.Unlock()
}

func (h handler) diagnose(uri DocumentUri) []prettier.Diagnostic {
	doc, _ := h.documents.get(uri)

	diagnostics, err := h.formatter.Check(doc.Text)
	if err != nil {
		util.LogF("Thumb Prettier Language Server: checking %s failed: %v", uri, err)
	}
	if diagnostics == nil {
		diagnostics = make([]prettier.Diagnostic, 0)
	}
	return diagnostics
}

func (h handler) publishDiagnostics(ctx context.Context, conn *jsonrpc2.Conn, doc TextDocumentItem) {
	conn.Notify(ctx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     doc.Version,
		Diagnostics: h.diagnose(doc.URI),
	})
}

func (h handler) documentOpenNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidOpenTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	h.documents.put(decodedParams.TextDocument)
	h.publishDiagnostics(ctx, conn, decodedParams.TextDocument)
}

func (h handler) documentCloseNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidCloseTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	h.documents.remove(decodedParams.TextDocument.URI)
}

func (h handler) documentChangeNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidChangeTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}
	if len(decodedParams.ContentChanges) == 0 {
		return
	}

	doc, _ := h.documents.get(decodedParams.TextDocument.URI)
	doc.URI = decodedParams.TextDocument.URI
	// full sync: the last change holds the whole document
	doc.Text = decodedParams.ContentChanges[len(decodedParams.ContentChanges)-1].Text
	doc.Version = decodedParams.TextDocument.Version
	h.documents.put(doc)

	h.publishDiagnostics(ctx, conn, doc)
}

func (h handler) documentDiagnostics(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentDiagnosticsParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	conn.Reply(ctx, req.ID, DocumentDiagnosticsReport{
		Kind:  "full",
		Items: h.diagnose(decodedParams.TextDocument.URI),
	})
}

// reformatDocument returns the edits turning the stored document into its
// formatted form: nothing when it is already formatted, otherwise a single
// edit replacing the whole text.
func (h handler) reformatDocument(uri DocumentUri) ([]TextEdit, error) {
	doc, _ := h.documents.get(uri)

	formatted, err := h.formatter.Format(doc.Text)
	if err != nil {
		return nil, err
	}

	edits := make([]TextEdit, 0)
	if formatted == doc.Text {
		return edits, nil
	}

	lines := strings.Split(doc.Text, "\n")
	edits = append(edits, TextEdit{
		Range: prettier.TextRange{
			Start: prettier.TextPosition{Line: 0, Char: 0},
			End:   prettier.TextPosition{Line: len(lines) - 1, Char: len(lines[len(lines)-1])},
		},
		NewText: formatted,
	})
	return edits, nil
}

func (h handler) replyWithEdits(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request, uri DocumentUri) {
	edits, err := h.reformatDocument(uri)
	if err != nil {
		conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeInternalError,
			Message: err.Error(),
		})
		return
	}

	conn.Reply(ctx, req.ID, edits)
	util.LogF("Thumb Prettier Language Server: reformatted %s (%d edits)", uri, len(edits))
}

func (h handler) documentFormatting(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentFormattingParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	h.replyWithEdits(ctx, conn, req, decodedParams.TextDocument.URI)
}

func (h handler) documentWillSaveWaitUntil(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DocumentWillSaveWaitUntilParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	h.replyWithEdits(ctx, conn, req, decodedParams.TextDocument.URI)
}
