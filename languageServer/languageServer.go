package languageServer

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"os"

	"github.com/sourcegraph/jsonrpc2"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
	"github.gatech.edu/ECEInnovation/Thumb-Prettier/util"
)

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// ListenAndServe serves a single client over stdin and stdout until it
// disconnects.
func ListenAndServe(formatter *prettier.Formatter) {
	h := NewHandler(formatter)
	<-jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}), h).DisconnectNotify()
}

// ListenAndServeTCP accepts clients on addr, each with its own document set,
// so the server can be attached to remotely for debugging.
func ListenAndServeTCP(addr string, formatter *prettier.Formatter) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer lis.Close()

	log.Println("Thumb Prettier Language Server: listening for TCP connections on", addr)

	connectionCount := 0

	for {
		conn, err := lis.Accept()
		if err != nil {
			return err
		}
		connectionCount = connectionCount + 1
		connectionID := connectionCount
		log.Printf("Thumb Prettier Language Server: received incoming connection #%d\n", connectionID)
		jsonrpc2Connection := jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}), NewHandler(formatter))
		go func() {
			<-jsonrpc2Connection.DisconnectNotify()
			log.Printf("Thumb Prettier Language Server: connection #%d closed\n", connectionID)
		}()
	}
}

type handler struct {
	documents *documentStore
	formatter *prettier.Formatter
}

// NewHandler returns the request handler for one client connection.
func NewHandler(formatter *prettier.Formatter) jsonrpc2.Handler {
	if formatter == nil {
		formatter = prettier.New(prettier.DefaultOptions())
	}
	return handler{documents: newDocumentStore(), formatter: formatter}
}

func (h handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	util.LogF("Thumb Prettier Language Server: received request: %s", req.Method)
	switch req.Method {
	case "textDocument/didOpen":
		h.documentOpenNotification(ctx, conn, req)
	case "textDocument/didClose":
		h.documentCloseNotification(ctx, conn, req)
	case "textDocument/didChange":
		h.documentChangeNotification(ctx, conn, req)
	case "initialize":
		handleInitialize(ctx, conn, req)
	case "initialized":
		// nothing to do, capabilities are registered after initialize
	case "textDocument/diagnostic":
		h.documentDiagnostics(ctx, conn, req)
	case "textDocument/formatting":
		h.documentFormatting(ctx, conn, req)
	case "textDocument/willSaveWaitUntil":
		h.documentWillSaveWaitUntil(ctx, conn, req)
	case "textDocument/hover":
		h.hoverRequest(ctx, conn, req)
	case "textDocument/documentSymbol":
		h.documentSymbolRequest(ctx, conn, req)

	// quitting
	case "shutdown":
		conn.Reply(ctx, req.ID, nil)
	case "exit":
		conn.Close()

	default:
		if !req.Notif {
			conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeMethodNotFound,
				Message: "method not supported: " + req.Method,
			})
		}
	}
}

// decodeParams unmarshals the request parameters into v, replying with an
// error to the client when they are missing or malformed.
func decodeParams(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request, v interface{}) bool {
	if req.Params != nil && json.Unmarshal(*req.Params, v) == nil {
		return true
	}

	if !req.Notif {
		rpcErr := jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "invalid parameters"}
		rpcErr.SetError(req.Method)
		conn.ReplyWithError(ctx, req.ID, &rpcErr)
	}
	return false
}

func handleInitialize(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := InitializeParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	result := InitializeResult{}
	result.Capabilities.TextDocumentSync = 1
	result.Capabilities.HoverProvider = true
	result.Capabilities.DocumentFormattingProvider = true
	result.Capabilities.DocumentSymbolProvider = true
	result.Capabilities.DiagnosticProvider = &DiagnosticOptions{}
	conn.Reply(ctx, req.ID, result)

	registerRemainingCapabilities(conn)
}

func registerRemainingCapabilities(conn *jsonrpc2.Conn) {
	// textDocumentSync.willSaveWaitUntil can only be registered dynamically
	util.LogF("Thumb Prettier Language Server: registering remaining capabilities")
	params := RegistrationParams{
		Registrations: []Registration{
			{
				ID:     "textDocumentSync.willSaveWaitUntil",
				Method: "textDocument/willSaveWaitUntil",
				RegisterOptions: TextDocumentRegistrationOptions{
					DocumentSelector: []DocumentFilter{
						{
							Scheme:  "file",
							Pattern: "**/*.{s,S,asm}",
						},
					},
				},
			},
		},
	}

	go conn.Call(context.Background(), "client/registerCapability", params, nil)
	util.LogF("Thumb Prettier Language Server: registered remaining capabilities")
}
