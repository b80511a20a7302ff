package webPreview

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/prettier"
	"github.gatech.edu/ECEInnovation/Thumb-Prettier/util"
)

// The preview lets people try the formatter without an editor integration:
// a small page posts the pasted source over a websocket and shows the
// formatted text and diagnostics that come back.

type request struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type response struct {
	Type        string                `json:"type"`
	Text        string                `json:"text,omitempty"`
	Diagnostics []prettier.Diagnostic `json:"diagnostics,omitempty"`
}

// NewHandler returns the preview page on "/" and the websocket on "/ws".
func NewHandler(formatter *prettier.Formatter) http.Handler {
	if formatter == nil {
		formatter = prettier.New(prettier.DefaultOptions())
	}

	var upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	socketHandler := func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}
		defer conn.Close()

		wsMutex := sync.Mutex{}
		send := func(resp response) {
			wsMutex.Lock()
			defer wsMutex.Unlock()
			if err := conn.WriteJSON(resp); err != nil {
				log.Println("write:", err)
			}
		}

		for {
			_, messageBytes, err := conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Println("read:", err)
				}
				return
			}

			message := request{}
			if err := json.Unmarshal(messageBytes, &message); err != nil {
				send(response{Type: "error", Text: "invalid message: " + err.Error()})
				continue
			}

			util.LogF("Thumb Prettier Preview: received %s request", message.Type)
			switch message.Type {
			case "format":
				formatted, err := formatter.Format(message.Text)
				if err != nil {
					send(response{Type: "error", Text: err.Error()})
					continue
				}
				send(response{Type: "formatted", Text: formatted})
			case "check":
				diagnostics, err := formatter.Check(message.Text)
				if err != nil {
					send(response{Type: "error", Text: err.Error()})
					continue
				}
				send(response{Type: "diagnostics", Diagnostics: diagnostics})
			default:
				send(response{Type: "error", Text: "unknown message type: " + message.Type})
			}
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", socketHandler)
	mux.HandleFunc("/", handleGetPage)
	return mux
}

// RunWebserver serves the preview on addr until the listener fails.
func RunWebserver(addr string, formatter *prettier.Formatter) error {
	log.Printf("Connect to the formatter preview at http://localhost%s", addr)
	return http.ListenAndServe(addr, NewHandler(formatter))
}

func handleGetPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(htmlPage))
}

var htmlPage = `<html>
<head>
	<title>Thumb Prettier</title>
</head>
<body style="background-color: #1E1E1E;">
	<h1 style="color: white; display: inline-block;">Thumb Prettier</h1>
	<button id="formatButton" style="margin-left: 50px; height: 40px; width: 80px;">FORMAT</button>
	<br/>
	<textarea id="source" spellcheck="false" style="width: 980px; height: 300px; color: white; background-color: black; font-family: monospace; tab-size: 8;"></textarea>
	<h2 style="color: white;">Formatted</h2>
	<pre id="output" style="width: 980px; padding: 10px; color: white; font-family: monospace; background-color: black; min-height: 300px; border: 2px solid white; tab-size: 8;"></pre>
	<h2 style="color: white;">Diagnostics</h2>
	<div id="diagnostics" style="width: 980px; color: #E5C07B; font-family: monospace;"></div>

	<script>
		var socket = new WebSocket("ws://" + window.location.host + "/ws");

		socket.onopen = function() {
			socket.onmessage = function(event) {
				var data = JSON.parse(event.data);
				if (data.type == "formatted") {
					document.getElementById("output").textContent = data.text;
				} else if (data.type == "diagnostics") {
					var lines = (data.diagnostics || []).map(function(d) {
						return (d.range.start.line + 1) + ":" + d.range.start.character + ": " + d.message;
					});
					document.getElementById("diagnostics").textContent = lines.join("\n");
				} else if (data.type == "error") {
					document.getElementById("diagnostics").textContent = data.text;
				}
			};
		};

		// when the socket closes, try to reconnect every 3 seconds
		socket.onclose = function() {
			setTimeout(function() {
				socket = new WebSocket("ws://" + window.location.host + "/ws");
			}, 3000);
		};

		document.getElementById("formatButton").onclick = function() {
			var text = document.getElementById("source").value;
			socket.send(JSON.stringify({type: "format", text: text}));
			socket.send(JSON.stringify({type: "check", text: text}));
		};
	</script>
</body>
</html>`
