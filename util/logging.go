package util

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

const DefaultLogEndpoint = "http://localhost:8006/log"

var LoggingEnabled = false

var (
	endpointMu  sync.RWMutex
	logEndpoint = DefaultLogEndpoint
	logClient   = &http.Client{Timeout: 2 * time.Second}
)

// SetLogEndpoint changes where debug messages are posted. An empty endpoint
// sends them to the standard logger instead.
func SetLogEndpoint(endpoint string) {
	endpointMu.Lock()
	logEndpoint = endpoint
	endpointMu.Unlock()
}

func LogF(format string, args ...interface{}) {
	if !LoggingEnabled {
		return
	}
	message := fmt.Sprintf(format, args...)

	endpointMu.RLock()
	endpoint := logEndpoint
	endpointMu.RUnlock()

	if endpoint == "" {
		log.Println(message)
		return
	}
	go func() {
		resp, err := logClient.Post(endpoint, "text/plain", strings.NewReader(message))
		if err != nil {
			return
		}
		resp.Body.Close()
	}()
}
