package util_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/util"
)

func TestLogFPostsToEndpoint(t *testing.T) {
	received := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		received <- string(b)
	}))
	defer server.Close()

	util.SetLogEndpoint(server.URL)
	util.LoggingEnabled = true
	defer func() {
		util.LoggingEnabled = false
		util.SetLogEndpoint(util.DefaultLogEndpoint)
	}()

	util.LogF("formatted %d lines", 12)

	select {
	case msg := <-received:
		if msg != "formatted 12 lines" {
			t.Errorf("Expected message \"formatted 12 lines\", got \"%s\"", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Log message was never posted")
	}
}

func TestLogFDisabled(t *testing.T) {
	called := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called <- struct{}{}
	}))
	defer server.Close()

	util.SetLogEndpoint(server.URL)
	defer util.SetLogEndpoint(util.DefaultLogEndpoint)

	util.LogF("should not be sent")

	select {
	case <-called:
		t.Fatal("Expected no request while logging is disabled")
	case <-time.After(100 * time.Millisecond):
	}
}
