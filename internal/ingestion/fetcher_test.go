package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const samplePage = `<html>
<head><title>Ignored</title><script>var hidden = 1;</script></head>
<body><main><h1>Edge Functions</h1><p>Run code close to your users.</p></main></body>
</html>`

func TestFetcher_FetchText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), "")

	text, err := fetcher.FetchText(context.Background(), server.URL+"/docs")
	if err != nil {
		t.Fatalf("FetchText failed: %v", err)
	}
	if !strings.Contains(text, "Edge Functions") || !strings.Contains(text, "close to your users") {
		t.Errorf("body text missing: %q", text)
	}
	if strings.Contains(text, "<") || strings.Contains(text, "hidden") {
		t.Errorf("markup or head content leaked into text: %q", text)
	}

	if _, err := fetcher.FetchText(context.Background(), server.URL+"/missing"); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestFetcher_RenderProxy(t *testing.T) {
	var proxied string
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = r.URL.Query().Get("url")
		w.Write([]byte("<html><body>rendered</body></html>"))
	}))
	defer proxy.Close()

	fetcher := NewFetcher(proxy.Client(), proxy.URL)

	text, err := fetcher.FetchText(context.Background(), "https://spa.example/docs")
	if err != nil {
		t.Fatalf("FetchText failed: %v", err)
	}
	if proxied != "https://spa.example/docs" {
		t.Errorf("proxy received url %q", proxied)
	}
	if text != "rendered" {
		t.Errorf("got %q, want rendered", text)
	}
}
