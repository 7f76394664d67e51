package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher downloads a documentation page and extracts its visible body text.
// When a rendering proxy base URL is configured, the page is fetched through
// it so script-rendered sites return usable HTML; the rest of the pipeline is
// unaffected by which path was used.
type Fetcher struct {
	client    *http.Client
	proxyBase string
}

func NewFetcher(client *http.Client, proxyBase string) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client:    client,
		proxyBase: proxyBase,
	}
}

// FetchText downloads pageURL and returns the text content of its <body>,
// with all markup stripped.
func (f *Fetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	target := pageURL
	if f.proxyBase != "" {
		target = fmt.Sprintf("%s?url=%s", f.proxyBase, url.QueryEscape(pageURL))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", pageURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s returned status %d", pageURL, resp.StatusCode)
	}

	return extractBodyText(resp.Body)
}

func extractBodyText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	return doc.Find("body").Text(), nil
}
