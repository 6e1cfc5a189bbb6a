// Package favicon discovers the favicon of a social link by fetching the
// page and reading its <link rel="icon"> tag. Discovery is best effort: any
// fetch or parse failure yields an empty URL and the caller saves the link
// without one.
package favicon

import (
	"context"
	"net/http"

	"github.com/PuerkitoBio/goquery"
)

type Fetcher struct {
	client *http.Client
}

func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// Fetch returns the icon href declared by the page at link, or "" when the
// page cannot be fetched, parsed, or declares no icon.
func (f *Fetcher) Fetch(ctx context.Context, link string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return ""
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	href, _ := doc.Find(`link[rel="icon"]`).Attr("href")
	return href
}
