package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"newscrub/app/record"
)

// Fetcher acquires raw records from an RSS/Atom feed. Field values are
// carried over as scraped; normalization is the cleaner's job, so the
// published date in particular stays the raw feed string.
type Fetcher struct {
	parser     *gofeed.Parser
	httpClient *http.Client
	userAgent  string
}

func NewFetcher(userAgent string) *Fetcher {
	return &Fetcher{
		parser:    gofeed.NewParser(),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Run fetches feedURL and maps its items to raw records.
func (f *Fetcher) Run(ctx context.Context, feedURL string) ([]record.Record, error) {
	data, err := fetch(ctx, f.httpClient, f.userAgent, feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	return f.Parse(data)
}

// Parse maps feed items to raw records.
func (f *Fetcher) Parse(data []byte) ([]record.Record, error) {
	feed, err := f.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	records := make([]record.Record, 0, len(feed.Items))
	for _, item := range feed.Items {
		rec := record.Record{}
		if item.Title != "" {
			rec[record.FieldHeading] = item.Title
		}
		if content := coalesce(item.Content, item.Description); content != "" {
			rec[record.FieldContent] = content
		}
		if item.Link != "" {
			rec[record.FieldURL] = item.Link
		}
		if item.Published != "" {
			rec[record.FieldPubDate] = item.Published
		}
		if guid := coalesce(item.GUID, item.Link); guid != "" {
			rec[record.FieldGUID] = guid
		}
		records = append(records, rec)
	}
	return records, nil
}

func fetch(ctx context.Context, client *http.Client, userAgent, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// coalesce returns the first non-empty string from the provided values
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
