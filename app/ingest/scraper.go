package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"newscrub/app/record"
)

// Scraper builds one raw record from an article page: metadata from
// the document head, main content via readability extraction. Pages
// are fetched one at a time.
type Scraper struct {
	httpClient *http.Client
	userAgent  string
}

func NewScraper(userAgent string) *Scraper {
	return &Scraper{
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Run fetches pageURL and extracts a raw record from it.
func (s *Scraper) Run(ctx context.Context, pageURL string) (record.Record, error) {
	data, err := fetch(ctx, s.httpClient, s.userAgent, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	return s.Extract(pageURL, data)
}

// Extract pulls a raw record out of the page HTML. The content field
// keeps the extracted markup as-is; stripping it is the cleaner's job.
func (s *Scraper) Extract(pageURL string, data []byte) (record.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	rec := record.Record{
		record.FieldURL:  pageURL,
		record.FieldGUID: pageURL,
	}

	if canonical := strings.TrimSpace(doc.Find(`link[rel="canonical"]`).AttrOr("href", "")); canonical != "" {
		rec[record.FieldURL] = canonical
	}

	title := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title != "" {
		rec[record.FieldHeading] = title
	}

	if published := strings.TrimSpace(doc.Find(`meta[property="article:published_time"]`).AttrOr("content", "")); published != "" {
		rec[record.FieldPubDate] = published
	}

	parsedURL, _ := url.Parse(pageURL)
	article, err := readability.FromReader(bytes.NewReader(data), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract content: %w", err)
	}
	if article.Content != "" {
		rec[record.FieldContent] = article.Content
	}

	slog.Debug("Page scraped",
		"url", pageURL,
		"title", title,
		"content_length", len(article.Content))

	return rec, nil
}
