package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var (
	// ErrInvalidURL is returned when the URL is malformed or not http(s).
	ErrInvalidURL = fmt.Errorf("invalid URL")
	// ErrFetchFailed is returned when the HTTP request fails.
	ErrFetchFailed = fmt.Errorf("fetch failed")
	// ErrExtractionFailed is returned when no text could be extracted.
	ErrExtractionFailed = fmt.Errorf("content extraction failed")
)

// maxFetchBytes bounds how much of a remote page is read.
const maxFetchBytes = 2 << 20

// noiseSelectors are stripped before text extraction; they never contain
// job-posting content.
var noiseSelectors = []string{
	"script", "style", "noscript", "nav", "header", "footer", "iframe", "form",
}

// contentSelectors are tried in order; the first match with usable text
// wins before falling back to the whole body.
var contentSelectors = []string{
	"main", "article", "[role=main]", "#content", ".content", ".job-description",
}

// httpClient is shared across fetches; job boards respond well within this.
var httpClient = &http.Client{Timeout: 20 * time.Second}

// IngestFromURL fetches a job posting page and returns its cleaned main
// text. Only http and https URLs are accepted.
func IngestFromURL(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", "resume-screener/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	text, err := ExtractMainText(string(body))
	if err != nil {
		return "", err
	}
	return text, nil
}

// ExtractMainText pulls the readable main content out of an HTML document:
// noise elements are removed, then the first content selector with real
// text wins, falling back to the whole body.
func ExtractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, sel := range contentSelectors {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			if text := nodeText(node); text != "" {
				return text, nil
			}
		}
	}

	text := nodeText(doc.Find("body"))
	if text == "" {
		return "", fmt.Errorf("%w: no text content", ErrExtractionFailed)
	}
	return text, nil
}

// nodeText renders a selection as line-structured text. Block elements each
// become a line so downstream heading detection still works; selections
// without block children fall back to their raw text.
func nodeText(sel *goquery.Selection) string {
	blocks := sel.Find("p, li, h1, h2, h3, h4, h5, h6")
	if blocks.Length() == 0 {
		return CleanText(sel.Text())
	}
	var sb strings.Builder
	blocks.Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})
	return CleanText(sb.String())
}
