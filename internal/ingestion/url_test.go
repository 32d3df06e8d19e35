package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPage = `<!DOCTYPE html>
<html>
<head><title>Backend Engineer</title><style>body { color: red; }</style></head>
<body>
<nav><a href="/">Home</a><a href="/jobs">Jobs</a></nav>
<main>
<h1>Backend Engineer</h1>
<p>We build data pipelines in Python.</p>
<ul><li>Must-Have Skills: python, docker</li><li>5+ years of experience</li></ul>
</main>
<footer>Copyright 2026</footer>
<script>trackPageView();</script>
</body>
</html>`

func TestIngestFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "resume-screener/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(jobPage))
	}))
	defer srv.Close()

	text, err := IngestFromURL(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Must-Have Skills: python, docker")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "Copyright 2026")
	assert.NotContains(t, text, "Home")
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "no scheme", url: "example.com/jobs"},
		{name: "file scheme", url: "file:///etc/passwd"},
		{name: "missing host", url: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IngestFromURL(context.Background(), tt.url)
			assert.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}

func TestIngestFromURL_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := IngestFromURL(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestIngestFromURL_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := IngestFromURL(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestIngestFromURL_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPage))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := IngestFromURL(ctx, srv.URL)
	assert.Error(t, err)
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting with no main element.</p></body></html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting with no main element.", text)
}

func TestExtractMainText_NoContent(t *testing.T) {
	html := `<html><body><script>nothing()</script></body></html>`

	_, err := ExtractMainText(html)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractMainText_ContentSelectorPriority(t *testing.T) {
	html := `<html><body>
<div class="content"><p>Sidebar text</p></div>
<main><p>The real posting</p></main>
</body></html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Equal(t, "The real posting", text)
}

func TestExtractMainText_BlockElementsBecomeLines(t *testing.T) {
	html := `<html><body><main>
<h2>Skills</h2>
<p>python and docker</p>
</main></body></html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Equal(t, "Skills\npython and docker", text)
}
