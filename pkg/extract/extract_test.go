package extract

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delverhq/delver/pkg/config"
)

func testExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(config.DefaultExtractConfig(), slog.Default())
}

func servePage(t *testing.T, html string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

const articlePage = `<!doctype html>
<html><head>
<title>Quantum Batteries Explained</title>
<meta property="article:published_time" content="2024-03-15T09:30:00Z">
</head><body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>Quantum Batteries Explained</h1>
<p>Quantum batteries exploit collective quantum effects to charge faster than
their classical counterparts. Researchers demonstrated superabsorption in an
organic microcavity, a milestone for the field of quantum energy storage.</p>
<p>The prototype charged in under a nanosecond, although storing the energy
for useful periods remains the central open engineering problem.</p>
</article>
<footer>Copyright 2024</footer>
<script>trackPageView();</script>
</body></html>`

func TestExtract_Article(t *testing.T) {
	e := testExtractor(t)
	url := servePage(t, articlePage)

	res := e.Extract(context.Background(), url)
	require.False(t, res.Failed(), "error: %s", res.Error)

	assert.Equal(t, "Quantum Batteries Explained", res.Title)
	assert.Equal(t, "2024-03-15T09:30:00Z", res.PublishedDate)
	assert.Contains(t, res.Content, "superabsorption")
	assert.NotContains(t, res.Content, "trackPageView")
	assert.NotContains(t, res.Content, "Copyright")
	assert.Equal(t, len(res.Content), res.TextLength)
	assert.GreaterOrEqual(t, res.TextLength, 100)
}

func TestExtract_SelectorFallback(t *testing.T) {
	// No <article>/<p> structure for readability scoring to latch onto;
	// the #content fallback has enough raw text.
	body := strings.Repeat("plain text without paragraph markup ", 10)
	page := `<html><head><title>t</title></head><body><div id="content">` + body + `</div></body></html>`

	e := testExtractor(t)
	res := e.Extract(context.Background(), servePage(t, page))
	require.False(t, res.Failed(), "error: %s", res.Error)
	assert.Contains(t, res.Content, "plain text without paragraph markup")
}

func TestExtract_TooLittleContent(t *testing.T) {
	e := testExtractor(t)
	res := e.Extract(context.Background(), servePage(t, `<html><body><p>short</p></body></html>`))

	require.True(t, res.Failed())
	assert.Equal(t, "no extractable content", res.Error)
	assert.Empty(t, res.Content)
}

func TestExtract_NonHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	t.Cleanup(srv.Close)

	res := testExtractor(t).Extract(context.Background(), srv.URL)
	require.True(t, res.Failed())
	assert.Contains(t, res.Error, "unsupported content type")
}

func TestExtract_HTTPError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	res := testExtractor(t).Extract(context.Background(), srv.URL)
	require.True(t, res.Failed())
	assert.Contains(t, res.Error, "404")
	assert.Equal(t, int32(1), calls.Load(), "4xx is not retried")
}

func TestExtract_RetriesServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "flaking", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articlePage))
	}))
	t.Cleanup(srv.Close)

	e := testExtractor(t)
	e.sleep = func(context.Context, time.Duration) error { return nil }

	res := e.Extract(context.Background(), srv.URL)
	require.False(t, res.Failed(), "error: %s", res.Error)
	assert.Contains(t, res.Content, "superabsorption")
	assert.Equal(t, int32(2), calls.Load())
}

func TestExtract_RedirectLimit(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL+r.URL.Path+"x", http.StatusFound)
	}))
	t.Cleanup(srv.Close)

	res := testExtractor(t).Extract(context.Background(), srv.URL)
	require.True(t, res.Failed())
	assert.Contains(t, res.Error, "redirects")
}

func TestExtractAll_ConcurrencyCapAndOrder(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body><article><p>%s</p></article></body></html>`,
			strings.Repeat("payload for "+r.URL.Path+" ", 20))
	}))
	t.Cleanup(srv.Close)

	e := testExtractor(t)
	urls := make([]string, 9)
	for i := range urls {
		urls[i] = fmt.Sprintf("%s/page-%d", srv.URL, i)
	}

	results := e.ExtractAll(context.Background(), urls)
	require.Len(t, results, len(urls))
	for i, res := range results {
		require.NotNil(t, res)
		assert.Equal(t, urls[i], res.URL)
		assert.False(t, res.Failed(), "url %s: %s", res.URL, res.Error)
	}
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestPublishedDate_Variants(t *testing.T) {
	e := testExtractor(t)
	body := `<article><p>` + strings.Repeat("enough text to pass the minimum threshold ", 5) + `</p></article>`

	tests := []struct {
		name string
		head string
		want string
	}{
		{
			"time element",
			`<time datetime="2023-11-02">Nov 2</time>`,
			"2023-11-02T00:00:00Z",
		},
		{
			"json-ld",
			`<script type="application/ld+json">{"@type":"Article","datePublished":"2022-07-04T12:00:00Z"}</script>`,
			"2022-07-04T12:00:00Z",
		},
		{
			"dc date issued",
			`<meta name="DC.date.issued" content="2021-01-31">`,
			"2021-01-31T00:00:00Z",
		},
		{
			"unparseable",
			`<meta name="date" content="sometime last week">`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := `<html><head><title>t</title>` + tt.head + `</head><body>` + body + `</body></html>`
			res := e.Extract(context.Background(), servePage(t, page))
			require.False(t, res.Failed(), "error: %s", res.Error)
			assert.Equal(t, tt.want, res.PublishedDate)
		})
	}
}

func TestCleanText(t *testing.T) {
	in := "a  \t b\n\n\n\n\nc   d"
	assert.Equal(t, "a b\n\nc d", cleanText(in))
}
