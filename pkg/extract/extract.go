// Package extract fetches web pages and pulls out their readable text.
// Failures are reported as structured results, never as panics or errors
// that would kill a worker mid-session.
package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/delverhq/delver/pkg/config"
)

// maxBodyBytes caps how much of a page is read. Pages past this are
// truncated, not failed.
const maxBodyBytes = 4 << 20

// Result is the outcome of one extraction. When Error is non-empty the
// other content fields are zero.
type Result struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	TextLength    int    `json:"text_length"`
	PublishedDate string `json:"published_date,omitempty"` // ISO-8601
	Error         string `json:"error,omitempty"`
}

// Failed reports whether the extraction produced no usable content.
func (r *Result) Failed() bool { return r.Error != "" }

// Extractor fetches and parses pages. It is stateless and safe for
// concurrent use; callers cap parallelism via ExtractAll.
type Extractor struct {
	cfg    *config.ExtractConfig
	httpc  *http.Client
	logger *slog.Logger

	// sleep is swapped out in tests to avoid real backoff delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates an Extractor from config.
func New(cfg *config.ExtractConfig, logger *slog.Logger) *Extractor {
	return &Extractor{
		cfg: cfg,
		httpc: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= cfg.MaxRedirects {
					return fmt.Errorf("stopped after %d redirects", cfg.MaxRedirects)
				}
				return nil
			},
		},
		logger: logger.With("component", "extract"),
		sleep:  sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Extract fetches one URL and returns its readable content. Transient
// fetch failures (network errors, 5xx, 429) are retried with exponential
// backoff; all failure modes (timeout, non-2xx, non-HTML, parse error, too
// little text) come back in Result.Error.
func (e *Extractor) Extract(ctx context.Context, url string) *Result {
	retries := e.cfg.MaxRetries
	if retries <= 0 {
		retries = 1
	}

	var res *Result
	for attempt := 1; attempt <= retries; attempt++ {
		if attempt > 1 {
			delay := e.cfg.RetryBaseDelay << (attempt - 2)
			e.logger.Warn("retrying extraction",
				"url", url,
				"attempt", attempt,
				"delay", delay,
				"error", res.Error)
			if err := e.sleep(ctx, delay); err != nil {
				res.Error = err.Error()
				return res
			}
		}

		var retryable bool
		res, retryable = e.fetch(ctx, url)
		if !retryable {
			return res
		}
	}
	return res
}

// fetch performs one fetch-and-parse attempt. The second return value
// reports whether the failure is retryable.
func (e *Extractor) fetch(ctx context.Context, url string) (*Result, bool) {
	res := &Result{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		res.Error = fmt.Sprintf("invalid url: %v", err)
		return res, false
	}
	// Browser-like headers; some sites refuse obvious bots.
	req.Header.Set("User-Agent", e.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.httpc.Do(req)
	if err != nil {
		res.Error = fmt.Sprintf("fetch failed: %v", err)
		return res, ctx.Err() == nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		res.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return res, retryable
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "html") {
		res.Error = fmt.Sprintf("unsupported content type %q", ct)
		return res, false
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		res.Error = fmt.Sprintf("parse failed: %v", err)
		return res, false
	}

	res.Title = strings.TrimSpace(doc.Find("title").First().Text())
	res.PublishedDate = publishedDate(doc)

	stripNonContent(doc)

	content := readableContent(doc)
	if len(content) < e.cfg.MinContentLength {
		content = selectorFallback(doc, e.cfg.MinContentLength)
	}
	if len(content) < e.cfg.MinContentLength {
		res.Error = "no extractable content"
		res.Title = ""
		res.PublishedDate = ""
		return res, false
	}

	res.Content = content
	res.TextLength = len(content)
	e.logger.Debug("extracted page", "url", url, "text_length", res.TextLength)
	return res, false
}

// ExtractAll fetches urls with at most cfg.Concurrency in flight. Results
// keep input order; failed items carry their error in place.
func (e *Extractor) ExtractAll(ctx context.Context, urls []string) []*Result {
	results := make([]*Result, len(urls))
	sem := make(chan struct{}, e.cfg.Concurrency)
	done := make(chan int, len(urls))

	for i, u := range urls {
		go func(i int, u string) {
			defer func() { done <- i }()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = &Result{URL: u, Error: ctx.Err().Error()}
				return
			}
			results[i] = e.Extract(ctx, u)
		}(i, u)
	}
	for range urls {
		<-done
	}
	return results
}
