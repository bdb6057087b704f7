// Package fetch acquires placement pages over HTTP, escalating to a
// headless browser for JS-rendered sites, with per-host rate limiting
// and raw-response snapshots for debugging parser changes.
package fetch

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// maxBodySize caps response reads; placement pages and PDFs are small.
const maxBodySize = 10 << 20

// Client fetches source documents. The browser is launched lazily on
// the first page that needs it and shared for the rest of the run.
type Client struct {
	hc      *http.Client
	limiter *HostLimiter
	rawDir  string

	mu      sync.Mutex // guards browser
	browser pageRenderer
}

// pageRenderer is the slice of Browser that Render uses; tests swap
// launchBrowser to avoid starting Chrome.
type pageRenderer interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
	Close()
}

var launchBrowser = func() (pageRenderer, error) { return NewBrowser() }

type Config struct {
	// ReqPerSec paces requests per host; zero means 1 req/s.
	ReqPerSec float64
	// RawDir, when set, receives a snapshot of every fetched body.
	RawDir string
	// Timeout bounds one HTTP request; zero means 30s.
	Timeout time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.ReqPerSec <= 0 {
		cfg.ReqPerSec = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: NewHostLimiter(cfg.ReqPerSec, 1),
		rawDir:  cfg.RawDir,
	}
}

// Get fetches a URL over plain HTTP. When the response looks like a JS
// shell it returns the body it got together with ErrNeedsBrowser so the
// caller can escalate.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.WaitURL(ctx, url); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/pdf;q=0.9,*/*;q=0.8")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: get %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch: %s status %d", url, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}

	c.saveRaw(url, body)

	if NeedsBrowser(body) {
		return body, ErrNeedsBrowser
	}
	return body, nil
}

// Fetch is Get with automatic browser escalation. Network errors on the
// HTTP path also go through the browser, matching the recovery behavior
// for bot-detection blocks.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, err := c.Get(ctx, url)
	if err == nil {
		return body, nil
	}
	log.Printf("[fetch] %s: %v; trying browser", url, err)
	rendered, berr := c.Render(ctx, url)
	if berr != nil {
		return nil, fmt.Errorf("fetch: %s: http: %v; browser: %w", url, err, berr)
	}
	c.saveRaw(url, rendered)
	return rendered, nil
}

// Render fetches through the shared headless browser. Sources escalate
// concurrently, so the launch is guarded; exactly one goroutine starts
// the browser and the rest reuse it.
func (c *Client) Render(ctx context.Context, url string) ([]byte, error) {
	c.mu.Lock()
	if c.browser == nil {
		b, err := launchBrowser()
		if err != nil {
			c.mu.Unlock()
			return nil, err
		}
		c.browser = b
	}
	b := c.browser
	c.mu.Unlock()
	return b.Fetch(ctx, url)
}

// Close shuts down the browser if one was launched.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browser != nil {
		c.browser.Close()
		c.browser = nil
	}
}

// ContentHash fingerprints a fetched body for change detection.
func ContentHash(body []byte) string {
	sum := md5.Sum(body)
	return hex.EncodeToString(sum[:])
}

// saveRaw caches the raw body under a URL-derived filename.
func (c *Client) saveRaw(url string, body []byte) {
	if c.rawDir == "" {
		return
	}
	ext := ".html"
	if strings.HasPrefix(string(body[:min(4, len(body))]), "%PDF") {
		ext = ".pdf"
	}
	sum := md5.Sum([]byte(url))
	name := hex.EncodeToString(sum[:])[:12] + ext
	if err := os.MkdirAll(c.rawDir, 0o755); err != nil {
		return
	}
	if err := os.WriteFile(filepath.Join(c.rawDir, name), body, 0o644); err != nil {
		log.Printf("[fetch] snapshot write failed: %v", err)
	}
}
