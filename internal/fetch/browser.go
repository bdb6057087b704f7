package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// renderAttempts bounds retries for one URL; a source that cannot render
// after this many tries is abandoned for the run.
const renderAttempts = 3

// settleDelay gives client-side rendering time to populate the DOM after
// the load event.
const settleDelay = 3 * time.Second

// Browser wraps a shared headless Chrome instance used for pages that
// serve only a JS shell to plain HTTP clients. Stealth patches reduce
// bot-detection blocks on department CDNs.
type Browser struct {
	browser *rod.Browser
}

func NewBrowser() (*Browser, error) {
	u, err := launcher.New().
		Headless(true).
		NoSandbox(true).
		Set("disable-blink-features", "AutomationControlled").
		Launch()
	if err != nil {
		return nil, fmt.Errorf("fetch: launch browser: %w", err)
	}
	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("fetch: connect browser: %w", err)
	}
	return &Browser{browser: b}, nil
}

// Fetch renders a URL and returns the final DOM as HTML. Small results
// are treated as failed renders and retried.
func (b *Browser) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= renderAttempts; attempt++ {
		html, err := b.fetchOnce(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err
		log.Printf("[browser] attempt %d/%d for %s: %v", attempt, renderAttempts, url, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	return nil, lastErr
}

func (b *Browser) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	page, err := stealth.Page(b.browser)
	if err != nil {
		return nil, fmt.Errorf("browser: create page: %w", err)
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	page = page.Context(navCtx)

	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("browser: navigate %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("browser: wait load %s: %w", url, err)
	}

	select {
	case <-navCtx.Done():
		return nil, navCtx.Err()
	case <-time.After(settleDelay):
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("browser: read dom %s: %w", url, err)
	}
	if len(html) < 1000 {
		return nil, fmt.Errorf("browser: rendered page too small (%d chars)", len(html))
	}
	return []byte(html), nil
}

func (b *Browser) Close() {
	if err := b.browser.Close(); err != nil {
		log.Printf("[browser] close: %v", err)
	}
}
