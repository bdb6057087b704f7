package fetch

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter paces requests per department hostname. Schools host
// their placement pages on separate domains, so pacing against one
// slow site must not stall fetches from the others; each host gets its
// own token bucket, created on first use.
type HostLimiter struct {
	mu      sync.Mutex
	perHost map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	return &HostLimiter{
		perHost: make(map[string]*rate.Limiter),
		limit:   rate.Limit(reqPerSec),
		burst:   burst,
	}
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	lim, ok := hl.perHost[host]
	if !ok {
		lim = rate.NewLimiter(hl.limit, hl.burst)
		hl.perHost[host] = lim
	}
	return lim
}

// WaitURL blocks until the URL's host may be hit again. URLs that do
// not parse share a catch-all bucket instead of bypassing the pacing.
func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return hl.limiterFor("_").Wait(ctx)
	}
	return hl.limiterFor(u.Host).Wait(ctx)
}
