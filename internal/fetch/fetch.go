// Package fetch retrieves paper pages over HTTP politely: robots.txt is
// honored, requests are rate limited per host and transient failures are
// retried with backoff.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrDisallowed is returned when robots.txt forbids the URL.
var ErrDisallowed = errors.New("fetch disallowed by robots.txt")

// Options configure a Fetcher.
type Options struct {
	Timeout       time.Duration
	UserAgent     string
	MaxBytes      int64
	RatePerSecond float64
	Burst         int
	RespectRobots bool
	BackoffBase   time.Duration
}

// Page is a fetched document.
type Page struct {
	Body        []byte
	ContentType string
	FinalURL    string
}

// Fetcher downloads pages.
type Fetcher struct {
	httpClient *http.Client
	limiter    *Limiter
	robots     *RobotsChecker
	userAgent  string
	maxBytes   int64
	backoff    time.Duration
	log        *slog.Logger
}

// New creates a Fetcher.
func New(opts Options, log *slog.Logger) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 50 << 20
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = 1
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = DefaultBackoffBase
	}
	client := &http.Client{
		Timeout: opts.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return fmt.Errorf("stopped after 5 redirects")
			}
			return nil
		},
	}
	f := &Fetcher{
		httpClient: client,
		limiter:    NewLimiter(opts.RatePerSecond, opts.Burst),
		userAgent:  opts.UserAgent,
		maxBytes:   opts.MaxBytes,
		backoff:    opts.BackoffBase,
		log:        log,
	}
	if opts.RespectRobots {
		f.robots = NewRobotsChecker(client, opts.UserAgent)
	}
	return f
}

// Fetch downloads rawURL, retrying transient failures up to MaxRetries times.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid url %q", rawURL)
	}

	if f.robots != nil {
		allowed, err := f.robots.Allowed(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, ErrDisallowed
		}
	}

	var lastErr error
	for attempt := range MaxRetries {
		if attempt > 0 {
			select {
			case <-time.After(Backoff(f.backoff, attempt-1)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return nil, err
		}

		page, err := f.fetchOnce(ctx, rawURL)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			break
		}
		f.log.Warn("retryable fetch error", "url", rawURL, "attempt", attempt, "error", err)
	}
	return nil, lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/pdf;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &TransientError{Err: fmt.Errorf("fetch: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		io.Copy(io.Discard, resp.Body)
		return nil, &TransientError{Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, &TransientError{Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("page exceeds max size (%d bytes)", f.maxBytes)
	}

	return &Page{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
	}, nil
}
