// Package remote fetches source datasets over HTTP or from local files.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/custodia-labs/triscore/internal/core/domain"
	"github.com/custodia-labs/triscore/internal/core/ports/driven"
	"github.com/custodia-labs/triscore/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// MaxBodySize bounds how much of a response is read.
	MaxBodySize = 256 << 20
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher downloads sources. It does not retry: the first failure is
// returned to the caller.
type Fetcher struct {
	client      *http.Client
	rateLimiter *RateLimiter
	userAgent   string
}

// NewFetcher creates a fetcher from HTTP settings.
func NewFetcher(settings domain.HTTPSettings) *Fetcher {
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	limiter := NewRateLimiter(settings.Rate)
	logger.Debug("fetcher: timeout %s, %g requests/s", timeout, limiter.Limit())
	return &Fetcher{
		client:      &http.Client{Timeout: timeout},
		rateLimiter: limiter,
		userAgent:   settings.UserAgent,
	}
}

// Fetch retrieves the source content.
func (f *Fetcher) Fetch(ctx context.Context, source domain.SourceSettings) (*domain.RawDataset, error) {
	kind, location := Resolve(source.URL)
	switch kind {
	case KindHTTP:
		return f.fetchHTTP(ctx, source.Name, location)
	case KindFile:
		return f.fetchFile(source.Name, location)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, source.URL)
	}
}

func (f *Fetcher) fetchHTTP(ctx context.Context, name, uri string) (*domain.RawDataset, error) {
	if err := f.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	logger.Debug("GET %s", uri)
	start := time.Now()

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: uri}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", domain.ErrFetchFailed, err)
	}

	logger.Debug("%s: %d bytes in %s", name, len(body), time.Since(start).Round(time.Millisecond))

	return &domain.RawDataset{
		Source:   name,
		URI:      uri,
		MIMEType: resp.Header.Get("Content-Type"),
		Content:  body,
	}, nil
}

func (f *Fetcher) fetchFile(name, path string) (*domain.RawDataset, error) {
	body, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w: %w", domain.ErrFetchFailed, domain.ErrNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	logger.Debug("%s: %d bytes from %s", name, len(body), path)
	return &domain.RawDataset{
		Source:  name,
		URI:     path,
		Content: body,
	}, nil
}
