package fetcher

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultRetries is default number of feed download attempts.
	DefaultRetries = 3
	// DefaultMaxBodySize is default limit of fetched body size.
	DefaultMaxBodySize = 256 << 20

	imageUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	imageReferer   = "https://google.com"
)

var (
	xmlDeclaration = []byte("<?xml")
	utf8BOM        = []byte("\xef\xbb\xbf")
)

// SleepFunc blocks for provided duration or until context is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option is custom configuration of Fetcher.
type Option func(f *Fetcher)

// Fetcher builds http requests and fetches files via http.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	retries     int
	backoffBase time.Duration
	maxBodySize int64
	sleep       SleepFunc
	logger      *zerolog.Logger
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, userAgent string, ops ...Option) *Fetcher {
	nop := zerolog.Nop()
	f := &Fetcher{
		client:      client,
		userAgent:   userAgent,
		retries:     DefaultRetries,
		backoffBase: time.Second,
		maxBodySize: DefaultMaxBodySize,
		sleep:       sleepContext,
		logger:      &nop,
	}

	for _, op := range ops {
		op(f)
	}

	return f
}

// Download fetches feed file from url. Failed attempts are retried with exponential backoff
// (backoff base * 2^attempt) until configured number of attempts is exhausted.
// Returns *DownloadError wrapping the last failure.
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	attempts := 0
	for attempt := 0; attempt < f.retries; attempt++ {
		attempts++

		content, err := f.FetchFile(ctx, url)
		if err == nil {
			return content, nil
		}
		lastErr = err

		f.logger.Warn().
			Err(err).
			Str("url", url).
			Int("attempt", attempt+1).
			Int("attempts", f.retries).
			Msg("feed download attempt failed")

		if attempt == f.retries-1 {
			break
		}

		if err := f.sleep(ctx, f.backoffBase*time.Duration(1<<attempt)); err != nil {
			lastErr = err
			break
		}
	}

	return nil, &DownloadError{
		URL:      url,
		Attempts: attempts,
		Err:      lastErr,
	}
}

// FetchFile makes single attempt to fetch feed file from provided url and validates response.
func (f *Fetcher) FetchFile(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/xml")
	req.Header.Add("Accept-Encoding", "gzip")
	req.Header.Add("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrStatusNotOK, resp.StatusCode)
	}

	body, err := f.readBody(resp)
	if err != nil {
		return nil, err
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(body, utf8BOM))

	if !strings.Contains(contentType, "xml") && !bytes.HasPrefix(trimmed, xmlDeclaration) {
		return nil, fmt.Errorf("%w: %q", ErrContentTypeNotSupported, contentType)
	}

	if len(trimmed) == 0 {
		return nil, ErrEmptyBody
	}

	return body, nil
}

// FetchImage fetches image bytes from provided url.
func (f *Fetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("User-Agent", imageUserAgent)
	req.Header.Add("Referer", imageReferer)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrStatusNotOK, resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("can't read image: %w", err)
	}

	return content, nil
}

// readBody reads whole response body, decompressing it when it is gzipped.
func (f *Fetcher) readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body

	if isGzipped(resp) {
		decompressed, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("can't decompress response: %w", err)
		}
		defer decompressed.Close()
		reader = decompressed
	}

	body, err := io.ReadAll(io.LimitReader(reader, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("can't read response: %w", err)
	}

	return body, nil
}

func isGzipped(resp *http.Response) bool {
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return true
	}

	switch strings.ToLower(resp.Header.Get("Content-Type")) {
	case "application/gzip", "application/x-gzip", "application/zip":
		return true
	default:
		return false
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithRetries sets number of feed download attempts.
func WithRetries(retries int) Option {
	return func(f *Fetcher) {
		if retries > 0 {
			f.retries = retries
		}
	}
}

// WithBackoffBase sets delay before the second attempt, each next delay is doubled.
func WithBackoffBase(base time.Duration) Option {
	return func(f *Fetcher) {
		f.backoffBase = base
	}
}

// WithSleep sets function used for waiting between attempts.
func WithSleep(sleep SleepFunc) Option {
	return func(f *Fetcher) {
		f.sleep = sleep
	}
}

// WithMaxBodySize sets limit of fetched body size.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// WithLogger sets Fetcher's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}
