package fonts

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetcher downloads the pinned upstream font over HTTP
type Fetcher struct {
	client    *http.Client
	url       string
	expected  string
	userAgent string
}

// NewFetcher creates a fetcher for the pinned upstream font
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Allow up to 10 redirects
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		url:       FontURL,
		expected:  FontSHA256,
		userAgent: UserAgent,
	}
}

// Fetch downloads the font and returns its raw bytes. The payload is
// validated against the pinned digest before it is returned; bytes that fail
// validation never reach the caller. There is exactly one attempt per call,
// and cancellation comes from ctx.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("User-Agent", f.userAgent)

	// Execute request
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: err}
	}
	defer resp.Body.Close()

	// Check status code
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: f.url, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	// Read the full payload into memory so it can be validated before any
	// target file is touched
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: fmt.Errorf("read response body: %w", err)}
	}

	if actual := Digest(payload); actual != f.expected {
		return nil, &IntegrityError{Expected: f.expected, Actual: actual}
	}

	return payload, nil
}
