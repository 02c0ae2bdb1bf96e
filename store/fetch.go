package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrDatasetNotFound marks a fetch that resolved but found no document.
var ErrDatasetNotFound = fmt.Errorf("dataset not found")

// Fetcher retrieves one static dataset document by its relative path. The
// engine never writes; every fetch reads a versioned snapshot.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// HTTPFetcher fetches dataset documents over HTTP with exponential-backoff
// retries.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher builds a fetcher rooted at baseURL.
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	target, err := url.JoinPath(f.BaseURL, path)
	if err != nil {
		return nil, err
	}

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := f.Client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return backoff.Permanent(ErrDatasetNotFound)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("fetch %s: status %d", path, resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return body, nil
}

// FileFetcher reads dataset documents from a local directory, for tests and
// offline snapshots.
type FileFetcher struct {
	Root string
}

func (f *FileFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	body, err := os.ReadFile(f.Root + "/" + path)
	if os.IsNotExist(err) {
		return nil, ErrDatasetNotFound
	}
	return body, err
}
