package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// maxBatchBytes caps documents read over HTTP.
const maxBatchBytes = 64 << 20

// batchMediaTypes is sent as Accept when the batch comes from a URL.
const batchMediaTypes = "application/json, application/yaml, text/plain;q=0.9, */*;q=0.1"

// fetcher reads batch documents from URLs, local files or stdin.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	httpClient *http.Client
	stdin      io.Reader
	maxBytes   int64
}

// newFetcher creates a new fetcher for batch documents
func newFetcher(timeout time.Duration) *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: timeout},
		stdin:      os.Stdin,
		maxBytes:   maxBatchBytes,
	}
}

// fetch returns the raw batch named by src: "-" or "" reads stdin,
// http:// and https:// are downloaded, anything else is a local file path.
func (f *fetcher) fetch(ctx context.Context, src string) ([]byte, error) {
	switch {
	case src == "" || src == "-":
		return io.ReadAll(f.stdin)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return f.download(ctx, src)
	default:
		return os.ReadFile(src)
	}
}

func (f *fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("bad batch URL %s: %w", url, err)
	}
	req.Header.Set("Accept", batchMediaTypes)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download batch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("batch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", url, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("batch %s: larger than %d bytes", url, f.maxBytes)
	}
	return data, nil
}
