package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/labelscan/labelscan/internal/extract"
)

// defaultUserAgent is sent with remote image requests. Some product CDNs
// refuse requests without a browser-looking agent.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// ErrFetch reports that an image could not be acquired from its source.
var ErrFetch = errors.New("fetch image")

// ProcessFile reads an image from disk and processes it. Read failures
// become terminal Results, matching Process's never-fails contract.
func (p *Pipeline) ProcessFile(path string, category extract.Category) *Result {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("failed to read image file: %v", err)
		return errorResult(fmt.Errorf("%w: %v", ErrFetch, err))
	}
	return p.Process(data, category)
}

// ProcessURL downloads an image over HTTP(S) and processes it. Download
// failures, including non-200 responses and context cancellation, become
// terminal Results.
func (p *Pipeline) ProcessURL(ctx context.Context, rawURL string, category extract.Category) *Result {
	data, err := p.fetch(ctx, rawURL)
	if err != nil {
		log.Printf("failed to fetch image: %v", err)
		return errorResult(err)
	}
	return p.Process(data, category)
}

func (p *Pipeline) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "image/*,*/*;q=0.8")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned HTTP %d", ErrFetch, rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return data, nil
}
