package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"

	"github.com/fleetcore/helmsman/internal/core"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Fetcher retrieves a page and reduces it to sanitized plain text for deep
// content analysis.
type Fetcher struct {
	client *http.Client
	policy *bluemonday.Policy
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		policy: bluemonday.UGCPolicy(),
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", core.AppUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	sanitized := f.policy.Sanitize(string(body))
	text, err := html2text.FromString(sanitized, html2text.Options{TextOnly: true})
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}
