// Package network provides the thin chain-client implementations consumed by
// sessions: two JSON-over-HTTP network providers (gateway-style "proxy" and
// bare "api") and a polling transaction watcher. Transaction construction,
// ABI encoding, and signing never happen here.
package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dukaforge/snippets/pkg/types"
)

// defaultTimeout bounds every HTTP round trip when the session config does
// not set one.
const defaultTimeout = 10 * time.Second

// NewProvider constructs a network provider from the session config's
// declared kind. The config must already be validated.
func NewProvider(config types.NetworkProviderConfig) (types.NetworkProvider, error) {
	timeout := defaultTimeout
	if config.Timeout > 0 {
		timeout = time.Duration(config.Timeout) * time.Second
	}
	client := &http.Client{Timeout: timeout}
	baseURL := strings.TrimRight(config.URL, "/")

	switch config.Type {
	case types.ProviderProxy:
		return &ProxyProvider{baseURL: baseURL, client: client}, nil
	case types.ProviderAPI:
		return &APIProvider{baseURL: baseURL, client: client}, nil
	}
	return nil, fmt.Errorf("%w: unrecognized networkProvider.type %q", types.ErrBadSessionConfig, config.Type)
}

// getJSON performs a GET and decodes the response body into dest.
func getJSON(ctx context.Context, client *http.Client, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return doJSON(client, req, dest)
}

// postJSON performs a POST with a JSON body and decodes the response into dest.
func postJSON(ctx context.Context, client *http.Client, url string, body, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return doJSON(client, req, dest)
}

func doJSON(client *http.Client, req *http.Request, dest any) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL, resp.StatusCode, truncate(data))
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decoding response from %s: %w", req.URL, err)
	}
	return nil
}

func truncate(data []byte) string {
	const max = 256
	if len(data) <= max {
		return string(data)
	}
	return string(data[:max]) + "..."
}
