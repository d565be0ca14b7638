// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across the fetch stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pdiddy/paperscout/pkg/types"
)

// Get issues a GET request to base with the given query parameters and
// returns the response body. Any non-2xx status is an error; the body is
// drained and closed before returning it. The caller owns the returned
// reader and must close it.
func Get(ctx context.Context, client *http.Client, base string, params url.Values, cfg types.HTTPConfig) (io.ReadCloser, error) {
	reqURL := base
	if len(params) > 0 {
		reqURL = base + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", base, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: HTTP %d", base, resp.StatusCode)
	}

	return resp.Body, nil
}
