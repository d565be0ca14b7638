// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pdiddy/paperscout/internal/httputil"
)

// Search issues an ESearch query and returns the matching PubMed
// identifiers in relevance order. An empty result is not an error.
func (c *Client) Search(ctx context.Context, term string, maxResults int) ([]string, error) {
	if term == "" {
		return nil, fmt.Errorf("empty search term")
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	params := c.params()
	params.Set("term", term)
	params.Set("retmode", "json")
	params.Set("retmax", strconv.Itoa(maxResults))

	body, err := httputil.Get(ctx, c.HTTP, esearchBase, params, c.Config.HTTPConfig)
	if err != nil {
		return nil, fmt.Errorf("ESearch request: %w", err)
	}
	defer body.Close()

	var sr esearchResponse
	if err := json.NewDecoder(body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing ESearch response: %w", err)
	}

	return sr.Result.IDList, nil
}

// ESearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
