// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/paperscout/internal/httputil"
	"github.com/pdiddy/paperscout/pkg/types"
)

// FetchSummaries issues one batched ESummary request for all identifiers
// and returns a per-identifier summary mapping. Identifiers the server
// omits (or returns in an unusable shape) are simply absent from the map;
// the report assembler degrades them to placeholders.
func (c *Client) FetchSummaries(ctx context.Context, ids []string) (map[string]types.SummaryRecord, error) {
	if len(ids) == 0 {
		return map[string]types.SummaryRecord{}, nil
	}

	params := c.params()
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "json")

	body, err := httputil.Get(ctx, c.HTTP, esummaryBase, params, c.Config.HTTPConfig)
	if err != nil {
		return nil, fmt.Errorf("ESummary request: %w", err)
	}
	defer body.Close()

	var sr esummaryResponse
	if err := json.NewDecoder(body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing ESummary response: %w", err)
	}

	summaries := make(map[string]types.SummaryRecord, len(ids))
	for _, id := range ids {
		raw, ok := sr.Result[id]
		if !ok {
			continue
		}
		var doc esummaryDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}

		rec := types.SummaryRecord{
			Title:   doc.Title,
			PubDate: doc.PubDate,
		}
		for _, a := range doc.Authors {
			if a.Name != "" {
				rec.Authors = append(rec.Authors, a.Name)
			}
		}
		summaries[id] = rec
	}

	return summaries, nil
}

// ESummary JSON structures. The "result" object mixes a "uids" array with
// one object per identifier, so it decodes as raw messages keyed by string.
type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type esummaryDoc struct {
	UID     string           `json:"uid"`
	Title   string           `json:"title"`
	PubDate string           `json:"pubdate"`
	Authors []esummaryAuthor `json:"authors"`
}

type esummaryAuthor struct {
	Name     string `json:"name"`
	AuthType string `json:"authtype"`
}
