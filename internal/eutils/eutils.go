// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils queries the NCBI E-utilities API for PubMed records.
// It covers the three calls the fetch pipeline makes: ESearch (identifier
// list for a query), ESummary (batched title/date summaries), and EFetch
// (full article XML, scanned for corporate affiliations and contact
// emails).
package eutils

import (
	"net/http"
	"net/url"

	"github.com/pdiddy/paperscout/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	esummaryBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
	efetchBase   = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// pubmedDB is the E-utilities database name for all three calls.
const pubmedDB = "pubmed"

// Placeholder substitutes for fields the upstream record does not carry.
const Placeholder = "N/A"

// UnknownAuthor substitutes for a missing surname on a matched author.
const UnknownAuthor = "Unknown"

// Client talks to the E-utilities API.
type Client struct {
	// HTTP is the underlying client; its Timeout bounds every call.
	HTTP *http.Client

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string

	// Tool and Email identify the caller per the E-utilities usage policy.
	// Both are optional.
	Tool  string
	Email string

	// Config carries HTTP settings and the classification keyword set.
	Config types.FetchConfig
}

// params returns the base query parameters shared by every call, with the
// optional caller identification attached.
func (c *Client) params() url.Values {
	p := url.Values{"db": {pubmedDB}}
	if c.APIKey != "" {
		p.Set("api_key", c.APIKey)
	}
	if c.Tool != "" {
		p.Set("tool", c.Tool)
	}
	if c.Email != "" {
		p.Set("email", c.Email)
	}
	return p
}
