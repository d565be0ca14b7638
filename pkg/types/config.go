// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperscout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the fetch pipeline.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of identifiers requested from the
	// search endpoint (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// CompanyKeywords is the keyword set used to classify an author as
	// non-academic. Matching is case-sensitive substring containment
	// against the verbatim affiliation text.
	CompanyKeywords []string `json:"company_keywords" yaml:"company_keywords"`

	// CompanyEmailDomains lists email domains of known pharma companies.
	// Reserved for a corresponding-author classification path that is not
	// part of the current report; kept injectable rather than hard-coded.
	CompanyEmailDomains []string `json:"company_email_domains" yaml:"company_email_domains"`
}

// ArchiveConfig holds settings for the local run archive.
type ArchiveConfig struct {
	// Path is the SQLite database file for archived runs
	// (default "archive/paperscout.db").
	Path string `json:"path" yaml:"path"`
}

// Config groups all stage configurations.
type Config struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
}

// DefaultCompanyKeywords returns the default corporate keyword set.
func DefaultCompanyKeywords() []string {
	return []string{"Inc", "Ltd", "LLC", "Pharma", "Biotech", "Therapeutics", "Laboratories", "Corp", "GmbH"}
}

// DefaultCompanyEmailDomains returns the default known company email domains.
func DefaultCompanyEmailDomains() []string {
	return []string{"@pfizer.com", "@gsk.com", "@novartis.com", "@merck.com", "@roche.com"}
}
