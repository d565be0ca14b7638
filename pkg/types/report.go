// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperscout pipeline.
package types

import "time"

// SummaryRecord holds the per-article fields returned by the batched
// ESummary call. Fields may be empty when the upstream record omits them;
// the report assembler substitutes placeholders.
type SummaryRecord struct {
	// Title is the article title as returned by ESummary.
	Title string `json:"title" yaml:"title"`

	// PubDate is the publication date string as returned by ESummary.
	// The format is loose (e.g. "2023 Mar 14", "2021").
	PubDate string `json:"pub_date" yaml:"pub_date"`

	// Authors lists the author display names from the summary record.
	// Classification uses the full article XML instead, so this list is
	// informational only.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`
}

// AuthorAffiliation is one (surname, affiliation) pair for an author whose
// affiliation matched a corporate keyword. Pairs are kept in document order
// and may repeat an affiliation verbatim for co-located authors.
type AuthorAffiliation struct {
	// LastName is the author surname, or "Unknown" when the article XML
	// carries an affiliation but no surname for the author.
	LastName string `json:"last_name" yaml:"last_name"`

	// Affiliation is the verbatim affiliation text from the article XML.
	Affiliation string `json:"affiliation" yaml:"affiliation"`
}

// Detail holds everything extracted from one article's full XML record.
type Detail struct {
	// Corporate lists the non-academic authors found in the article, in
	// document order.
	Corporate []AuthorAffiliation `json:"corporate,omitempty" yaml:"corporate,omitempty"`

	// Email is the first contact email found under any author in document
	// order, or "N/A" when the article carries none.
	Email string `json:"email" yaml:"email"`
}

// ReportRow is the final denormalized record for one article: one row of
// the CSV output or one element of the console dump. Field order here is
// the fixed column order of the report.
type ReportRow struct {
	PubmedID        string `json:"pubmed_id" yaml:"pubmed_id"`
	Title           string `json:"title" yaml:"title"`
	PubDate         string `json:"publication_date" yaml:"publication_date"`
	CorporateAuthor string `json:"non_academic_authors" yaml:"non_academic_authors"`
	CompanyAffil    string `json:"company_affiliations" yaml:"company_affiliations"`
	Email           string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}

// Run describes one archived fetch run.
type Run struct {
	// ID is the archive-assigned run identifier.
	ID int64 `json:"id" yaml:"id"`

	// Term is the search query the run was fetched with.
	Term string `json:"term" yaml:"term"`

	// Timestamp is when the run was recorded.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// RowCount is the number of report rows the run produced.
	RowCount int `json:"row_count" yaml:"row_count"`
}
