// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles fetched paper data into fixed-shape rows and
// writes them to the console or a CSV file.
package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pdiddy/paperscout/internal/eutils"
	"github.com/pdiddy/paperscout/pkg/types"
)

// listSeparator joins author names and affiliation texts within one column.
const listSeparator = ", "

// Assemble merges summaries and details into one ReportRow per identifier,
// preserving the search-result order regardless of map iteration order.
// Missing summary entries and empty fields degrade to placeholders. Pure
// transformation; it has no failure modes.
func Assemble(ids []string, summaries map[string]types.SummaryRecord, details map[string]types.Detail) []types.ReportRow {
	rows := make([]types.ReportRow, 0, len(ids))
	for _, id := range ids {
		summary := summaries[id]
		detail := details[id]

		var names, affiliations []string
		for _, pair := range detail.Corporate {
			names = append(names, pair.LastName)
			affiliations = append(affiliations, pair.Affiliation)
		}

		email := detail.Email
		if email == "" {
			email = eutils.Placeholder
		}

		rows = append(rows, types.ReportRow{
			PubmedID:        id,
			Title:           orPlaceholder(summary.Title),
			PubDate:         orPlaceholder(summary.PubDate),
			CorporateAuthor: joinOrPlaceholder(names),
			CompanyAffil:    joinOrPlaceholder(affiliations),
			Email:           email,
		})
	}
	return rows
}

func orPlaceholder(s string) string {
	if s == "" {
		return eutils.Placeholder
	}
	return s
}

func joinOrPlaceholder(items []string) string {
	if len(items) == 0 {
		return eutils.Placeholder
	}
	return strings.Join(items, listSeparator)
}

// FormatJSON dumps the rows to w as indented JSON. This is the console
// output when no file destination is given.
func FormatJSON(rows []types.ReportRow, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
