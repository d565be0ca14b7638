// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pdiddy/paperscout/pkg/types"
)

// Columns returns the fixed CSV header, in output order.
func Columns() []string {
	return []string{
		"PubmedID",
		"Title",
		"Publication Date",
		"Non-academic Author(s)",
		"Company Affiliation(s)",
		"Corresponding Author Email",
	}
}

// WriteCSV writes the rows to path as UTF-8 CSV: a header row followed by
// one data row per ReportRow, columns in the fixed order. The caller is
// responsible for skipping the write when rows is empty.
func WriteCSV(rows []types.ReportRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.PubmedID,
			row.Title,
			row.PubDate,
			row.CorporateAuthor,
			row.CompanyAffil,
			row.Email,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row for %s: %w", row.PubmedID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
