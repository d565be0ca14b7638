// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paperscout/internal/httputil"
	"github.com/pdiddy/paperscout/pkg/types"
)

// FetchDetail issues one EFetch request for a single identifier and runs
// both extractions over the fetched XML in a single pass:
//
//   - Affiliation scan: every Author element at any depth. The surname
//     defaults to "Unknown" when absent; authors without an affiliation
//     are excluded rather than failing. An affiliation whose text contains
//     any configured keyword (case-sensitive substring) is recorded
//     verbatim with the surname, in document order.
//   - Contact scan: the first Email under any author's ContactInfo block
//     in document order; "N/A" when the document carries none.
//
// A document that is well-formed but lacks the expected nodes yields an
// empty result, not an error. A document that is not well-formed XML is a
// fatal error for the run.
func (c *Client) FetchDetail(ctx context.Context, id string) (types.Detail, error) {
	params := c.params()
	params.Set("id", id)
	params.Set("rettype", "xml")
	params.Set("retmode", "text")

	body, err := httputil.Get(ctx, c.HTTP, efetchBase, params, c.Config.HTTPConfig)
	if err != nil {
		return types.Detail{}, fmt.Errorf("EFetch request for %s: %w", id, err)
	}
	defer body.Close()

	det, err := scanArticle(body, c.Config.CompanyKeywords)
	if err != nil {
		return types.Detail{}, fmt.Errorf("parsing article XML for %s: %w", id, err)
	}
	return det, nil
}

// scanArticle walks the XML token stream and decodes each Author element,
// wherever it appears in the document. Decoding element-by-element rather
// than into a whole-document struct keeps the scan independent of the
// nesting above AuthorList.
func scanArticle(r io.Reader, keywords []string) (types.Detail, error) {
	det := types.Detail{Email: Placeholder}

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return types.Detail{}, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Author" {
			continue
		}

		var author detailAuthor
		if err := dec.DecodeElement(&author, &se); err != nil {
			return types.Detail{}, err
		}

		if pair, ok := classifyAuthor(author, keywords); ok {
			det.Corporate = append(det.Corporate, pair)
		}
		if det.Email == Placeholder && len(author.Contact.Emails) > 0 {
			det.Email = author.Contact.Emails[0]
		}
	}

	return det, nil
}

// classifyAuthor reports whether the author's affiliation contains a
// corporate keyword, returning the (surname, affiliation) pair when it
// does. Authors with no affiliation text are never classified.
func classifyAuthor(author detailAuthor, keywords []string) (types.AuthorAffiliation, bool) {
	affiliation := firstAffiliation(author)
	if affiliation == "" {
		return types.AuthorAffiliation{}, false
	}
	if !containsKeyword(affiliation, keywords) {
		return types.AuthorAffiliation{}, false
	}

	name := author.LastName
	if name == "" {
		name = UnknownAuthor
	}
	return types.AuthorAffiliation{LastName: name, Affiliation: affiliation}, true
}

// firstAffiliation returns the first non-empty Affiliation text across the
// author's AffiliationInfo blocks.
func firstAffiliation(author detailAuthor) string {
	for _, info := range author.AffiliationInfo {
		if info.Affiliation != "" {
			return info.Affiliation
		}
	}
	return ""
}

// containsKeyword reports case-sensitive substring containment of any
// keyword in the affiliation text.
func containsKeyword(affiliation string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(affiliation, kw) {
			return true
		}
	}
	return false
}

// Article XML structures, scoped to one Author element.
type detailAuthor struct {
	LastName        string            `xml:"LastName"`
	AffiliationInfo []detailAffilInfo `xml:"AffiliationInfo"`
	Contact         detailContactInfo `xml:"ContactInfo"`
}

type detailAffilInfo struct {
	Affiliation string `xml:"Affiliation"`
}

type detailContactInfo struct {
	Emails []string `xml:"Email"`
}
