// Package normalize turns raw Open Library fields into presentation-ready values.
// Every function here is pure: no network calls, no shared state.
package normalize

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

const (
	catalogBaseURL = "https://openlibrary.org"
	coversBaseURL  = "https://covers.openlibrary.org/b"
	archiveBaseURL = "https://archive.org/download"

	// searchFields limits search.json to what a ListItem needs.
	searchFields = "key,title,subtitle,author_name,first_publish_year,language,subject," +
		"cover_i,cover_edition_key,edition_key,ia,has_fulltext,first_sentence,number_of_pages_median"
)

var (
	stripTags = bluemonday.StrictPolicy()

	// markup matches a well-formed common HTML element, so prose such as
	// "a<b and b>c" is not mistaken for a tag.
	markup = regexp.MustCompile(`(?i)</?(?:p|br|hr|i|b|em|strong|u|a|ul|ol|li|div|span|blockquote|sup|sub|h[1-6])(?:\s+[a-z-]+\s*=\s*(?:"[^"]*"|'[^']*'))*\s*/?>`)
)

// Description flattens a work or author description. Open Library sends either a
// plain string or {"type": "/type/text", "value": "..."}; anything else is treated
// as absent. Returns nil when no text remains.
func Description(raw any) *string {
	var text string
	switch v := raw.(type) {
	case string:
		text = v
	case map[string]any:
		s, ok := v["value"].(string)
		if !ok {
			return nil
		}
		text = s
	default:
		return nil
	}

	if markup.MatchString(text) {
		text = html.UnescapeString(stripTags.Sanitize(text))
	}
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return nil
	}
	return &text
}

// CoverRef carries the identifiers the cover service understands.
type CoverRef struct {
	ID   int    // numeric cover id (cover_i / covers[0])
	OLID string // edition key, with or without the /books/ prefix
}

// CoverURL builds a medium-size cover image URL, preferring the numeric id.
func CoverURL(ref CoverRef) string {
	if ref.ID > 0 {
		return fmt.Sprintf("%s/id/%d-M.jpg", coversBaseURL, ref.ID)
	}
	olid := lastSegment(ref.OLID)
	if olid == "" {
		return ""
	}
	return fmt.Sprintf("%s/olid/%s-M.jpg", coversBaseURL, url.PathEscape(olid))
}

// WorkURL returns the public catalog page for a work key such as "works/OL45804W".
func WorkURL(workKey string) string {
	return catalogBaseURL + "/" + strings.TrimPrefix(workKey, "/")
}

// PDFURL guesses the direct download link of a digitized edition from its archive
// identifier. The document is not checked for existence.
func PDFURL(identifier string) string {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return ""
	}
	id = url.PathEscape(id)
	return fmt.Sprintf("%s/%s/%s.pdf", archiveBaseURL, id, id)
}

// SearchURL builds the search.json URL for a one-based page. page and limit must
// already be clamped by the caller so the offset cannot overflow.
func SearchURL(baseURL, query string, page, limit int) string {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", fmt.Sprint(limit))
	q.Set("offset", fmt.Sprint((page-1)*limit))
	q.Set("fields", searchFields)
	return strings.TrimSuffix(baseURL, "/") + "/search.json?" + q.Encode()
}

// TrimKey drops the leading slash from upstream keys ("/works/OL1W" -> "works/OL1W").
func TrimKey(key string) string {
	return strings.TrimPrefix(strings.TrimSpace(key), "/")
}

func lastSegment(key string) string {
	key = strings.Trim(strings.TrimSpace(key), "/")
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[i+1:]
	}
	return key
}
