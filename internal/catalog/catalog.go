package catalog

import (
	"math"
	"strings"
)

const (
	// DefaultLimit is both the default and the maximum search page size.
	DefaultLimit = 12
	// MaxPages is how many result pages a client is expected to offer.
	MaxPages = 50

	MaxAuthors         = 3
	MaxPrimarySubjects = 12
	MaxRelatedSubjects = 8
	maxListSubjects    = 10
	maxPublishers      = 3

	pdfSource = "Internet Archive"
)

type Availability string

const (
	AvailabilityPDF     Availability = "pdf"
	AvailabilityOnline  Availability = "online"
	AvailabilityUnknown Availability = "unknown"
)

// ListItem is one search result. Nullable fields encode as JSON null.
type ListItem struct {
	Key              string       `json:"key"`
	WorkKey          string       `json:"workKey"`
	Title            string       `json:"title"`
	Subtitle         *string      `json:"subtitle"`
	Authors          []string     `json:"authors"`
	FirstPublishYear *int         `json:"firstPublishYear"`
	Languages        []string     `json:"languages"`
	Subjects         []string     `json:"subjects"`
	CoverURL         *string      `json:"coverUrl"`
	ReadURL          string       `json:"readUrl"`
	PDFURL           *string      `json:"pdfUrl"`
	Availability     Availability `json:"availability"`
	Snippet          *string      `json:"snippet"`
	EditionKey       *string      `json:"editionKey"`
	PageCount        *int         `json:"pageCount"`
}

// Detail is the full view of one work.
type Detail struct {
	ListItem
	Description     *string         `json:"description"`
	Excerpts        []string        `json:"excerpts"`
	Insights        Insight         `json:"insights"`
	PDFOptions      []PDFOption     `json:"pdfOptions"`
	RelatedSubjects []string        `json:"relatedSubjects"`
	Timeline        []TimelineEvent `json:"timeline"`
}

type Insight struct {
	QuickSummary     string   `json:"quickSummary"`
	IdealFor         []string `json:"idealFor"`
	ReadingCompanion string   `json:"readingCompanion"`
}

type PDFOption struct {
	Label  string `json:"label"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

type TimelineEvent struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SearchParams are the inputs of a search. Use Normalize before validating.
type SearchParams struct {
	Query   string `validate:"required"`
	Page    int    `validate:"gte=1"`
	Limit   int    `validate:"gte=1,lte=12"`
	PDFOnly bool
}

// Normalize trims the query and applies paging defaults and bounds. A zero Limit
// means unset and becomes DefaultLimit.
func (p SearchParams) Normalize() SearchParams {
	p.Query = strings.TrimSpace(p.Query)
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.Limit == 0:
		p.Limit = DefaultLimit
	case p.Limit < 1:
		p.Limit = 1
	}
	if p.Limit > DefaultLimit {
		p.Limit = DefaultLimit
	}
	// Keep the upstream offset, (Page-1)*Limit, within int32.
	if maxPage := math.MaxInt32/p.Limit + 1; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

// SearchResult is the search response. Total is the upstream hit count and is not
// adjusted when PDFOnly filtering removes items.
type SearchResult struct {
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	Limit   int        `json:"limit"`
	Results []ListItem `json:"results"`
}

func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

// NormalizeWorkKey drops empty path segments: "/works//OL1W/" becomes "works/OL1W".
func NormalizeWorkKey(raw string) string {
	parts := strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool { return r == '/' })
	return strings.Join(parts, "/")
}
