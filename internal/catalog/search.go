package catalog

import (
	"context"
	"regexp"
	"strings"

	"bookagent/internal/logger"
	"bookagent/internal/normalize"
	"bookagent/internal/platform/openlibrary"

	"github.com/sirupsen/logrus"
)

var quotes = regexp.MustCompile(`['"]+`)

// Search runs one upstream search and maps every hit to a ListItem. With PDFOnly set,
// items without a PDF link are dropped after mapping; Total still reports the
// upstream count.
func (s *Service) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	params = params.Normalize()
	if params.Query == "" {
		return nil, ErrInvalidRequest
	}
	defer logger.Track(ctx, "catalog search")()

	res, err := s.catalog.Search(ctx, params.Query, params.Page, params.Limit)
	if err != nil {
		return nil, upstreamFailure("search", err)
	}

	results := make([]ListItem, 0, len(res.Docs))
	for _, doc := range res.Docs {
		item := listItemFromDoc(doc)
		if params.PDFOnly && item.PDFURL == nil {
			continue
		}
		results = append(results, item)
	}

	total := len(results)
	if res.NumFound != nil {
		total = *res.NumFound
	}

	logger.For(ctx).WithFields(logrus.Fields{
		"query":   params.Query,
		"page":    params.Page,
		"total":   total,
		"results": len(results),
	}).Debug("search mapped")

	return &SearchResult{
		Total:   total,
		Page:    params.Page,
		Limit:   params.Limit,
		Results: results,
	}, nil
}

func listItemFromDoc(doc openlibrary.SearchDoc) ListItem {
	workKey := normalize.TrimKey(doc.Key)

	var pdfURL string
	if len(doc.IA) > 0 {
		pdfURL = normalize.PDFURL(doc.IA[0])
	}

	editionKey := doc.CoverEditionKey
	if len(doc.EditionKeys) > 0 {
		editionKey = doc.EditionKeys[0]
	}

	return ListItem{
		Key:              doc.Key,
		WorkKey:          workKey,
		Title:            doc.Title,
		Subtitle:         optional(strings.TrimSpace(doc.Subtitle)),
		Authors:          nonNil(doc.AuthorNames),
		FirstPublishYear: doc.FirstPublishYear,
		Languages:        nonNil(doc.Language),
		Subjects:         normalize.Head(doc.Subject, maxListSubjects),
		CoverURL:         optional(normalize.CoverURL(normalize.CoverRef{ID: doc.CoverID, OLID: doc.CoverEditionKey})),
		ReadURL:          normalize.WorkURL(workKey),
		PDFURL:           optional(pdfURL),
		Availability:     availabilityOf(pdfURL != "", doc.HasFulltext),
		Snippet:          snippetOf(doc),
		EditionKey:       optional(editionKey),
		PageCount:        doc.NumberOfPagesMedian,
	}
}

func availabilityOf(hasPDF, hasFulltext bool) Availability {
	switch {
	case hasPDF:
		return AvailabilityPDF
	case hasFulltext:
		return AvailabilityOnline
	default:
		return AvailabilityUnknown
	}
}

// snippetOf prefers the first sentence with quote marks removed, then the subtitle.
func snippetOf(doc openlibrary.SearchDoc) *string {
	if len(doc.FirstSentence) > 0 {
		s := strings.TrimSpace(quotes.ReplaceAllString(strings.Join(doc.FirstSentence, " "), ""))
		if s != "" {
			return &s
		}
	}
	return optional(strings.TrimSpace(doc.Subtitle))
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
