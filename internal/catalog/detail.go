package catalog

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"bookagent/internal/insight"
	"bookagent/internal/logger"
	"bookagent/internal/metrics"
	"bookagent/internal/normalize"
	"bookagent/internal/platform/openlibrary"
)

const (
	untitled        = "Untitled"
	editionFallback = "Edition"
	excerptFallback = "Detailed edition information will be added soon."
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// Detail aggregates the work record, its editions and its authors into one entity.
// Only the work fetch can fail the call; editions and authors degrade to empty.
func (s *Service) Detail(ctx context.Context, workKey string) (*Detail, error) {
	workKey = NormalizeWorkKey(workKey)
	if workKey == "" {
		return nil, ErrInvalidRequest
	}
	defer logger.Track(ctx, "catalog detail "+workKey)()

	work, err := s.catalog.GetWork(ctx, workKey)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, upstreamFailure("work", err)
	}

	editions, err := s.catalog.GetEditions(ctx, workKey)
	if err != nil {
		metrics.DegradedStepsTotal.WithLabelValues("editions").Inc()
		logger.For(ctx).WithError(err).WithField("work", workKey).Warn("editions unavailable, continuing without")
		editions = nil
	}

	best := bestEdition(editions)
	subjects := normalize.Unique(work.Subjects, work.SubjectPlaces, work.SubjectPeople, work.SubjectTimes)
	primary := normalize.Head(subjects, MaxPrimarySubjects)
	authors := s.resolveAuthors(ctx, work.AuthorKeys())
	description := normalize.Description(work.Description)
	options := pdfOptions(editions, work.Title)

	insights := Insight{
		QuickSummary:     insight.Summarize(description),
		IdealFor:         insight.IdealFor(primary, authors),
		ReadingCompanion: insight.ReadingCompanion(primary, authors),
	}

	title := strings.TrimSpace(work.Title)
	if title == "" {
		title = untitled
	}

	item := ListItem{
		Key:              "/" + workKey,
		WorkKey:          workKey,
		Title:            title,
		Authors:          authors,
		FirstPublishYear: publishYear(work.FirstPublishDate),
		Languages:        []string{},
		Subjects:         primary,
		ReadURL:          normalize.WorkURL(workKey),
		Availability:     AvailabilityUnknown,
		Snippet:          &insights.QuickSummary,
	}
	if best != nil {
		langs := make([]string, 0, len(best.Languages))
		for _, l := range best.Languages {
			langs = append(langs, l.Key)
		}
		item.Languages = normalize.LanguageCodes(langs)

		ref := normalize.CoverRef{OLID: best.Key}
		if len(best.Covers) > 0 && best.Covers[0] > 0 {
			ref.ID = best.Covers[0]
		}
		item.CoverURL = optional(normalize.CoverURL(ref))
		item.PDFURL = optional(normalize.PDFURL(best.OCAID))
		item.EditionKey = optional(best.Key)
		item.PageCount = best.NumberOfPages
	}
	if len(options) > 0 {
		item.Availability = AvailabilityPDF
	}

	return &Detail{
		ListItem:        item,
		Description:     description,
		Excerpts:        excerpts(editions),
		Insights:        insights,
		PDFOptions:      options,
		RelatedSubjects: normalize.Head(subjects, MaxRelatedSubjects),
		Timeline:        timeline(work, best),
	}, nil
}

// bestEdition picks the first edition with an archive identifier, else the first
// edition. Returns nil for an empty list.
func bestEdition(editions []openlibrary.Edition) *openlibrary.Edition {
	for i := range editions {
		if strings.TrimSpace(editions[i].OCAID) != "" {
			return &editions[i]
		}
	}
	if len(editions) == 0 {
		return nil
	}
	return &editions[0]
}

func pdfOptions(editions []openlibrary.Edition, workTitle string) []PDFOption {
	options := []PDFOption{}
	for _, e := range editions {
		url := normalize.PDFURL(e.OCAID)
		if url == "" {
			continue
		}
		label := strings.TrimSpace(e.Title)
		if label == "" {
			label = strings.TrimSpace(workTitle)
		}
		if label == "" {
			label = editionFallback
		}
		options = append(options, PDFOption{Label: label, URL: url, Source: pdfSource})
	}
	return options
}

// excerpts always returns at least one line.
func excerpts(editions []openlibrary.Edition) []string {
	var publishers []string
	pages, counted := 0, 0
	for _, e := range editions {
		if joined := strings.Join(e.Publishers, ", "); strings.TrimSpace(joined) != "" {
			publishers = append(publishers, joined)
		}
		if e.NumberOfPages != nil && *e.NumberOfPages > 0 {
			pages += *e.NumberOfPages
			counted++
		}
	}

	var out []string
	if names := normalize.Head(normalize.Unique(publishers), maxPublishers); len(names) > 0 {
		out = append(out, "Publishers: "+strings.Join(names, ", "))
	}
	if counted > 0 {
		avg := int(math.Round(float64(pages) / float64(counted)))
		out = append(out, fmt.Sprintf("Typical page count: %d", avg))
	}
	if len(out) == 0 {
		out = append(out, excerptFallback)
	}
	return out
}

func timeline(work *openlibrary.Work, best *openlibrary.Edition) []TimelineEvent {
	events := []TimelineEvent{}
	if v := strings.TrimSpace(work.FirstPublishDate); v != "" {
		events = append(events, TimelineEvent{Label: "First published", Value: v})
	}
	if best != nil {
		if v := strings.TrimSpace(best.PublishDate); v != "" {
			events = append(events, TimelineEvent{Label: "Popular edition", Value: v})
		}
	}
	if work.Created != nil {
		if v := strings.TrimSpace(work.Created.Value); v != "" {
			if len(v) > 10 {
				v = v[:10]
			}
			events = append(events, TimelineEvent{Label: "Added to archive", Value: v})
		}
	}
	return events
}

func publishYear(date string) *int {
	match := yearPattern.FindString(date)
	if match == "" {
		return nil
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &year
}
