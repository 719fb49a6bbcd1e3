package catalog

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"bookagent/internal/platform/openlibrary"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workWithAuthors(title string, authorKeys ...string) *openlibrary.Work {
	w := &openlibrary.Work{Key: "/works/OL1W", Title: title}
	for _, k := range authorKeys {
		w.Authors = append(w.Authors, struct {
			Author openlibrary.Ref `json:"author"`
		}{Author: openlibrary.Ref{Key: k}})
	}
	return w
}

func TestService_Detail_BestEditionAndPDFOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)

	work := workWithAuthors("White Fang")
	work.FirstPublishDate = "1906"
	work.Subjects = []string{"Wolves", "Dogs"}
	work.SubjectPlaces = []string{"Yukon", "Dogs"}
	work.Description = map[string]any{"type": "/type/text", "value": "A wolfdog's journey. It is wild. It is long."}

	mockCatalog.EXPECT().GetWork(gomock.Any(), "works/OL1W").Return(work, nil)
	mockCatalog.EXPECT().GetEditions(gomock.Any(), "works/OL1W").Return([]openlibrary.Edition{
		{Key: "/books/OL1M", PublishDate: "1990"},
		{Key: "/books/OL2M", OCAID: "abc123", Title: "Ed2", PublishDate: "1915",
			Languages: []openlibrary.Ref{{Key: "/languages/eng"}}, NumberOfPages: intPtr(210)},
	}, nil)

	detail, err := NewService(mockCatalog).Detail(context.Background(), "works/OL1W")

	require.NoError(t, err)
	assert.Equal(t, "/works/OL1W", detail.Key)
	assert.Equal(t, "works/OL1W", detail.WorkKey)
	require.Len(t, detail.PDFOptions, 1)
	assert.True(t, strings.HasSuffix(detail.PDFOptions[0].URL, "abc123/abc123.pdf"))
	assert.Equal(t, "Ed2", detail.PDFOptions[0].Label)
	assert.Equal(t, "Internet Archive", detail.PDFOptions[0].Source)

	require.NotNil(t, detail.EditionKey)
	assert.Equal(t, "/books/OL2M", *detail.EditionKey)
	assert.Equal(t, AvailabilityPDF, detail.Availability)
	assert.Equal(t, "https://archive.org/download/abc123/abc123.pdf", *detail.PDFURL)
	assert.Equal(t, "https://covers.openlibrary.org/b/olid/OL2M-M.jpg", *detail.CoverURL)
	assert.Equal(t, []string{"eng"}, detail.Languages)
	assert.Equal(t, 210, *detail.PageCount)
	assert.Equal(t, 1906, *detail.FirstPublishYear)

	assert.Equal(t, []string{"Wolves", "Dogs", "Yukon"}, detail.Subjects)
	assert.Equal(t, []string{"Wolves", "Dogs", "Yukon"}, detail.RelatedSubjects)
	assert.Equal(t, "A wolfdog's journey. It is wild. It is long.", *detail.Description)
	assert.Equal(t, "A wolfdog's journey. It is wild.", detail.Insights.QuickSummary)
	assert.Equal(t, detail.Insights.QuickSummary, *detail.Snippet)

	assert.Equal(t, []TimelineEvent{
		{Label: "First published", Value: "1906"},
		{Label: "Popular edition", Value: "1915"},
	}, detail.Timeline)
	assert.Equal(t, []string{"Typical page count: 210"}, detail.Excerpts)
}

func TestService_Detail_NoEditions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)

	mockCatalog.EXPECT().GetWork(gomock.Any(), "works/OL1W").Return(workWithAuthors(""), nil)
	mockCatalog.EXPECT().GetEditions(gomock.Any(), "works/OL1W").Return([]openlibrary.Edition{}, nil)

	detail, err := NewService(mockCatalog).Detail(context.Background(), "/works/OL1W")

	require.NoError(t, err)
	assert.Equal(t, "Untitled", detail.Title)
	assert.Nil(t, detail.EditionKey)
	assert.Nil(t, detail.CoverURL)
	assert.Nil(t, detail.PDFURL)
	assert.Nil(t, detail.PageCount)
	assert.Nil(t, detail.Description)
	assert.Equal(t, AvailabilityUnknown, detail.Availability)
	assert.NotNil(t, detail.PDFOptions)
	assert.Empty(t, detail.PDFOptions)
	assert.NotNil(t, detail.Languages)
	assert.NotNil(t, detail.Authors)
	assert.Empty(t, detail.Timeline)
	assert.Equal(t, []string{excerptFallback}, detail.Excerpts)
	assert.Len(t, detail.Insights.IdealFor, 1)
}

func TestService_Detail_EditionsFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)

	work := workWithAuthors("Fantastic Mr Fox")
	work.Created = &openlibrary.TypedValue{Type: "/type/datetime", Value: "2009-10-15T11:34:21.437031"}

	mockCatalog.EXPECT().GetWork(gomock.Any(), "works/OL1W").Return(work, nil)
	mockCatalog.EXPECT().GetEditions(gomock.Any(), "works/OL1W").
		Return(nil, &openlibrary.StatusError{StatusCode: http.StatusInternalServerError})

	detail, err := NewService(mockCatalog).Detail(context.Background(), "works/OL1W")

	require.NoError(t, err)
	assert.Empty(t, detail.PDFOptions)
	assert.Equal(t, []string{excerptFallback}, detail.Excerpts)
	assert.Equal(t, []TimelineEvent{{Label: "Added to archive", Value: "2009-10-15"}}, detail.Timeline)
}

func TestService_Detail_AuthorFailureKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)

	work := workWithAuthors("Anthology", "/authors/OL1A", "/authors/OL2A", "/authors/OL3A", "/authors/OL4A")
	mockCatalog.EXPECT().GetWork(gomock.Any(), "works/OL1W").Return(work, nil)
	mockCatalog.EXPECT().GetEditions(gomock.Any(), "works/OL1W").Return(nil, nil)
	mockCatalog.EXPECT().GetAuthor(gomock.Any(), "/authors/OL1A").
		Return(&openlibrary.AuthorDetails{Name: "Dahl, Roald", PersonalName: "Roald Dahl"}, nil)
	mockCatalog.EXPECT().GetAuthor(gomock.Any(), "/authors/OL2A").
		Return(nil, &openlibrary.StatusError{StatusCode: http.StatusNotFound})
	mockCatalog.EXPECT().GetAuthor(gomock.Any(), "/authors/OL3A").
		Return(&openlibrary.AuthorDetails{Name: "Quentin Blake"}, nil)

	detail, err := NewService(mockCatalog).Detail(context.Background(), "works/OL1W")

	require.NoError(t, err)
	assert.Equal(t, []string{"Roald Dahl", "Quentin Blake"}, detail.Authors)
}

func TestService_Detail_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)

	mockCatalog.EXPECT().GetWork(gomock.Any(), "works/OL0W").
		Return(nil, &openlibrary.StatusError{StatusCode: http.StatusNotFound})

	_, err := NewService(mockCatalog).Detail(context.Background(), "works/OL0W")

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestService_Detail_UpstreamFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)

	mockCatalog.EXPECT().GetWork(gomock.Any(), "works/OL1W").
		Return(nil, &openlibrary.StatusError{StatusCode: http.StatusInternalServerError})

	_, err := NewService(mockCatalog).Detail(context.Background(), "works/OL1W")

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusInternalServerError, upstream.Status)
}

func TestService_Detail_CollapsesEmptySegments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)

	mockCatalog.EXPECT().GetWork(gomock.Any(), "works/OL1W").
		Return(nil, &openlibrary.StatusError{StatusCode: http.StatusNotFound})

	_, err := NewService(mockCatalog).Detail(context.Background(), "/works//OL1W/")

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestService_Detail_EmptyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewService(NewMockCatalog(ctrl)).Detail(context.Background(), " / ")

	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestBestEdition(t *testing.T) {
	assert.Nil(t, bestEdition(nil))

	plain := []openlibrary.Edition{{Key: "/books/A"}, {Key: "/books/B"}}
	assert.Equal(t, "/books/A", bestEdition(plain).Key)

	scanned := []openlibrary.Edition{{Key: "/books/A"}, {Key: "/books/B", OCAID: "b1"}, {Key: "/books/C", OCAID: "c1"}}
	assert.Equal(t, "/books/B", bestEdition(scanned).Key)
}

func TestPDFOptions_AllQualifyingEditions(t *testing.T) {
	options := pdfOptions([]openlibrary.Edition{
		{OCAID: "one", Title: "First"},
		{OCAID: ""},
		{OCAID: "one"},
	}, "")

	require.Len(t, options, 2)
	assert.Equal(t, "First", options[0].Label)
	assert.Equal(t, "Edition", options[1].Label)
	assert.Equal(t, options[0].URL, options[1].URL)

	labelled := pdfOptions([]openlibrary.Edition{{OCAID: "x"}}, "Work Title")
	assert.Equal(t, "Work Title", labelled[0].Label)
}

func TestExcerpts(t *testing.T) {
	editions := []openlibrary.Edition{
		{Publishers: []string{"Penguin", "Puffin"}, NumberOfPages: intPtr(100)},
		{Publishers: []string{"Penguin", "Puffin"}, NumberOfPages: intPtr(101)},
		{Publishers: []string{"Knopf"}},
		{Publishers: []string{"Allen & Unwin"}},
		{Publishers: []string{"Vintage"}},
	}

	assert.Equal(t, []string{
		"Publishers: Penguin, Puffin, Knopf, Allen & Unwin",
		"Typical page count: 101",
	}, excerpts(editions))

	assert.Equal(t, []string{excerptFallback}, excerpts(nil))
}

func TestTimeline_Order(t *testing.T) {
	work := &openlibrary.Work{
		FirstPublishDate: "1970",
		Created:          &openlibrary.TypedValue{Value: "2009-10-15T11:34:21"},
	}
	best := &openlibrary.Edition{PublishDate: "1988"}

	assert.Equal(t, []TimelineEvent{
		{Label: "First published", Value: "1970"},
		{Label: "Popular edition", Value: "1988"},
		{Label: "Added to archive", Value: "2009-10-15"},
	}, timeline(work, best))
}

func TestPublishYear(t *testing.T) {
	assert.Equal(t, 1970, *publishYear("1970"))
	assert.Equal(t, 1970, *publishYear("October 1, 1970"))
	assert.Nil(t, publishYear(""))
	assert.Nil(t, publishYear("unknown"))
}
