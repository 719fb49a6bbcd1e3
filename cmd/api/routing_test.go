package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookagent/internal/catalog"
	"bookagent/internal/config"
	"bookagent/internal/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubAggregator struct {
	mock.Mock
}

func (s *stubAggregator) Search(ctx context.Context, params catalog.SearchParams) (*catalog.SearchResult, error) {
	args := s.Called(params.Query)
	return args.Get(0).(*catalog.SearchResult), args.Error(1)
}

func (s *stubAggregator) Detail(ctx context.Context, workKey string) (*catalog.Detail, error) {
	args := s.Called(workKey)
	return args.Get(0).(*catalog.Detail), args.Error(1)
}

func newTestHandler(t *testing.T, svc catalog.Aggregator) http.Handler {
	t.Helper()
	cfg := config.Default()
	return newHandler(cfg, svc, httpx.NewRateLimitMiddleware(1000, 1000))
}

func TestRouting(t *testing.T) {
	svc := new(stubAggregator)
	svc.On("Search", "dogs").Return(&catalog.SearchResult{Page: 1, Limit: 12, Results: []catalog.ListItem{}}, nil)
	svc.On("Detail", "works/OL1W").Return(&catalog.Detail{Excerpts: []string{"x"}}, nil)
	handler := newTestHandler(t, svc)

	tests := []struct {
		path   string
		status int
	}{
		{"/healthz", http.StatusOK},
		{"/search?q=dogs", http.StatusOK},
		{"/api/books?q=dogs", http.StatusOK},
		{"/detail/works/OL1W", http.StatusOK},
		{"/api/books/works/OL1W", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestRouting_RejectsWrites(t *testing.T) {
	handler := newTestHandler(t, new(stubAggregator))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/search?q=dogs", strings.NewReader("{}")))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouting_MetricsExposeRequestCounter(t *testing.T) {
	svc := new(stubAggregator)
	svc.On("Search", "owls").Return(&catalog.SearchResult{Results: []catalog.ListItem{}}, nil)
	handler := newTestHandler(t, svc)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/search?q=owls", nil))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), `route="GET /search"`)
}
