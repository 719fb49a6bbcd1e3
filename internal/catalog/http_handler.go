package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookagent/internal/httpx"
	"bookagent/internal/logger"
)

const (
	msgQueryRequired   = "Query is required"
	msgMissingWorkKey  = "Missing work key"
	msgWorkNotFound    = "Work not found"
	msgSearchUpstream  = "Unable to reach Open Library"
	msgDetailUpstream  = "Failed to load work metadata"
	searchCacheControl = "no-store"
	detailCacheControl = "public, max-age=3600"
)

// Aggregator is what the HTTP layer needs from the catalog service.
type Aggregator interface {
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
	Detail(ctx context.Context, workKey string) (*Detail, error)
}

type HTTPHandler struct {
	svc Aggregator
}

func NewHTTPHandler(svc Aggregator) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Search handles GET /search
// @Summary Search books
// @Description Search Open Library works and return normalized list items
// @Tags catalog
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 12)" default(12)
// @Param pdfOnly query string false "Only items with a PDF link when \"true\""
// @Success 200 {object} catalog.SearchResult
// @Failure 400 {object} httpx.ErrorResponse
// @Router /search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := intParam(query.Get("limit"), DefaultLimit)
	if limit < 1 {
		limit = 1
	}
	params := SearchParams{
		Query:   query.Get("q"),
		Page:    intParam(query.Get("page"), 1),
		Limit:   limit,
		PDFOnly: query.Get("pdfOnly") == "true",
	}.Normalize()

	if errs := httpx.ValidateStruct(params); len(errs) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, msgQueryRequired)
		return
	}

	result, err := h.svc.Search(r.Context(), params)
	if err != nil {
		h.writeError(w, r, err, msgQueryRequired, msgSearchUpstream)
		return
	}

	w.Header().Set("Cache-Control", searchCacheControl)
	httpx.JSON(w, r, http.StatusOK, result)
}

// Detail handles GET /detail/{key...}
// @Summary Get work detail
// @Description Aggregate a work, its editions and authors into one detail entity
// @Tags catalog
// @Produce json
// @Param key path string true "Work key, e.g. works/OL45804W"
// @Success 200 {object} catalog.Detail
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /detail/{key} [get]
func (h *HTTPHandler) Detail(w http.ResponseWriter, r *http.Request) {
	workKey := NormalizeWorkKey(r.PathValue("key"))
	if workKey == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, msgMissingWorkKey)
		return
	}

	detail, err := h.svc.Detail(r.Context(), workKey)
	if err != nil {
		h.writeError(w, r, err, msgMissingWorkKey, msgDetailUpstream)
		return
	}

	w.Header().Set("Cache-Control", detailCacheControl)
	httpx.JSON(w, r, http.StatusOK, detail)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, invalidMsg, upstreamMsg string) {
	var upstream *UpstreamError
	switch {
	case errors.Is(err, ErrInvalidRequest):
		httpx.JSONError(w, r, http.StatusBadRequest, invalidMsg)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, msgWorkNotFound)
	case errors.As(err, &upstream):
		logger.For(r.Context()).WithError(err).WithField("status", upstream.Status).Warn("upstream failure")
		httpx.JSONError(w, r, upstream.Status, upstreamMsg)
	default:
		logger.For(r.Context()).WithError(err).Error("catalog request failed")
		httpx.JSONError(w, r, http.StatusInternalServerError, upstreamMsg)
	}
}

func intParam(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}
