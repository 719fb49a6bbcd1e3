package catalog

import (
	"context"

	"bookagent/internal/platform/openlibrary"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=catalog

// Catalog is the upstream bibliographic source. *openlibrary.Client implements it.
type Catalog interface {
	Search(ctx context.Context, query string, page, limit int) (*openlibrary.SearchResponse, error)
	GetWork(ctx context.Context, workKey string) (*openlibrary.Work, error)
	GetEditions(ctx context.Context, workKey string) ([]openlibrary.Edition, error)
	GetAuthor(ctx context.Context, authorKey string) (*openlibrary.AuthorDetails, error)
}
