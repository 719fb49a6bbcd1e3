package catalog

import (
	"context"
	"strings"

	"bookagent/internal/logger"
	"bookagent/internal/metrics"

	"golang.org/x/sync/errgroup"
)

// resolveAuthors looks up at most MaxAuthors keys concurrently and returns the
// names that resolved, in key order. A failed lookup never cancels its siblings.
func (s *Service) resolveAuthors(ctx context.Context, keys []string) []string {
	if len(keys) > MaxAuthors {
		keys = keys[:MaxAuthors]
	}
	names := make([]string, len(keys))

	var g errgroup.Group
	g.SetLimit(MaxAuthors)
	for i, key := range keys {
		g.Go(func() error {
			author, err := s.catalog.GetAuthor(ctx, key)
			if err != nil {
				metrics.DegradedStepsTotal.WithLabelValues("author").Inc()
				logger.For(ctx).WithError(err).WithField("author", key).Warn("author lookup failed")
				return nil
			}
			names[i] = strings.TrimSpace(author.DisplayName())
			return nil
		})
	}
	_ = g.Wait()

	resolved := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			resolved = append(resolved, name)
		}
	}
	return resolved
}
