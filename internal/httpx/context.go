package httpx

import (
	"context"
	"net/http"

	"bookagent/internal/logger"
)

// RequestIDFrom retrieves the request ID set by RequestIDMiddleware.
func RequestIDFrom(r *http.Request) string {
	return logger.IDFrom(r.Context())
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return logger.ContextWithID(ctx, id)
}
