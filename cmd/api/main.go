package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookagent/internal/catalog"
	"bookagent/internal/config"
	"bookagent/internal/httpx"
	"bookagent/internal/logger"
	"bookagent/internal/metrics"
	"bookagent/internal/platform/openlibrary"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("cannot load configuration")
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("cannot configure logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	olClient := openlibrary.NewClient(openlibrary.Options{
		BaseURL:   cfg.OpenLibrary.BaseURL,
		UserAgent: cfg.OpenLibrary.UserAgent,
		Timeout:   cfg.OpenLibrary.Timeout,
		RPS:       cfg.OpenLibrary.RPS,
	})

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go rateLimiter.Run(ctx)

	handler := newHandler(cfg, catalog.NewService(olClient), rateLimiter)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":     cfg.Addr,
			"upstream": cfg.OpenLibrary.BaseURL,
		}).Info("starting server")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server error")
		}
	case <-ctx.Done():
		logrus.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("graceful shutdown failed")
		}
	}
}

func newHandler(cfg config.Config, svc catalog.Aggregator, rateLimiter *httpx.RateLimitMiddleware) http.Handler {
	catalogHandler := catalog.NewHTTPHandler(svc)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("GET /metrics", metrics.Handler())

	router.HandleFunc("GET /search", catalogHandler.Search)
	router.HandleFunc("GET /detail/{key...}", catalogHandler.Detail)

	// Paths the web front end calls.
	router.HandleFunc("GET /api/books", catalogHandler.Search)
	router.HandleFunc("GET /api/books/{key...}", catalogHandler.Detail)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
		httpx.MethodsMiddleware,
		rateLimiter.Middleware,
	)
}
