package main

import (
	"os"

	"bookagent/internal/catalog"
	"bookagent/internal/config"
	"bookagent/internal/logger"
	"bookagent/internal/platform/openlibrary"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("cannot load configuration")
	}
	if err := logger.Configure("warn", cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("cannot configure logger")
	}

	client := openlibrary.NewClient(openlibrary.Options{
		BaseURL:   cfg.OpenLibrary.BaseURL,
		UserAgent: cfg.OpenLibrary.UserAgent,
		Timeout:   cfg.OpenLibrary.Timeout,
		RPS:       cfg.OpenLibrary.RPS,
	})

	if err := newRootCmd(catalog.NewService(client)).Execute(); err != nil {
		os.Exit(1)
	}
}
