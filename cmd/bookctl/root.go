package main

import (
	"encoding/json"
	"io"

	"bookagent/internal/catalog"

	"github.com/spf13/cobra"
)

func newRootCmd(svc catalog.Aggregator) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bookctl",
		Short: "Search Open Library and inspect works from the terminal",
		Long: `bookctl runs the same search and detail aggregation as the API server,
without going through HTTP.

Examples:
  # Search, second page, only items with a PDF
  bookctl search "jack london" --page 2 --pdf-only

  # Full detail for a work
  bookctl detail works/OL45804W`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSearchCmd(svc), newDetailCmd(svc))
	return rootCmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
