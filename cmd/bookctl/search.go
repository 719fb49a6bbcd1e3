package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"bookagent/internal/catalog"

	"github.com/spf13/cobra"
)

type searchOptions struct {
	page    int
	limit   int
	pdfOnly bool
	json    bool
}

func newSearchCmd(svc catalog.Aggregator) *cobra.Command {
	opts := searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search works by free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.page > catalog.MaxPages {
				return fmt.Errorf("page must be at most %d", catalog.MaxPages)
			}
			res, err := svc.Search(cmd.Context(), catalog.SearchParams{
				Query:   strings.Join(args, " "),
				Page:    opts.page,
				Limit:   opts.limit,
				PDFOnly: opts.pdfOnly,
			})
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return printResults(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Result page")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", catalog.DefaultLimit, "Results per page (max 12)")
	cmd.Flags().BoolVar(&opts.pdfOnly, "pdf-only", false, "Only show items with a PDF download")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the raw JSON result")
	return cmd
}

// totalPages is the number of pages a client can offer for res.
func totalPages(res *catalog.SearchResult) int {
	if res.Limit < 1 || res.Total < 1 {
		return 1
	}
	pages := (res.Total + res.Limit - 1) / res.Limit
	return min(pages, catalog.MaxPages)
}

func printResults(w io.Writer, res *catalog.SearchResult) error {
	fmt.Fprintf(w, "%d results, page %d of %d\n\n", res.Total, res.Page, totalPages(res))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTITLE\tAUTHORS\tYEAR\tAVAILABILITY")
	for _, item := range res.Results {
		year := "-"
		if item.FirstPublishYear != nil {
			year = fmt.Sprint(*item.FirstPublishYear)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			item.WorkKey, item.Title, strings.Join(item.Authors, ", "), year, item.Availability)
	}
	return tw.Flush()
}
