package main

import (
	"bookagent/internal/catalog"

	"github.com/spf13/cobra"
)

func newDetailCmd(svc catalog.Aggregator) *cobra.Command {
	return &cobra.Command{
		Use:   "detail <work-key>",
		Short: "Show the aggregated detail of one work, e.g. works/OL45804W",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := svc.Detail(cmd.Context(), catalog.NormalizeWorkKey(args[0]))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), detail)
		},
	}
}
