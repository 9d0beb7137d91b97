package cli

import (
	"github.com/spf13/cobra"

	"ventas-admin/internal/common/pagination"
)

func newListCmd(opts *options) *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "Show one page of a collection",
		Long: `Show one page of a collection with its pagination metadata.

Resources: vendedores, productos, proveedores, planes-venta, logistica.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			col, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			params := pagination.Params{Page: page, Limit: limit}
			if params.Limit == 0 {
				params.Limit = a.cfg.ItemsPerPage
			}
			if err := params.Validate(pagination.DefaultConfig()); err != nil {
				return err
			}

			listing, err := col.List(ctx, params)
			if err != nil {
				return err
			}
			return writeListing(cmd.OutOrStdout(), opts.output, listing)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(&limit, "limit", 0, "rows per page (default: items_per_page from the configuration)")
	return cmd
}
