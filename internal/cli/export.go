package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	var limit, parallel int

	cmd := &cobra.Command{
		Use:   "export <resource>",
		Short: "Download every page of a collection",
		Long: `Download every page of a collection and print the records in order.

When the backend reports a page count the remaining pages are fetched
concurrently; otherwise pages are read one by one until a short page.`,
		Example: "  ventas export vendedores -o json --parallel 8",
		Args:    cobra.ExactArgs(1),
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

			listing, err := col.Export(ctx, limit, parallel)
			if err != nil {
				return err
			}
			if err := writeListing(cmd.OutOrStdout(), opts.output, listing); err != nil {
				return err
			}
			if opts.output == formatTable {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d %s exported\n", len(listing.Rows), col.Name())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "rows per request (1-100)")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "concurrent page requests when the page count is known")
	return cmd
}
