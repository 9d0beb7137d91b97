package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "get <resource> <id>",
		Short:   "Show one record",
		Example: "  ventas get productos 12 -o yaml",
		Args:    cobra.ExactArgs(2),
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
			id, err := parseID(args[1])
			if err != nil {
				return err
			}

			listing, err := col.Describe(ctx, id)
			if err != nil {
				return fmt.Errorf("get %s %d: %w", col.Name(), id, err)
			}
			return writeListing(cmd.OutOrStdout(), opts.output, listing)
		},
	}
}
