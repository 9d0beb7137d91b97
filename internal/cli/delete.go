package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <resource> <id>",
		Short: "Delete one record",
		Args:  cobra.ExactArgs(2),
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

			if err := col.Delete(ctx, id); err != nil {
				return fmt.Errorf("delete %s %d: %w", col.Name(), id, err)
			}
			a.logger.Info("record deleted", slog.String("resource", col.Name()), slog.Int64("id", id))
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %d\n", col.Name(), id)
			return nil
		},
	}
}
