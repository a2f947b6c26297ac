package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(opts *options) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog and report rejected records",
		Long: `Loads the catalog the same way the server does and lists every entry
that was rejected, with the stage (decode or validate), its position and
the reason. With --strict any rejection makes the command fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Printf("%d services loaded, %d rejected\n", loaded.Catalog.Len(), len(loaded.Rejected))
			for _, r := range loaded.Rejected {
				id := r.ID
				if id == "" {
					id = "-"
				}
				cmd.Printf("  [%s #%d] id=%s: %s\n", r.Stage, r.Index, id, r.Reason)
			}
			if missing := loaded.Labels.Missing(loaded.Catalog); len(missing) > 0 {
				cmd.Printf("subcategories without metadata: %v\n", missing)
			}

			if strict && len(loaded.Rejected) > 0 {
				return fmt.Errorf("%d catalog records rejected", len(loaded.Rejected))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any record is rejected")
	return cmd
}
