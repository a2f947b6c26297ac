package cli

import (
	"fmt"

	"service_directory/internal/repository"
	"service_directory/internal/repository/db"

	"github.com/spf13/cobra"
)

func newExportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export-sqlite <out.db>",
		Short: "Write the valid catalog records to a SQLite snapshot",
		Long: `Loads the catalog, drops rejected records and writes the rest, in
order, to a SQLite file the server can serve with catalog.source=sqlite.
An existing snapshot in the file is replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}

			conn, err := db.InitDB(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			records := loaded.Catalog.Records()
			if err := repository.NewCatalogSQLite(conn).Export(cmd.Context(), records); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			cmd.Printf("exported %d services to %s (%d rejected)\n", len(records), args[0], len(loaded.Rejected))
			return nil
		},
	}
}
