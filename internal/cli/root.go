// Package cli implements catalogctl, the offline catalog tool.
package cli

import (
	"context"
	"fmt"

	"service_directory/internal/logger"
	"service_directory/internal/repository"
	"service_directory/internal/repository/db"
	"service_directory/internal/service"

	"github.com/spf13/cobra"
)

// options are the flags shared by every command.
type options struct {
	catalog  string
	source   string
	labels   string
	logLevel string
}

// NewRootCommand builds the catalogctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Inspect, query and export the service catalog",
		Long: `catalogctl works on the bundled service catalog without a server.

It validates catalog files, runs directory queries, shows category
landing-page groups, exports SQLite snapshots and opens a terminal browser.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.catalog, "catalog", "data/services.json", "catalog file (JSON or SQLite snapshot)")
	root.PersistentFlags().StringVar(&opts.source, "source", "", "catalog source: json or sqlite (default: by file extension)")
	root.PersistentFlags().StringVar(&opts.labels, "labels", "data/subcategories.yml", "subcategory metadata file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", logger.ErrorLevel, "log level")

	root.AddCommand(
		newValidateCommand(opts),
		newQueryCommand(opts),
		newGroupsCommand(opts),
		newExportCommand(opts),
		newBrowseCommand(opts),
	)
	return root
}

// load reads and validates the catalog named by the flags.
func (o *options) load(ctx context.Context) (service.LoadedCatalog, error) {
	source, closeSource, err := repository.OpenCatalog(o.source, o.catalog, db.OpenReadOnly)
	if err != nil {
		return service.LoadedCatalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = closeSource() }()

	repos := repository.NewRepository(source, repository.NewYAMLLabels(o.labels))
	return service.LoadCatalog(ctx, repos, logger.New(o.logLevel, logger.FormatConsole))
}

// directory loads the catalog and wraps it in a directory service.
func (o *options) directory(ctx context.Context) (*service.DirectoryService, error) {
	loaded, err := o.load(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewDirectoryServiceFromCatalog(loaded.Catalog, loaded.Labels, nil), nil
}
