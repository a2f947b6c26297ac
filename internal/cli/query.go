package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"service_directory"
	"service_directory/internal/service"

	"github.com/spf13/cobra"
)

func newQueryCommand(opts *options) *cobra.Command {
	var (
		q      service.DirectoryQuery
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "query [search]",
		Short: "Run a directory query",
		Long: `Filters the catalog exactly like the directory page: the search text
matches names and descriptions case-insensitively, --category matches the
subcategory slug, and --filter tags match when any of them is a feature.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				q.Search = args[0]
			}
			dir, err := opts.directory(cmd.Context())
			if err != nil {
				return err
			}
			view, err := dir.Browse(cmd.Context(), q)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, view)
			}
			printView(cmd, view)
			return nil
		},
	}
	cmd.Flags().StringVarP(&q.Category, "category", "c", "", "subcategory slug")
	cmd.Flags().StringArrayVarP(&q.Filters, "filter", "f", nil, "feature filter tag (repeatable)")
	cmd.Flags().StringVar(&q.Selected, "selected", "", "record id to show in detail")
	cmd.Flags().StringVar(&q.View, "view", "grid", "grid or list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the view as JSON")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printView(cmd *cobra.Command, view service_directory.DirectoryView) {
	cmd.Println(view.Heading)
	cmd.Println(view.CountLabel)
	if len(view.Services) == 0 {
		return
	}
	cmd.Println()
	for _, s := range view.Services {
		cmd.Printf("  [%s] %s\n", s.ID, s.Name)
		if len(s.Features) > 0 {
			cmd.Printf("      %s\n", strings.Join(s.Features, ", "))
		}
	}
	if d := view.Selected; d != nil {
		cmd.Println()
		cmd.Printf("%s (%s)\n", d.Name, d.Subcategory)
		cmd.Printf("  %s\n", d.Description)
		if d.Price != "" {
			cmd.Printf("  Price: %s\n", d.Price)
		}
		if d.TimeEstimate != "" {
			cmd.Printf("  Time estimate: %s\n", d.TimeEstimate)
		}
		for _, f := range d.Features {
			cmd.Printf("  - %s\n", f)
		}
	}
}
