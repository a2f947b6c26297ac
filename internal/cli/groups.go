package cli

import (
	"github.com/spf13/cobra"
)

func newGroupsCommand(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "groups [category-slug]",
		Short: "Show the subcategory cards of a category",
		Long: `Prints the landing-page cards of one top-level category, e.g.
"painting-drywall": one card per subcategory in catalog order with up to
four sample services. Without an argument the categories are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.directory(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				cats, err := dir.Categories(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd, cats)
				}
				for _, c := range cats {
					cmd.Printf("%s (%s): %d services\n", c.Name, c.Slug, c.Count)
				}
				return nil
			}

			ov, err := dir.CategoryOverview(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, ov)
			}
			cmd.Printf("%s: %d services\n\n", ov.Name, ov.Count)
			for _, card := range ov.Subcategories {
				cmd.Printf("%s [%s]\n", card.Title, card.Key)
				if card.Description != "" {
					cmd.Printf("  %s\n", card.Description)
				}
				for _, name := range card.Samples {
					cmd.Printf("  - %s\n", name)
				}
				cmd.Printf("  %s -> %s\n\n", card.CountLabel, card.Link)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
