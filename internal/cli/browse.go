package cli

import (
	"service_directory/internal/service"
	"service_directory/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCommand(opts *options) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the terminal directory browser",
		Long: `Opens an interactive directory view over the catalog.

Controls:
  type       - Search
  tab        - Switch between search, results and filters
  ↑/↓        - Navigate
  enter      - Open details / toggle filter
  esc        - Close details
  ctrl+l     - Grid or list
  ctrl+r     - Reset
  ctrl+c     - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := opts.directory(cmd.Context())
			if err != nil {
				return err
			}
			sessions := service.NewSessionService(dir, nil, nil)
			vs, err := sessions.Open(category, "")
			if err != nil {
				return err
			}
			defer sessions.Close(vs)

			_, err = tea.NewProgram(tui.New(vs), tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "start in a subcategory")
	return cmd
}
