package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/pagekit/internal/cli/pagination"
)

// NewShowCmd creates the show command, which prints the derived state of a page.
func NewShowCmd() *cobra.Command {
	params := newPaginationParams()
	var output, statePath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show page, page count, range and navigation offsets",
		Long: `Derives the current page, page count, displayed record range, navigation
offsets and page buttons from --start (or --page), --limit and --total.`,
		Example: `  # Records 41-60 of 120
  pagekit show --start 40 --limit 20 --total 120

  # Page 3 as YAML
  pagekit show --page 3 --limit 20 --total 120 --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(cmd, output)
			if err != nil {
				return err
			}
			pg, err := buildPaginator(cmd, params, statePath)
			if err != nil {
				return err
			}
			return renderMeta(cmd.OutOrStdout(), format, pagination.NewPaginationMeta(pg))
		},
	}

	params.AddFlags(cmd)
	addOutputFlag(cmd, &output)
	addStateFlag(cmd, &statePath)

	return cmd
}
