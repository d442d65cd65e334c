package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ButtonsResult is the structured output of the buttons command.
type ButtonsResult struct {
	Page      int   `json:"page"       yaml:"page"`
	PageCount int   `json:"page_count" yaml:"page_count"`
	Buttons   []int `json:"buttons"    yaml:"buttons"`
}

// NewButtonsCmd creates the buttons command, which prints the window of page
// numbers a pagination control should show.
func NewButtonsCmd() *cobra.Command {
	params := newPaginationParams()
	var output, statePath string

	cmd := &cobra.Command{
		Use:   "buttons",
		Short: "Print the page-number buttons around the current page",
		Long: `Prints at most --buttons-max consecutive page numbers, keeping the current
page inside the window and shifting it at the first and last pages. The current
page is shown in brackets.`,
		Example: `  # [1] 2 3 4 5
  pagekit buttons --limit 20 --total 120

  # 2 3 4 5 [6]
  pagekit buttons --page 6 --limit 20 --total 120`,
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

			result := ButtonsResult{Page: pg.Page(), PageCount: pg.PageCount(), Buttons: pg.Buttons()}
			if format != outputFormatTable {
				return renderStructured(cmd.OutOrStdout(), format, result)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatButtons(result.Buttons, result.Page))
			return err
		},
	}

	params.AddFlags(cmd)
	addOutputFlag(cmd, &output)
	addStateFlag(cmd, &statePath)

	return cmd
}
