package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pagekit/internal/pageutil"
	"github.com/rshade/pagekit/internal/paginator"
	"github.com/rshade/pagekit/internal/tui"
)

// maxBrowseRecords bounds the synthetic record list held in memory.
const maxBrowseRecords = 1_000_000

// ErrTooManyRecords is returned when --total exceeds what browse will generate.
var ErrTooManyRecords = fmt.Errorf("browse supports at most %d records", maxBrowseRecords)

// NewBrowseCmd creates the browse command, an interactive pager over --total
// synthetic records. When stdout is not a terminal, or --plain is set, the
// selected page is printed instead.
func NewBrowseCmd() *cobra.Command {
	params := newPaginationParams()
	var plain, all bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through records interactively",
		Long: `Opens a terminal pager over --total records named "Record 1", "Record 2", ...
starting at the page selected by --start or --page.

Keys: left/h previous, right/l next, g/G first/last, +/- page size, : jump to page, q quit.`,
		Example: `  # Browse 500 records, 25 per page
  pagekit browse --total 500 --limit 25

  # Print page 3 without the interactive pager
  pagekit browse --total 500 --page 3 --plain

  # Print every record from page 3 onward
  pagekit browse --total 500 --page 3 --plain --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if params.Total > maxBrowseRecords {
				return fmt.Errorf("%w, got %d", ErrTooManyRecords, params.Total)
			}
			pg, err := buildPaginator(cmd, params, "")
			if err != nil {
				return err
			}
			records := syntheticRecords(params.Total)

			if plain || all || !isTerminal(os.Stdout) {
				return renderPlainPage(cmd.OutOrStdout(), records, pg, all)
			}
			return runPager(cmd, records, pg)
		},
	}

	params.AddFlags(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print the selected page instead of opening the pager")
	cmd.Flags().BoolVar(&all, "all", false, "print every record from the selected page onward (implies --plain)")

	return cmd
}

func syntheticRecords(n int) []string {
	records := make([]string, 0, max(n, 0))
	for _, i := range pageutil.Sequence(n, 1) {
		records = append(records, fmt.Sprintf("Record %d", i))
	}
	return records
}

func runPager(cmd *cobra.Command, records []string, pg *paginator.Paginator) error {
	p := tea.NewProgram(tui.NewPagerModel(records, pg), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run interactive pager: %w", err)
	}
	logger.Debug().Ctx(cmd.Context()).Stringer("state", pg).Msg("pager closed")
	return nil
}

// renderPlainPage writes the records of the current page, the range line and
// the button window as plain text. With all set, every record from the page's
// start offset to the end is written and the range runs to the total.
func renderPlainPage(w io.Writer, records []string, pg *paginator.Paginator, all bool) error {
	fmt.Fprintf(w, "Page %d of %d\n\n", pg.Page(), max(pg.PageCount(), 1))

	r := pg.Range()
	rows := pageutil.Page(records, pg.Start(), pg.Limit())
	if all {
		rows = pageutil.SliceFrom(records, pg.Start())
		r.End = r.Total
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "  (no records)")
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %s\n", row)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.FormatShowing(r.Start, r.End, r.Total))
	_, err := fmt.Fprintln(w, formatButtons(pg.Buttons(), pg.Page()))
	return err
}
