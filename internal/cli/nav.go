package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagekit/internal/cli/pagination"
	"github.com/rshade/pagekit/internal/paginator"
)

// Navigation actions accepted by the nav command.
const (
	navFirst       = "first"
	navPrevious    = "previous"
	navPrev        = "prev"
	navNext        = "next"
	navLast        = "last"
	navPage        = "page"
	navLimitChange = "limit-change"
)

// Navigation argument errors.
var (
	ErrUnknownNavAction = errors.New("unknown navigation action")
	ErrMissingPageArg   = errors.New("nav page requires a page number")
	ErrUnexpectedArg    = errors.New("unexpected argument")
)

// NavResult is the structured output of the nav command.
type NavResult struct {
	Action     string                    `json:"action"     yaml:"action"`
	Start      int                       `json:"start"      yaml:"start"`
	Pagination pagination.PaginationMeta `json:"pagination" yaml:"pagination"`
}

// NewNavCmd creates the nav command, which resolves a navigation action to the
// start offset it requests and shows the page it lands on.
func NewNavCmd() *cobra.Command {
	params := newPaginationParams()
	var output, statePath string

	cmd := &cobra.Command{
		Use:   "nav <first|previous|next|last|page N|limit-change>",
		Short: "Resolve a navigation action to a start offset",
		Long: `Resolves a navigation action against the current page and prints the start
offset it requests, followed by the page metadata after moving there.

  first         offset of the first page
  previous      offset of the previous page (0 on the first page)
  next          offset of the next page (unchanged on the last page)
  last          offset of the last page
  page N        offset of page N, clamped to the existing pages
  limit-change  offset to request after changing the page size`,
		Example: `  # Next page after records 41-60 of 120
  pagekit nav next --start 40 --limit 20 --total 120

  # Jump to page 4
  pagekit nav page 4 --limit 20 --total 120`,
		Args: cobra.RangeArgs(1, 2), //nolint:mnd // Action plus optional page number.
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutputFormat(cmd, output)
			if err != nil {
				return err
			}
			pg, err := buildPaginator(cmd, params, statePath)
			if err != nil {
				return err
			}

			action, start, err := resolveNav(pg, args)
			if err != nil {
				return err
			}

			pg.Configure(paginator.Options{Start: paginator.Int(start)})
			logger.Debug().Ctx(cmd.Context()).
				Str("action", action).
				Int("start", start).
				Msg("navigation resolved")

			result := NavResult{Action: action, Start: start, Pagination: pagination.NewPaginationMeta(pg)}
			return renderNav(cmd, format, result)
		},
	}

	params.AddFlags(cmd)
	addOutputFlag(cmd, &output)
	addStateFlag(cmd, &statePath)

	return cmd
}

// resolveNav returns the canonical action name and the start offset it requests.
func resolveNav(pg *paginator.Paginator, args []string) (string, int, error) {
	action := args[0]
	if action != navPage && len(args) > 1 {
		return "", 0, fmt.Errorf("%w %q for %s", ErrUnexpectedArg, args[1], action)
	}

	switch action {
	case navFirst:
		return navFirst, pg.First(), nil
	case navPrevious, navPrev:
		return navPrevious, pg.Previous(), nil
	case navNext:
		return navNext, pg.Next(), nil
	case navLast:
		return navLast, pg.Last(), nil
	case navLimitChange:
		return navLimitChange, pg.ForLimitChange(), nil
	case navPage:
		if len(args) < 2 { //nolint:mnd // Action plus page number.
			return "", 0, ErrMissingPageArg
		}
		return navPage, pg.ForPageValue(args[1]), nil
	default:
		return "", 0, fmt.Errorf("%w: %s", ErrUnknownNavAction, action)
	}
}

func renderNav(cmd *cobra.Command, format string, result NavResult) error {
	if format != outputFormatTable {
		return renderStructured(cmd.OutOrStdout(), format, result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> start %d\n\n", result.Action, result.Start)
	return renderMeta(cmd.OutOrStdout(), format, result.Pagination)
}
