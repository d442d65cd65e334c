package pagination

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagekit/internal/paginator"
)

// Validation limits.
const (
	MinLimit      = 1
	MaxLimit      = 10000
	MinButtonsMax = 1
	MaxButtonsMax = 100
	MinPage       = 1
)

// Common validation errors.
var (
	ErrInvalidLimit         = fmt.Errorf("limit must be between %d and %d", MinLimit, MaxLimit)
	ErrInvalidButtonsMax    = fmt.Errorf("buttons-max must be between %d and %d", MinButtonsMax, MaxButtonsMax)
	ErrInvalidStart         = errors.New("start must be non-negative")
	ErrInvalidTotal         = errors.New("total must be non-negative")
	ErrInvalidPage          = errors.New("page must be >= 1")
	ErrMixedPaginationModes = errors.New("cannot use both offset-based (--start) and page-based (--page) pagination")
)

// Flag names shared by the pagination commands.
const (
	FlagStart      = "start"
	FlagPage       = "page"
	FlagLimit      = "limit"
	FlagTotal      = "total"
	FlagButtonsMax = "buttons-max"
)

// PaginationParams holds CLI pagination flags and provides validation.
// Supports two ways of choosing the current page:
//   - Offset-based: --start
//   - Page-based: --page
//
// These modes are mutually exclusive.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Start is the zero-based offset of the first record (offset-based mode).
	Start int

	// Page is the 1-based page number (page-based mode, 0 = disabled).
	Page int

	// Limit is the number of records per page.
	Limit int

	// Total is the total number of records.
	Total int

	// ButtonsMax is the maximum number of page buttons.
	ButtonsMax int
}

// NewPaginationParams creates a PaginationParams with the given defaults for
// limit and buttons max (normally taken from configuration).
func NewPaginationParams(defaultLimit, defaultButtonsMax int) *PaginationParams {
	return &PaginationParams{
		Start:      0,
		Page:       0, // 0 means page-based mode not active
		Limit:      defaultLimit,
		Total:      0,
		ButtonsMax: defaultButtonsMax,
	}
}

// AddFlags registers the pagination flags on cmd, bound to p.
func (p *PaginationParams) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.Start, FlagStart, p.Start, "Zero-based offset of the first record on the page")
	cmd.Flags().IntVar(&p.Page, FlagPage, p.Page, "Page number to show (1-indexed, 0 = use --start)")
	cmd.Flags().IntVar(&p.Limit, FlagLimit, p.Limit, "Records per page")
	cmd.Flags().IntVar(&p.Total, FlagTotal, p.Total, "Total number of records")
	cmd.Flags().IntVar(&p.ButtonsMax, FlagButtonsMax, p.ButtonsMax, "Maximum number of page buttons")
}

// Validate checks if the pagination parameters are valid and consistent (value receiver).
func (p PaginationParams) Validate() error {
	if p.Start < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidStart, p.Start)
	}
	if p.Total < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidTotal, p.Total)
	}
	if p.Page < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidPage, p.Page)
	}
	if p.Limit < MinLimit || p.Limit > MaxLimit {
		return fmt.Errorf("%w, got %d", ErrInvalidLimit, p.Limit)
	}
	if p.ButtonsMax < MinButtonsMax || p.ButtonsMax > MaxButtonsMax {
		return fmt.Errorf("%w, got %d", ErrInvalidButtonsMax, p.ButtonsMax)
	}

	// Check mutual exclusion of page and start
	if p.Page > 0 && p.Start > 0 {
		return ErrMixedPaginationModes
	}

	return nil
}

// IsPageBased returns true if page-based pagination is active.
func (p PaginationParams) IsPageBased() bool {
	return p.Page >= MinPage
}

// IsOffsetBased returns true if offset-based pagination is active.
func (p PaginationParams) IsOffsetBased() bool {
	return !p.IsPageBased()
}

// ToOptions returns the paginator options for the offset-based fields. In
// page-based mode Start is omitted; use NewPaginator or Apply to resolve the page.
func (p PaginationParams) ToOptions() paginator.Options {
	opts := paginator.Options{
		Limit: paginator.Int(p.Limit),
		Total: paginator.Int(p.Total),
	}
	if p.IsOffsetBased() {
		opts.Start = paginator.Int(p.Start)
	}
	return opts
}

// Apply configures pg from the parameters. In page-based mode the page is
// resolved with ForPage after limit and total are set, so out-of-range pages clamp.
func (p PaginationParams) Apply(pg *paginator.Paginator) {
	pg.Configure(p.ToOptions())
	if p.IsPageBased() {
		pg.Configure(paginator.Options{Start: paginator.Int(pg.ForPage(p.Page))})
	}
}

// NewPaginator validates the parameters and builds a paginator from them.
func (p PaginationParams) NewPaginator(options ...paginator.Option) (*paginator.Paginator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	options = append(options[:len(options):len(options)], paginator.WithButtonsMax(p.ButtonsMax))
	pg := paginator.New(paginator.Options{}, options...)
	p.Apply(pg)
	return pg, nil
}
