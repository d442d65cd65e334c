package paginator

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Defaults applied by New before the initial configuration.
const (
	DefaultLimit      = 10
	DefaultButtonsMax = 5
)

// Range holds the 1-based display bounds of the current page, as used for
// "showing Start-End of Total" text. Start is 0 when Total is 0.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
	Total int `json:"total" yaml:"total"`
}

// Paginator computes page state from start, limit and total.
// The zero value is not usable; construct with New.
type Paginator struct {
	// configured inputs
	start int
	limit int
	total int

	// derived on every Configure
	page      int
	pageCount int
	rng       Range

	buttonsMax int
	logger     zerolog.Logger
}

// Option customizes a Paginator at construction time.
type Option func(*Paginator)

// WithLogger sets the logger used to report rejected configuration values.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Paginator) {
		p.logger = logger
	}
}

// WithButtonsMax sets the maximum number of page buttons returned by Buttons.
// A non-positive value is reported once all options have run, and the default is kept.
func WithButtonsMax(n int) Option {
	return func(p *Paginator) {
		p.buttonsMax = n
	}
}

// New creates a Paginator with default limit and buttons max, then applies opts.
func New(opts Options, options ...Option) *Paginator {
	p := &Paginator{
		limit:      DefaultLimit,
		buttonsMax: DefaultButtonsMax,
		logger:     zerolog.Nop(),
	}
	for _, o := range options {
		o(p)
	}
	if p.buttonsMax <= 0 {
		p.logger.Warn().Int("buttons_max", p.buttonsMax).Msg("ignoring non-positive buttons max")
		p.buttonsMax = DefaultButtonsMax
	}
	p.Configure(opts)
	return p
}

// Configure applies every non-nil field of opts and recomputes derived state.
// Fields that fail validation (negative start or total, non-positive limit) keep
// their previous value and a warning is logged.
func (p *Paginator) Configure(opts Options) {
	p.apply(opts)
	p.recompute()
}

// apply stores the valid fields of opts and returns the keys it rejected.
func (p *Paginator) apply(opts Options) []string {
	var rejected []string
	if opts.Start != nil && !p.setStart(*opts.Start) {
		rejected = append(rejected, keyStart)
	}
	if opts.Limit != nil && !p.setLimit(*opts.Limit) {
		rejected = append(rejected, keyLimit)
	}
	if opts.Total != nil && !p.setTotal(*opts.Total) {
		rejected = append(rejected, keyTotal)
	}
	return rejected
}

func (p *Paginator) setStart(v int) bool {
	if v < 0 {
		p.reject(keyStart, v, "start must be non-negative")
		return false
	}
	p.start = v
	return true
}

func (p *Paginator) setLimit(v int) bool {
	if v <= 0 {
		p.reject(keyLimit, v, "limit must be positive")
		return false
	}
	p.limit = v
	return true
}

func (p *Paginator) setTotal(v int) bool {
	if v < 0 {
		p.reject(keyTotal, v, "total must be non-negative")
		return false
	}
	p.total = v
	return true
}

func (p *Paginator) reject(key string, value any, reason string) {
	p.logger.Warn().
		Str("field", key).
		Interface("value", value).
		Msg("rejected pagination value: " + reason)
}

// recompute derives pageCount, page and range from start, limit and total.
// Offsets up to math.MaxInt are handled without overflow.
func (p *Paginator) recompute() {
	p.pageCount = ceilDiv(p.total, p.limit)

	maxPage := max(p.pageCount, 1)
	if idx := p.start / p.limit; idx < maxPage {
		p.page = idx + 1
	} else {
		p.page = maxPage
	}

	p.rng = Range{Total: p.total}
	switch {
	case p.total == 0:
	case p.start >= p.total:
		p.rng.Start = p.total
		p.rng.End = p.total
	default:
		p.rng.Start = p.start + 1
		p.rng.End = p.start + min(p.limit, p.total-p.start)
	}
}

// ceilDiv returns ceil(a/b) for a >= 0 and b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// Start returns the zero-based offset of the first record on the current page.
func (p *Paginator) Start() int { return p.start }

// Limit returns the page size.
func (p *Paginator) Limit() int { return p.limit }

// Total returns the total record count.
func (p *Paginator) Total() int { return p.total }

// Page returns the 1-based current page.
func (p *Paginator) Page() int { return p.page }

// PageCount returns the number of pages, 0 when there are no records.
func (p *Paginator) PageCount() int { return p.pageCount }

// ButtonsMax returns the maximum number of page buttons.
func (p *Paginator) ButtonsMax() int { return p.buttonsMax }

// Range returns a copy of the display range.
func (p *Paginator) Range() Range { return p.rng }

// String implements fmt.Stringer.
func (p *Paginator) String() string {
	return fmt.Sprintf("page %d/%d (%d-%d of %d)",
		p.page, p.pageCount, p.rng.Start, p.rng.End, p.rng.Total)
}
