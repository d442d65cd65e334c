package paginator

import "math"

// IsFirst reports whether the current page is the first page.
func (p *Paginator) IsFirst() bool {
	return p.page == 1
}

// IsLast reports whether the current page is the last page.
// An empty record set has no pages, so its only page is also the last.
func (p *Paginator) IsLast() bool {
	return p.pageCount == 0 || p.page == p.pageCount
}

// First returns the start offset of the first page.
func (p *Paginator) First() int {
	return 0
}

// Previous returns the start offset of the previous page, or 0 on the first page.
func (p *Paginator) Previous() int {
	if p.IsFirst() {
		return 0
	}
	return p.start - p.limit
}

// Next returns the start offset of the next page.
// On the last page, or when the next offset would not fit in an int, the current
// start is returned unchanged.
func (p *Paginator) Next() int {
	if p.IsLast() || p.start > math.MaxInt-p.limit {
		return p.start
	}
	return p.start + p.limit
}

// Last returns the start offset of the last page.
func (p *Paginator) Last() int {
	return max(0, (p.pageCount-1)*p.limit)
}

// ForPage returns the start offset of the given 1-based page, clamped to the
// existing pages.
func (p *Paginator) ForPage(page int) int {
	if page < 1 {
		page = 1
	}
	if page > p.pageCount {
		page = p.pageCount
	}
	return max(0, (page-1)*p.limit)
}

// ForPageValue is ForPage for loosely-typed input such as a text field or query
// parameter. Values that cannot be read as an integer select page 1.
func (p *Paginator) ForPageValue(v any) int {
	page, err := coerceInt(v)
	if err != nil || page == 0 {
		page = 1
	}
	return p.ForPage(page)
}

// ForLimitChange returns the start offset to request after changing the limit:
// the start of the last page under the current limit. Never negative.
func (p *Paginator) ForLimitChange() int {
	return max(0, (p.pageCount-1)*p.limit)
}
