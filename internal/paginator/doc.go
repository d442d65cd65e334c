// Package paginator derives pagination state from a record offset, a page size and a total
// record count.
//
// A Paginator holds three configured inputs (start, limit, total) and keeps the derived
// state (current page, page count, display range) consistent with them. It exposes:
//   - Configure / ConfigureValues: the only mutation entry points
//   - First, Previous, Next, Last, ForPage, ForLimitChange: clamped start offsets to navigate to
//   - Buttons: a bounded window of page numbers for rendering page controls
//
// Navigation queries never mutate state; callers apply a result with
// Configure(Options{Start: Int(offset)}).
//
// A Paginator is not safe for concurrent use. Callers that share one across goroutines
// must serialize access themselves.
package paginator
