// Package pagination connects CLI flags and output formats to the paginator package.
//
// This package contains the pagination plumbing shared by the pagekit commands:
//   - PaginationParams: CLI flag parsing, validation and conversion to paginator options
//   - PaginationMeta: serializable snapshot of a paginator for table, JSON and YAML output
//
// Commands build a *paginator.Paginator from PaginationParams and render PaginationMeta,
// so every command reports pages, ranges and button windows the same way.
package pagination
