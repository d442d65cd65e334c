package pagination

import (
	"github.com/rshade/pagekit/internal/paginator"
)

// Offsets holds the start offsets the navigation controls lead to.
type Offsets struct {
	First       int `json:"first"        yaml:"first"`
	Previous    int `json:"previous"     yaml:"previous"`
	Next        int `json:"next"         yaml:"next"`
	Last        int `json:"last"         yaml:"last"`
	LimitChange int `json:"limit_change" yaml:"limit_change"`
}

// PaginationMeta contains metadata about the current page of a paginator.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int             `json:"current_page" yaml:"current_page"`
	PageCount   int             `json:"page_count"   yaml:"page_count"`
	PageSize    int             `json:"page_size"    yaml:"page_size"`
	Start       int             `json:"start"        yaml:"start"`
	TotalItems  int             `json:"total_items"  yaml:"total_items"`
	Range       paginator.Range `json:"range"        yaml:"range"`
	IsFirst     bool            `json:"is_first"     yaml:"is_first"`
	IsLast      bool            `json:"is_last"      yaml:"is_last"`
	HasPrevious bool            `json:"has_previous" yaml:"has_previous"`
	HasNext     bool            `json:"has_next"     yaml:"has_next"`
	Offsets     Offsets         `json:"offsets"      yaml:"offsets"`
	Buttons     []int           `json:"buttons"      yaml:"buttons"`
}

// NewPaginationMeta snapshots pg.
func NewPaginationMeta(pg *paginator.Paginator) PaginationMeta {
	return PaginationMeta{
		CurrentPage: pg.Page(),
		PageCount:   pg.PageCount(),
		PageSize:    pg.Limit(),
		Start:       pg.Start(),
		TotalItems:  pg.Total(),
		Range:       pg.Range(),
		IsFirst:     pg.IsFirst(),
		IsLast:      pg.IsLast(),
		HasPrevious: !pg.IsFirst(),
		HasNext:     !pg.IsLast(),
		Offsets: Offsets{
			First:       pg.First(),
			Previous:    pg.Previous(),
			Next:        pg.Next(),
			Last:        pg.Last(),
			LimitChange: pg.ForLimitChange(),
		},
		Buttons: pg.Buttons(),
	}
}
