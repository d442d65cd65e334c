package pageutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceFrom(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	tests := []struct {
		name  string
		start int
		want  []string
	}{
		{name: "from zero", start: 0, want: []string{"a", "b", "c", "d"}},
		{name: "from middle", start: 2, want: []string{"c", "d"}},
		{name: "at end", start: 4, want: []string{}},
		{name: "past end", start: 10, want: []string{}},
		{name: "negative", start: -3, want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SliceFrom(items, tt.start))
		})
	}

	t.Run("nil input", func(t *testing.T) {
		assert.Empty(t, SliceFrom[int](nil, 3))
	})
}

func TestPage(t *testing.T) {
	items := Sequence(10, 0)

	tests := []struct {
		name  string
		start int
		limit int
		want  []int
	}{
		{name: "first page", start: 0, limit: 3, want: []int{0, 1, 2}},
		{name: "second page", start: 3, limit: 3, want: []int{3, 4, 5}},
		{name: "partial last page", start: 9, limit: 3, want: []int{9}},
		{name: "out of bounds", start: 20, limit: 3, want: []int{}},
		{name: "zero limit", start: 2, limit: 0, want: []int{}},
		{name: "negative start", start: -1, limit: 2, want: []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Page(items, tt.start, tt.limit))
		})
	}
}

func TestSequence(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Sequence(5, 1))
	assert.Equal(t, []int{0, 1, 2}, Sequence(3, 0))
	assert.Equal(t, []int{}, Sequence(0, 1))
	assert.Equal(t, []int{}, Sequence(-2, 1))
}
