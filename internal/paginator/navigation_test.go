package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigation_FromPageThree(t *testing.T) {
	tests := []struct {
		name      string
		target    func(p *Paginator) int
		wantPage  int
		wantStart int
	}{
		{name: "previous", target: (*Paginator).Previous, wantPage: 2, wantStart: 20},
		{name: "next", target: (*Paginator).Next, wantPage: 4, wantStart: 60},
		{name: "first", target: (*Paginator).First, wantPage: 1, wantStart: 0},
		{name: "last", target: (*Paginator).Last, wantPage: 6, wantStart: 100},
		{
			name:      "page 2",
			target:    func(p *Paginator) int { return p.ForPage(2) },
			wantPage:  2,
			wantStart: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newReference(t)

			p.Configure(Options{Start: Int(tt.target(p))})

			assert.Equal(t, tt.wantPage, p.Page())
			assert.Equal(t, tt.wantStart, p.Start())
		})
	}
}

func TestNavigation_Bounds(t *testing.T) {
	t.Run("forPage above max clamps to last page", func(t *testing.T) {
		p := newReference(t)
		p.Configure(Options{Start: Int(p.ForPage(20))})
		assert.Equal(t, 6, p.Page())
		assert.Equal(t, 100, p.Start())
	})

	t.Run("forPage below min clamps to first page", func(t *testing.T) {
		p := newReference(t)
		p.Configure(Options{Start: Int(p.ForPage(-50))})
		assert.Equal(t, 1, p.Page())
		assert.Equal(t, 0, p.Start())
	})

	t.Run("previous on first page stays at zero", func(t *testing.T) {
		p := newReference(t)
		p.Configure(Options{Start: Int(p.First())})
		p.Configure(Options{Start: Int(p.Previous())})
		assert.Equal(t, 1, p.Page())
		assert.Equal(t, 0, p.Start())
	})

	t.Run("next on last page keeps start", func(t *testing.T) {
		p := newReference(t)
		p.Configure(Options{Start: Int(p.Last())})
		assert.Equal(t, 100, p.Next())
		p.Configure(Options{Start: Int(p.Next())})
		assert.Equal(t, 6, p.Page())
		assert.Equal(t, 100, p.Start())
	})
}

func TestIsFirstIsLast(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		wantFirst bool
		wantLast  bool
	}{
		{name: "first page", start: 0, wantFirst: true, wantLast: false},
		{name: "middle page", start: 40, wantFirst: false, wantLast: false},
		{name: "last page", start: 100, wantFirst: false, wantLast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(Options{Start: Int(tt.start), Limit: Int(20), Total: Int(120)})
			assert.Equal(t, tt.wantFirst, p.IsFirst())
			assert.Equal(t, tt.wantLast, p.IsLast())
		})
	}

	t.Run("single page is both", func(t *testing.T) {
		p := New(Options{Total: Int(7)})
		assert.True(t, p.IsFirst())
		assert.True(t, p.IsLast())
	})
}

func TestForPageValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "int", input: 4, want: 60},
		{name: "numeric string", input: "2", want: 20},
		{name: "padded string", input: " 5 ", want: 80},
		{name: "float truncates", input: 3.9, want: 40},
		{name: "non-numeric defaults to page 1", input: "abc", want: 0},
		{name: "empty defaults to page 1", input: "", want: 0},
		{name: "nil defaults to page 1", input: nil, want: 0},
		{name: "zero defaults to page 1", input: "0", want: 0},
		{name: "above max clamps", input: "99", want: 100},
		{name: "negative clamps", input: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newReference(t)
			assert.Equal(t, tt.want, p.ForPageValue(tt.input))
		})
	}
}

func TestForLimitChange(t *testing.T) {
	p := newReference(t)
	assert.Equal(t, 100, p.ForLimitChange())

	p.Configure(Options{Limit: Int(50), Start: Int(p.ForLimitChange())})
	assert.Equal(t, 3, p.PageCount())
	assert.Equal(t, 3, p.Page())
	assert.Equal(t, 100, p.Start())

	empty := New(Options{})
	assert.Equal(t, 0, empty.ForLimitChange())
}
