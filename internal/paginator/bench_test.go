package paginator

import "testing"

func BenchmarkConfigure(b *testing.B) {
	b.ReportAllocs()
	p := New(Options{Limit: Int(25), Total: Int(1_000_000)})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Configure(Options{Start: Int((i * 25) % 1_000_000)})
	}
}

func BenchmarkButtons(b *testing.B) {
	b.ReportAllocs()
	p := New(Options{Start: Int(500_000), Limit: Int(25), Total: Int(1_000_000)}, WithButtonsMax(9))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Buttons()
	}
}

func BenchmarkConfigureValues(b *testing.B) {
	b.ReportAllocs()
	p := New(Options{})
	values := map[string]any{"start": "400", "limit": 20.0, "total": 12000}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.ConfigureValues(values); err != nil {
			b.Fatal(err)
		}
	}
}
