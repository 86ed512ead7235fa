//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	fuzzy "github.com/dzonerzy/go-args/internal/fuzzy"
	intern "github.com/dzonerzy/go-args/internal/intern"
	pool "github.com/dzonerzy/go-args/internal/pool"
)

// Category: fuzzy

func BenchmarkSuggestMarker(b *testing.B) {
	markers := []string{"*", "#", "##", "[*]", "&", "$"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fuzzy.SuggestMarker("[#]", markers, 2)
	}
}

func BenchmarkSuggestName(b *testing.B) {
	names := []string{"RED", "GREEN", "BLUE"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fuzzy.SuggestName("Gren", names, 2)
	}
}

// Category: intern

func BenchmarkInternFlag(b *testing.B) {
	ids := []rune{'a', 'p', 'Z', 'é', 'ß'}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = intern.Flag(ids[i%len(ids)])
	}
}

func BenchmarkInternVsConcat(b *testing.B) {
	b.Run("Intern", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = intern.Flag('é')
		}
	})
	b.Run("Concat", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = "-" + string(rune('é'+i%2))
		}
	})
}

// Category: pool

func BenchmarkPool_GetPut(b *testing.B) {
	p := pool.NewPoolWithReset(
		func() *map[rune]struct{} {
			m := make(map[rune]struct{}, 8)
			return &m
		},
		func(m *map[rune]struct{}) { clear(*m) },
	)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			obj := p.Get()
			(*obj)['x'] = struct{}{}
			p.Put(obj)
		}
	})
}
