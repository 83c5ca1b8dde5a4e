package seqgen_test

import (
	"testing"

	"github.com/katalvlaran/combi/seqgen"
)

// BenchmarkGenerateByIndex_1k measures collection of 1000 generated values.
func BenchmarkGenerateByIndex_1k(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if got := seqgen.GenerateByIndex(func(i int) int { return i * i }, 1000); len(got) != 1000 {
			b.Fatalf("got %d values; want 1000", len(got))
		}
	}
}

// BenchmarkRepeat_100x32 measures 100 concatenated copies of a 32-element slice.
func BenchmarkRepeat_100x32(b *testing.B) {
	xs := make([]int, 32)
	for i := range xs {
		xs[i] = i
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if got := seqgen.Repeat(100, xs); len(got) != 3200 {
			b.Fatalf("got %d values; want 3200", len(got))
		}
	}
}

// BenchmarkInfixes_1kWindow16 measures sliding a 16-wide window over 1000 values.
func BenchmarkInfixes_1kWindow16(b *testing.B) {
	xs := make([]int, 1000)
	for i := range xs {
		xs[i] = i
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		got, err := seqgen.Infixes(16, xs)
		if err != nil {
			b.Fatalf("Infixes failed: %v", err)
		}
		if len(got) != 985 {
			b.Fatalf("got %d windows; want 985", len(got))
		}
	}
}
