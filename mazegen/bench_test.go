package mazegen_test

import (
	"testing"

	"github.com/katalvlaran/mazelab/mazegen"
)

// BenchmarkGenerate measures a 101×101 maze with and without snapshots.
func BenchmarkGenerate(b *testing.B) {
	cfg := mazegen.Config{Width: 101, Height: 101, Seed: 1}
	b.Run("NoTrace", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = mazegen.Generate(cfg, mazegen.WithTrace(false))
		}
	})
	b.Run("Trace", func(b *testing.B) {
		cfg := mazegen.Config{Width: 31, Height: 31, Seed: 1}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = mazegen.Generate(cfg)
		}
	})
}
