package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-climgrid/internal/testutil"
)

// Box kernels of typical running-mean lengths (years to decades of monthly data).
func BenchmarkCausalBox(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{1200, 12},
		{1200, 60},
		{1200, 120},
		{12000, 120},
		{12000, 360},
	}

	for _, size := range sizes {
		signal := testutil.DeterministicNoise(1, 1.0, size.signal)
		kernel := testutil.Ones(size.kernel)
		dst := make([]float64, size.signal)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = CausalTo(dst, signal, kernel)
			}
		})
	}
}
