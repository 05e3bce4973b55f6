package smooth

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-climgrid/internal/testutil"
)

func BenchmarkRunningMean(b *testing.B) {
	data := testutil.SeasonalSeries(12, 3, 0.01, 12000)

	for _, n := range []int{12, 120, 360} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = RunningMean(data, n)
			}
		})
	}
}

func BenchmarkRunningProcess(b *testing.B) {
	data := testutil.SeasonalSeries(12, 3, 0.01, 12000)
	out := make([]float64, len(data))

	r, err := NewRunning(120)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = r.ProcessBlock(out, data)
	}
}
