// Package smooth provides trailing running-mean smoothers for time series.
//
// [RunningMean] averages each sample with the n-1 samples before it. Only
// past and current values contribute, so a trend computed at year t never
// looks at year t+1. The first n-1 outputs average over the samples seen so
// far instead of padding with zeros:
//
//	out, err := smooth.RunningMean([]float64{1, 2, 3, 4}, 2) // [1 1.5 2.5 3.5]
//
// [Running] computes the same values incrementally for series that arrive in
// blocks:
//
//	r, err := smooth.NewRunning(30)
//	for _, block := range blocks {
//		_ = r.ProcessBlock(out, block)
//	}
package smooth
