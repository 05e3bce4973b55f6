// Package conv provides direct time-domain linear convolution of float64
// sequences.
//
// [Direct] returns the full result of length len(a)+len(b)-1. [Causal] keeps
// only the first len(a) samples, the response a trailing filter produces
// while it walks through a:
//
//	full, err := conv.Direct(signal, kernel)
//	trailing, err := conv.Causal(signal, kernel)
//
// Both evaluate the convolution sum sample by sample, so an output never
// depends on inputs after it, and NaN or very large inputs only affect the
// outputs they actually reach. Kernels of four or more taps run the inner
// loop on algo-vecmath blocks.
package conv
