package regression

// NeweyWest estimates the long-run variance of u using a Bartlett kernel
// over the first lags autocovariances. When demean is true the sequence is
// centered before the autocovariances are formed.
func NeweyWest(u []float64, lags int, demean bool) float64 {
	n := len(u)
	if n == 0 {
		return 0
	}
	z := u
	if demean {
		mean := 0.0
		for _, v := range u {
			mean += v
		}
		mean /= float64(n)
		z = make([]float64, n)
		for i, v := range u {
			z[i] = v - mean
		}
	}

	nf := float64(n)
	cov := 0.0
	for _, v := range z {
		cov += v * v
	}
	cov /= nf

	for i := 1; i <= lags && i < n; i++ {
		w := 1.0 - float64(i)/float64(lags+1)
		gamma := 0.0
		for t := i; t < n; t++ {
			gamma += z[t] * z[t-i]
		}
		gamma /= nf
		cov += 2 * w * gamma
	}
	return cov
}
