package tline

import (
	"math"
	"math/cmplx"
)

const (
	eulerGamma = 0.5772156649015329

	// Beyond these magnitudes the power series lose too many digits to
	// cancellation and the large-argument expansions take over.
	iSeriesLimit = 25.0
	kSeriesLimit = 8.0

	maxSeriesTerms = 300
	maxAsymTerms   = 80
)

// besselIK returns the modified Bessel functions I0, I1, K0, K1 of a
// complex argument with Re(z) > 0. The functions are not exponentially
// scaled: I overflows and K underflows once Re(z) approaches ~700, which
// callers detect as non-finite results.
func besselIK(z complex128) (i0, i1, k0, k1 complex128) {
	var s0, s1 complex128
	i0, i1, s0, s1 = iSeries(z)

	if cmplx.Abs(z) > iSeriesLimit {
		pre := cmplx.Exp(z) / cmplx.Sqrt(complex(2*math.Pi, 0)*z)
		i0 = pre * asymSum(z, 0, true)
		i1 = pre * asymSum(z, 1, true)
	}

	if cmplx.Abs(z) > kSeriesLimit {
		pre := cmplx.Sqrt(complex(math.Pi/2, 0)/z) * cmplx.Exp(-z)
		k0 = pre * asymSum(z, 0, false)
		k1 = pre * asymSum(z, 1, false)
		return i0, i1, k0, k1
	}

	l := cmplx.Log(z/2) + eulerGamma
	k0 = -l*i0 + s0
	k1 = 1/z + l*i1 - (z/4)*s1
	return i0, i1, k0, k1
}

// iSeries sums the ascending series of I0 and I1 together with the
// harmonic-number weighted sums that K0 and K1 need:
//
//	s0 = sum H_k (z^2/4)^k / (k!)^2
//	s1 = sum (H_k + H_{k+1}) (z^2/4)^k / (k!(k+1)!)
func iSeries(z complex128) (i0, i1, s0, s1 complex128) {
	q := z * z / 4
	t0, t1 := complex(1, 0), complex(1, 0)
	h := 0.0

	for k := 0; k < maxSeriesTerms; k++ {
		if k > 0 {
			fk := float64(k)
			t0 *= q / complex(fk*fk, 0)
			t1 *= q / complex(fk*(fk+1), 0)
			h += 1 / fk
		}
		i0 += t0
		i1 += t1
		s0 += complex(h, 0) * t0
		s1 += complex(2*h+1/float64(k+1), 0) * t1

		if k > 2 && cmplx.Abs(t0) <= 1e-17*cmplx.Abs(i0) && cmplx.Abs(t1) <= 1e-17*cmplx.Abs(i1) {
			break
		}
	}
	return i0, (z / 2) * i1, s0, s1
}

// asymSum evaluates the Hankel-type expansion sum a_k(nu)/z^k, with
// alternating signs for I and plain signs for K. The sum stops at its
// smallest term since the series is asymptotic.
func asymSum(z complex128, nu float64, alternate bool) complex128 {
	mu := 4 * nu * nu
	sum, term := complex(1, 0), complex(1, 0)
	prev := math.Inf(1)

	for k := 1; k < maxAsymTerms; k++ {
		odd := float64(2*k - 1)
		term *= complex((mu-odd*odd)/(8*float64(k)), 0) / z
		mag := cmplx.Abs(term)
		if mag >= prev {
			break
		}
		prev = mag
		if alternate && k%2 == 1 {
			sum -= term
		} else {
			sum += term
		}
		if mag < 1e-17*cmplx.Abs(sum) {
			break
		}
	}
	return sum
}
