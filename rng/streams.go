package rng

import (
	"math"

	"github.com/gosimula/desim/desimerr"
)

// Variate is a stateful random-variate generator: each call draws the
// next value from its underlying Stream. Variates are finite-state —
// restarting mid-sequence requires rewinding the underlying Stream's
// seeds, not calling the Variate again.
type Variate func() float64

// NewUniform returns a Variate producing values in [lo, hi).
func NewUniform(s *Stream, lo, hi float64) (Variate, error) {
	if hi <= lo {
		return nil, invalidParameter("uniform requires hi > lo")
	}
	return func() float64 {
		return lo + (hi-lo)*s.Next()
	}, nil
}

// NewExponential returns a Variate producing exponentially distributed
// values with the given mean.
func NewExponential(s *Stream, mean float64) (Variate, error) {
	if mean <= 0 {
		return nil, invalidParameter("exponential requires mean > 0")
	}
	return func() float64 {
		u := s.Next()
		for u == 1 {
			u = s.Next()
		}
		return -mean * math.Log(1-u)
	}, nil
}

// NewNormal returns a Variate producing normally distributed values
// with the given mean and standard deviation, using the polar
// Box-Muller transform. Box-Muller produces two independent samples
// per pair of uniforms; the second is cached and returned on the
// following call.
func NewNormal(s *Stream, mean, stddev float64) (Variate, error) {
	if stddev <= 0 {
		return nil, invalidParameter("normal requires stddev > 0")
	}
	var cached float64
	haveCached := false
	return func() float64 {
		if haveCached {
			haveCached = false
			return mean + stddev*cached
		}
		var v1, v2, w float64
		for {
			v1 = 2*s.Next() - 1
			v2 = 2*s.Next() - 1
			w = v1*v1 + v2*v2
			if w > 0 && w < 1 {
				break
			}
		}
		factor := math.Sqrt(-2 * math.Log(w) / w)
		cached = v2 * factor
		haveCached = true
		return mean + stddev*v1*factor
	}, nil
}

// NewErlang returns a Variate producing Erlang-distributed values
// (sum of k uniforms' log, i.e. sum of k exponentials) with the given
// mean and standard deviation, where k = ceil((mean/stddev)^2).
// Requires 0 < stddev <= mean.
func NewErlang(s *Stream, mean, stddev float64) (Variate, error) {
	if stddev <= 0 || stddev > mean {
		return nil, invalidParameter("erlang requires 0 < stddev <= mean")
	}
	ratio := mean / stddev
	k := int(math.Ceil(ratio * ratio))
	if k < 1 {
		k = 1
	}
	perStageMean := mean / float64(k)
	return func() float64 {
		var sum float64
		for i := 0; i < k; i++ {
			u := s.Next()
			for u == 1 {
				u = s.Next()
			}
			sum += -perStageMean * math.Log(1-u)
		}
		return sum
	}, nil
}

// NewHyperExponential returns a Variate producing hyperexponentially
// distributed values (a two-branch mixture of exponentials) with the
// given mean and standard deviation. Requires stddev > mean (CV > 1);
// this is the coefficient-of-variation regime Erlang cannot cover.
func NewHyperExponential(s *Stream, mean, stddev float64) (Variate, error) {
	if stddev <= mean {
		return nil, invalidParameter("hyperexponential requires stddev > mean")
	}
	cv2 := (stddev * stddev) / (mean * mean)
	p := 0.5 * (1 - math.Sqrt((cv2-1)/(cv2+1)))
	mean1 := mean / (2 * p)
	mean2 := mean / (2 * (1 - p))
	return func() float64 {
		u := s.Next()
		var branchMean float64
		if u < p {
			branchMean = mean1
		} else {
			branchMean = mean2
		}
		v := s.Next()
		for v == 1 {
			v = s.Next()
		}
		return -branchMean * math.Log(1-v)
	}, nil
}

// NewTriangular returns a Variate producing triangularly distributed
// values on [a, b] with mode c, via the piecewise inverse CDF.
// Requires a <= c <= b and a < b.
func NewTriangular(s *Stream, a, b, c float64) (Variate, error) {
	if !(a <= c && c <= b && a < b) {
		return nil, invalidParameter("triangular requires a <= c <= b and a < b")
	}
	fc := (c - a) / (b - a)
	return func() float64 {
		u := s.Next()
		if u < fc {
			return a + math.Sqrt(u*(b-a)*(c-a))
		}
		return b - math.Sqrt((1-u)*(b-a)*(b-c))
	}, nil
}

// NewDraw returns a Variate-like predicate that draws true with
// probability p. Requires 0 <= p <= 1.
func NewDraw(s *Stream, p float64) (func() bool, error) {
	if p < 0 || p > 1 {
		return nil, invalidParameter("draw requires 0 <= p <= 1")
	}
	return func() bool {
		return s.Next() < p
	}, nil
}

func invalidParameter(message string) error {
	return desimerr.New(desimerr.InvalidParameter, message, 0, 0, nil)
}

// Must panics if err is non-nil, otherwise returns v. It is the
// module's own call sites' way of treating stream-construction failure
// as a fatal programmer error rather than a recoverable result,
// mirroring the fatal-constructor-error idiom used elsewhere in this
// codebase for malformed parameters known at compile time.
func Must[T any](v T, err error) T {
	if err != nil {
		if de, ok := err.(*desimerr.Error); ok {
			desimerr.Raise(de.Kind, de.Message, de.ProcessID, de.Time, de.Cause)
		}
		panic(err)
	}
	return v
}
