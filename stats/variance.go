package stats

import "math"

// Variance extends Welford's running mean with an M2 accumulator,
// exposing mean, variance and standard deviation. Variance and StdDev
// are only defined once at least two samples have been ingested.
type Variance struct {
	count int64
	mean  float64
	m2    float64
}

// Add ingests one sample.
func (v *Variance) Add(x float64) {
	v.count++
	delta := x - v.mean
	v.mean += delta / float64(v.count)
	delta2 := x - v.mean
	v.m2 += delta * delta2
}

// Count returns the number of samples ingested so far.
func (v *Variance) Count() int64 { return v.count }

// Mean returns the running mean. Zero when Count() == 0.
func (v *Variance) Mean() float64 { return v.mean }

// Value returns the sample variance (Bessel-corrected, dividing by
// count-1), or a NotYetDefined error if fewer than two samples have
// been ingested.
func (v *Variance) Value() (float64, error) {
	if v.count < 2 {
		return 0, notYetDefined("variance requires at least 2 samples", v.count)
	}
	return v.m2 / float64(v.count-1), nil
}

// StdDev returns the sample standard deviation, or the same error as
// Value when undefined.
func (v *Variance) StdDev() (float64, error) {
	variance, err := v.Value()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}
