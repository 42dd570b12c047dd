package stats

import "sort"

// Histogram buckets samples against a caller-supplied, strictly
// increasing sequence of upper bounds. A sample increments the first
// bucket whose upper bound is >= the sample; samples exceeding every
// bound fall into a trailing overflow bucket. The underlying mean and
// variance are tracked regardless of bucketing.
type Histogram struct {
	bounds   []float64
	counts   []int64
	overflow int64
	variance Variance
}

// NewHistogram constructs a Histogram from a strictly increasing
// sequence of bucket upper bounds. Returns an InvalidParameter error if
// bounds is empty or not strictly increasing.
func NewHistogram(bounds []float64) (*Histogram, error) {
	if len(bounds) == 0 {
		return nil, invalidParameter("histogram requires at least one bound")
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			return nil, invalidParameter("histogram bounds must be strictly increasing")
		}
	}
	b := make([]float64, len(bounds))
	copy(b, bounds)
	return &Histogram{bounds: b, counts: make([]int64, len(bounds))}, nil
}

// Add ingests one sample.
func (h *Histogram) Add(x float64) {
	h.variance.Add(x)
	idx := sort.Search(len(h.bounds), func(i int) bool { return h.bounds[i] >= x })
	if idx == len(h.bounds) {
		h.overflow++
		return
	}
	h.counts[idx]++
}

// BucketCount returns the count in bucket i (0-indexed, matching the
// bounds slice passed to NewHistogram).
func (h *Histogram) BucketCount(i int) int64 { return h.counts[i] }

// Overflow returns the count of samples exceeding every bound.
func (h *Histogram) Overflow() int64 { return h.overflow }

// Total returns the total number of samples ingested, equal to the sum
// of every bucket count plus overflow.
func (h *Histogram) Total() int64 {
	total := h.overflow
	for _, c := range h.counts {
		total += c
	}
	return total
}

// Mean returns the running mean across all ingested samples.
func (h *Histogram) Mean() float64 { return h.variance.Mean() }

// Variance returns the running sample variance, subject to the same
// two-sample minimum as the Variance type.
func (h *Histogram) Variance() (float64, error) { return h.variance.Value() }
