package stats

import "sort"

// bucket is one (upper bound, count) pair in a PrecisionHistogram.
type bucket struct {
	upperBound float64
	count      int64
}

// PrecisionHistogram grows its buckets on demand to match the
// magnitude of incoming samples, rather than requiring bounds to be
// declared up front. Buckets are kept sorted by upper bound.
//
// Growth policy (frozen, see DESIGN.md): when a sample exceeds every
// existing bucket's upper bound, the histogram doubles the last
// bucket's bound repeatedly until the new bound would cover the
// sample, appending only the single resulting bucket — it does not
// re-grow every existing bucket, it only ever grows the frontier.
type PrecisionHistogram struct {
	buckets  []bucket
	overflow int64
	variance Variance
}

// NewPrecisionHistogram constructs an empty PrecisionHistogram seeded
// with a single bucket at the given initial upper bound (must be > 0).
func NewPrecisionHistogram(initialBound float64) (*PrecisionHistogram, error) {
	if initialBound <= 0 {
		return nil, invalidParameter("precision histogram initial bound must be positive")
	}
	return &PrecisionHistogram{buckets: []bucket{{upperBound: initialBound}}}, nil
}

// Add ingests one sample, growing the bucket frontier if necessary.
func (p *PrecisionHistogram) Add(x float64) {
	p.variance.Add(x)
	last := p.buckets[len(p.buckets)-1].upperBound
	if x > last {
		bound := last
		for x > bound {
			bound *= 2
		}
		p.buckets = append(p.buckets, bucket{upperBound: bound})
	}
	idx := sort.Search(len(p.buckets), func(i int) bool { return p.buckets[i].upperBound >= x })
	p.buckets[idx].count++
}

// BucketCount returns the number of buckets currently allocated.
func (p *PrecisionHistogram) BucketCount() int {
	return len(p.buckets)
}

// Bucket returns the (upperBound, count) pair at index i.
func (p *PrecisionHistogram) Bucket(i int) (upperBound float64, count int64) {
	b := p.buckets[i]
	return b.upperBound, b.count
}

// Total returns the total number of samples ingested.
func (p *PrecisionHistogram) Total() int64 {
	var total int64
	for _, b := range p.buckets {
		total += b.count
	}
	return total
}

// Mean returns the running mean across all ingested samples.
func (p *PrecisionHistogram) Mean() float64 { return p.variance.Mean() }

// Quantile estimates the q-th quantile (0 < q < 1) by scanning bucket
// counts to locate the bucket containing the int(q*N)-th sample
// (q*N truncated toward zero, and never less than the first), in
// insertion order across buckets from smallest to largest upper bound,
// and returning that bucket's upper bound (frozen interpolation
// choice, see DESIGN.md: no midpoint interpolation).
func (p *PrecisionHistogram) Quantile(q float64) (float64, error) {
	total := p.Total()
	if total == 0 {
		return 0, notYetDefined("quantile requires at least 1 sample", 0)
	}
	if q <= 0 || q >= 1 {
		return 0, invalidParameter("quantile q must be in (0, 1)")
	}
	target := int64(q * float64(total))
	if target == 0 {
		target = 1
	}
	var cumulative int64
	for _, b := range p.buckets {
		cumulative += b.count
		if cumulative >= target {
			return b.upperBound, nil
		}
	}
	return p.buckets[len(p.buckets)-1].upperBound, nil
}
