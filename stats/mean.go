// Package stats provides online (single-pass) statistics aggregators:
// running mean/variance, a family of histograms, quantile estimation,
// and a time-weighted variance. Every aggregator ingests samples one at
// a time and never stores the full sample sequence.
package stats

// Mean is Welford's running mean accumulator.
type Mean struct {
	count int64
	mean  float64
}

// Add ingests one sample.
func (m *Mean) Add(x float64) {
	m.count++
	m.mean += (x - m.mean) / float64(m.count)
}

// Count returns the number of samples ingested so far.
func (m *Mean) Count() int64 { return m.count }

// Value returns the running mean. Zero when Count() == 0.
func (m *Mean) Value() float64 { return m.mean }
