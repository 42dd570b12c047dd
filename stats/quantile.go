package stats

// Quantile is an online quantile estimator for a fixed q in (0, 1),
// delegating its storage to a PrecisionHistogram.
type Quantile struct {
	q    float64
	hist *PrecisionHistogram
}

// NewQuantile constructs a Quantile estimator for the given q (must be
// in (0, 1)) and initial histogram bound.
func NewQuantile(q, initialBound float64) (*Quantile, error) {
	if q <= 0 || q >= 1 {
		return nil, invalidParameter("quantile q must be in (0, 1)")
	}
	hist, err := NewPrecisionHistogram(initialBound)
	if err != nil {
		return nil, err
	}
	return &Quantile{q: q, hist: hist}, nil
}

// Add ingests one sample.
func (q *Quantile) Add(x float64) { q.hist.Add(x) }

// Value returns the current estimate of the q-th quantile, or a
// NotYetDefined error if no samples have been ingested.
func (q *Quantile) Value() (float64, error) { return q.hist.Quantile(q.q) }

// Count returns the number of samples ingested so far.
func (q *Quantile) Count() int64 { return q.hist.Total() }
