package stats

// SimpleHistogram buckets samples into fixed-width buckets starting at
// zero, with a caller-chosen width and bucket count; samples past the
// last bucket fall into overflow.
type SimpleHistogram struct {
	width    float64
	counts   []int64
	overflow int64
	variance Variance
}

// NewSimpleHistogram constructs a SimpleHistogram with the given
// bucket width and count. Returns InvalidParameter if width <= 0 or
// bucketCount <= 0.
func NewSimpleHistogram(width float64, bucketCount int) (*SimpleHistogram, error) {
	if width <= 0 {
		return nil, invalidParameter("simple histogram width must be positive")
	}
	if bucketCount <= 0 {
		return nil, invalidParameter("simple histogram bucket count must be positive")
	}
	return &SimpleHistogram{width: width, counts: make([]int64, bucketCount)}, nil
}

// Add ingests one sample. Negative samples are treated as belonging to
// bucket 0.
func (h *SimpleHistogram) Add(x float64) {
	h.variance.Add(x)
	if x < 0 {
		h.counts[0]++
		return
	}
	idx := int(x / h.width)
	if idx >= len(h.counts) {
		h.overflow++
		return
	}
	h.counts[idx]++
}

// BucketCount returns the count in bucket i.
func (h *SimpleHistogram) BucketCount(i int) int64 { return h.counts[i] }

// Overflow returns the count of samples past the last bucket.
func (h *SimpleHistogram) Overflow() int64 { return h.overflow }

// Total returns the total number of samples ingested.
func (h *SimpleHistogram) Total() int64 {
	total := h.overflow
	for _, c := range h.counts {
		total += c
	}
	return total
}

// Mean returns the running mean across all ingested samples.
func (h *SimpleHistogram) Mean() float64 { return h.variance.Mean() }
