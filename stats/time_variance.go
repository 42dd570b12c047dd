package stats

// TimeVariance is a time-weighted variance: each observed value is
// weighted by the virtual-time duration it was held before the next
// update, following West's incremental algorithm for weighted
// variance. The caller supplies the current time at every update
// (typically the scheduler's Now()); the first call only seeds the
// initial value and time.
type TimeVariance struct {
	started    bool
	lastTime   float64
	lastValue  float64
	totalTime  float64
	mean       float64
	weightedM2 float64
}

// Update records that the aggregator's value was lastValue from the
// previous call's time up to now, then takes on the new value.
func (t *TimeVariance) Update(now, value float64) {
	if !t.started {
		t.started = true
		t.lastTime = now
		t.lastValue = value
		return
	}
	dt := now - t.lastTime
	if dt > 0 {
		t.totalTime += dt
		if t.totalTime == dt {
			t.mean = t.lastValue
		} else {
			delta := t.lastValue - t.mean
			t.mean += delta * (dt / t.totalTime)
			t.weightedM2 += delta * (t.lastValue - t.mean) * dt
		}
	}
	t.lastTime = now
	t.lastValue = value
}

// Mean returns the time-weighted mean observed so far.
func (t *TimeVariance) Mean() float64 { return t.mean }

// Value returns the time-weighted variance, or a NotYetDefined error
// if no positive-duration interval has been observed yet.
func (t *TimeVariance) Value() (float64, error) {
	if t.totalTime <= 0 {
		return 0, notYetDefined("time variance requires a positive elapsed duration", 0)
	}
	return t.weightedM2 / t.totalTime, nil
}

// TotalTime returns the cumulative duration over which values have
// been weighted.
func (t *TimeVariance) TotalTime() float64 { return t.totalTime }
