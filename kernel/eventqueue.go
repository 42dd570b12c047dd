package kernel

import "container/heap"

// eventRecord is a single (wakeTime, process, sequence) entry in the
// event queue. seq is assigned at insertion time from a monotonically
// increasing counter so that equal wakeTime values resolve strictly
// FIFO.
type eventRecord struct {
	wakeTime float64
	seq      uint64
	process  *Process
	index    int // heap.Interface bookkeeping, maintained by eventQueue
}

// eventQueue is a container/heap-backed min-ordered collection keyed
// by (wakeTime ASC, seq ASC), generalizing a plain timer heap with an
// index of the one record any given process may hold, so that
// cancelling a specific process's pending record is O(log n) via
// heap.Remove rather than a linear scan.
type eventQueue struct {
	records   []*eventRecord
	byProcess map[int64]*eventRecord
	nextSeq   uint64
}

func newEventQueue() *eventQueue {
	return &eventQueue{byProcess: make(map[int64]*eventRecord)}
}

// Len, Less, Swap, Push, Pop implement heap.Interface. Callers never
// invoke these directly; use the insert/popMin/remove methods below.
func (q *eventQueue) Len() int { return len(q.records) }

func (q *eventQueue) Less(i, j int) bool {
	a, b := q.records[i], q.records[j]
	if a.wakeTime != b.wakeTime {
		return a.wakeTime < b.wakeTime
	}
	return a.seq < b.seq
}

func (q *eventQueue) Swap(i, j int) {
	q.records[i], q.records[j] = q.records[j], q.records[i]
	q.records[i].index = i
	q.records[j].index = j
}

func (q *eventQueue) Push(x any) {
	r := x.(*eventRecord)
	r.index = len(q.records)
	q.records = append(q.records, r)
}

func (q *eventQueue) Pop() any {
	old := q.records
	n := len(old)
	r := old[n-1]
	old[n-1] = nil
	r.index = -1
	q.records = old[:n-1]
	return r
}

// insert places a new record for p at wakeTime, removing any prior
// record for p first (at most one record per process may be present).
func (q *eventQueue) insert(p *Process, wakeTime float64) *eventRecord {
	q.remove(p)
	r := &eventRecord{wakeTime: wakeTime, seq: q.nextSeq, process: p}
	q.nextSeq++
	heap.Push(q, r)
	q.byProcess[p.id] = r
	return r
}

// remove cancels p's pending record, if any, reporting whether one
// existed.
func (q *eventQueue) remove(p *Process) bool {
	r, ok := q.byProcess[p.id]
	if !ok {
		return false
	}
	heap.Remove(q, r.index)
	delete(q.byProcess, p.id)
	return true
}

// peekMin returns the earliest record without removing it, and
// whether the queue is non-empty.
func (q *eventQueue) peekMin() (*eventRecord, bool) {
	if len(q.records) == 0 {
		return nil, false
	}
	return q.records[0], true
}

// popMin removes and returns the earliest record.
func (q *eventQueue) popMin() *eventRecord {
	r := heap.Pop(q).(*eventRecord)
	delete(q.byProcess, r.process.id)
	return r
}

func (q *eventQueue) has(p *Process) bool {
	_, ok := q.byProcess[p.id]
	return ok
}
