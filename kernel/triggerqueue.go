package kernel

import (
	"github.com/gosimula/desim/desimerr"
	"github.com/gosimula/desim/simset"
)

// TriggerQueue is a FIFO ordered set of entities awaiting a trigger,
// independent of any single Semaphore or Wait call — a fan-out
// primitive for waking many entities at once.
type TriggerQueue struct {
	queue simset.Head[*Entity]
	links map[int64]*simset.Link[*Entity]
}

// NewTriggerQueue constructs an empty TriggerQueue.
func NewTriggerQueue() *TriggerQueue {
	return &TriggerQueue{links: make(map[int64]*simset.Link[*Entity])}
}

// Insert appends e to the queue.
func (q *TriggerQueue) Insert(e *Entity) {
	link := simset.NewLink(e)
	q.links[e.ID()] = link
	q.queue.Into(link)
}

// TriggerFirst removes and triggers the head entity. Returns a
// QueueEmpty error (non-fatal) if the queue is empty.
func (q *TriggerQueue) TriggerFirst() error {
	link := q.queue.First()
	if link == nil {
		return desimerr.New(desimerr.QueueEmpty, "trigger_first on empty queue", 0, 0, nil)
	}
	link.Out()
	e := link.Value
	delete(q.links, e.ID())
	wake(e, false, true)
	return nil
}

// TriggerAll triggers every entity currently in the queue, in
// insertion order, against a snapshot taken before any of them run
// (since triggering one may itself insert into the same queue from
// within the woken entity's body — unusual, but the snapshot keeps
// this call's semantics well-defined regardless).
func (q *TriggerQueue) TriggerAll() {
	snapshot := make([]*Entity, 0, q.queue.Count())
	for l := q.queue.First(); l != nil; l = l.Next() {
		snapshot = append(snapshot, l.Value)
	}
	for _, e := range snapshot {
		if link, ok := q.links[e.ID()]; ok {
			link.Out()
			delete(q.links, e.ID())
		}
	}
	for _, e := range snapshot {
		wake(e, false, true)
	}
}

// Len returns the number of entities currently queued.
func (q *TriggerQueue) Len() int { return q.queue.Count() }
