package kernel

import (
	"github.com/gosimula/desim/desimerr"
	"github.com/gosimula/desim/simset"
)

// Semaphore is a counting semaphore with a strict FIFO waiter queue.
// Invariant: resources >= 0, and an entity appears at most once in the
// waiter queue at a time.
type Semaphore struct {
	resources int
	waiters   simset.Head[*Entity]
	links     map[int64]*simset.Link[*Entity]
}

// NewSemaphore constructs a Semaphore with the given initial resource
// count. Returns InvalidParameter if resources < 0.
func NewSemaphore(resources int) (*Semaphore, error) {
	if resources < 0 {
		return nil, desimerr.New(desimerr.InvalidParameter, "semaphore requires resources >= 0", 0, 0, nil)
	}
	return &Semaphore{resources: resources, links: make(map[int64]*simset.Link[*Entity])}, nil
}

// Get acquires one resource on behalf of e (which must be Running). If
// resources are available, it decrements and returns immediately.
// Otherwise e is enqueued FIFO and suspended (Waiting) until Release
// reaches it. If an Interrupt or Trigger wakes e first, Get leaves the
// queue and returns without having acquired a resource.
func (s *Semaphore) Get(e *Entity) {
	e.requireRunning("semaphore get")
	if s.resources > 0 {
		s.resources--
		return
	}
	link := simset.NewLink(e)
	s.links[e.ID()] = link
	s.waiters.Into(link)
	e.state = Waiting
	e.suspend()
	// If Release already dequeued this entity, link is detached and Out
	// is a no-op. If the entity instead woke via an external Interrupt
	// or Trigger (wake()'s Waiting branch), the link is still registered
	// in s.waiters and must be unlinked here, or a later Release would
	// dequeue this phantom entry and hand it a resource it never
	// requested, corrupting FIFO order.
	link.Out()
	delete(s.links, e.ID())
}

// Release wakes the head of the FIFO waiter queue, if any (capacity is
// unchanged — the resource passes directly to the waiter), else
// increments the resource count. No spurious wakeups; fairness is
// strict FIFO.
func (s *Semaphore) Release() {
	if link := s.waiters.First(); link != nil {
		link.Out()
		entity := link.Value
		delete(s.links, entity.ID())
		entity.Activate()
		return
	}
	s.resources++
}

// Available returns the current resource count (not counting queued
// waiters).
func (s *Semaphore) Available() int { return s.resources }

// Waiting returns the number of entities currently queued.
func (s *Semaphore) Waiting() int { return s.waiters.Count() }
