package kernel

import "github.com/gosimula/desim/desimerr"

// Entity extends Process with wait/interrupt/trigger affordances: a
// process with two mutually-exclusive one-shot flags another entity
// can set remotely (interrupted, triggered), observed and cleared on
// the entity's next resumption from Wait or WaitFor.
type Entity struct {
	*Process
	interrupted bool
	triggered   bool
}

// NewEntity constructs an Entity whose body runs on first dispatch,
// same lifecycle as Process.
func NewEntity(sched *Scheduler, body func(*Entity)) *Entity {
	e := &Entity{}
	e.Process = NewProcess(sched, func(*Process) { body(e) })
	return e
}

// Wait suspends the calling entity (which must be Running) until an
// external Interrupt or Trigger targets it. Returns which of the two
// occurred; exactly one is true.
func (e *Entity) Wait() (interrupted, triggered bool) {
	e.requireRunning("wait")
	e.state = Waiting
	e.suspend()
	return e.consumeFlags()
}

// WaitFor is as Wait but also arms a timeout of dt virtual-time units;
// whichever of interrupt, trigger, or the timeout occurs first wins,
// and the other paths are cancelled. Returns which occurred; timedOut
// is true only when neither interrupted nor triggered fired.
func (e *Entity) WaitFor(dt float64) (interrupted, triggered, timedOut bool) {
	e.requireRunning("wait_for")
	if dt < 0 {
		desimerr.Raise(desimerr.InvalidParameter, "wait_for requires dt >= 0", e.id, e.sched.now, nil)
	}
	// State Scheduled (not Waiting) while the timeout is armed: this is
	// the same "scheduled for a future wake" shape as Hold, so an
	// Interrupt/Trigger arriving before the timeout cancels it via the
	// same Scheduled-branch path in wake() that cancels a pending hold.
	e.state = Scheduled
	e.sched.queue.insert(e.Process, e.sched.now+dt)
	e.suspend()
	interrupted, triggered = e.consumeFlags()
	timedOut = !interrupted && !triggered
	return
}

func (e *Entity) consumeFlags() (interrupted, triggered bool) {
	interrupted, triggered = e.interrupted, e.triggered
	e.interrupted = false
	e.triggered = false
	return
}

// Interrupted reports the current interrupted flag without clearing
// it. Useful when a process resumes from Hold (rather than Wait) and
// wants to check whether the resumption was due to an interrupt.
func (e *Entity) Interrupted() bool { return e.interrupted }

// Triggered reports the current triggered flag without clearing it.
func (e *Entity) Triggered() bool { return e.triggered }

// ConsumeFlags reads and clears both flags, the same observe-then-clear
// step Wait and WaitFor perform internally.
func (e *Entity) ConsumeFlags() (interrupted, triggered bool) {
	return e.consumeFlags()
}

// Interrupt sets target's interrupted flag and wakes it per wake().
func (e *Entity) Interrupt(target *Entity) {
	wake(target, true, false)
}

// Trigger sets target's triggered flag and wakes it per wake(). If
// target is not currently suspended awaiting a wake, the flag is
// latched for its next Wait/WaitFor.
func (e *Entity) Trigger(target *Entity) {
	wake(target, false, true)
}

// wake is the single mechanism behind Interrupt, Trigger, and
// TriggerQueue's delivery: it sets the requested flag(s) on target and
// then, depending on target's current state, either activates it
// immediately (Waiting), cancels its pending record and reactivates it
// immediately (Scheduled — covers both an ordinary Hold and a WaitFor
// timeout), or simply latches the flag for the target's next
// Wait/WaitFor (Idle/Running/Terminated). Applied symmetrically to both
// Interrupt and Trigger as the natural generalization (see DESIGN.md).
func wake(target *Entity, setInterrupted, setTriggered bool) {
	if setInterrupted {
		target.interrupted = true
	}
	if setTriggered {
		target.triggered = true
	}
	switch target.state {
	case Waiting:
		target.state = Scheduled
		target.sched.queue.insert(target.Process, target.sched.now)
	case Scheduled:
		target.sched.queue.remove(target.Process)
		target.sched.queue.insert(target.Process, target.sched.now)
	}
}
