package kernel

import "github.com/gosimula/desim/desimerr"

// State is one of the five states a Process may occupy.
type State int

const (
	Idle State = iota
	Scheduled
	Running
	Waiting
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Scheduled:
		return "Scheduled"
	case Running:
		return "Running"
	case Waiting:
		return "Waiting"
	case Terminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// terminateSignal is the private sentinel panicked with to unwind a
// process's body goroutine from TerminateProcess. It is never
// recovered anywhere but the top of that same goroutine.
type terminateSignal struct{}

// Process is a cooperative routine dispatched by a Scheduler. Its body
// runs on its own goroutine, handed control by the Scheduler one
// process at a time via an unbuffered channel pair — the Go
// realization of the suspension-point contract: the body only ever
// yields back to the scheduler from Hold, Passivate, TerminateProcess,
// or (on Entity) Wait/WaitFor and a blocking Semaphore.Get.
type Process struct {
	id      int64
	sched   *Scheduler
	state   State
	body    func(*Process)
	started bool

	resume    chan struct{}
	suspended chan struct{}

	// panicValue holds a fatal (non-terminateSignal) panic recovered
	// from the body goroutine, re-raised by dispatch in the caller of
	// Scheduler.Run so a fatal programmer error surfaces as a panic at
	// the Run call site rather than crashing an unrelated goroutine.
	panicValue any
}

// NewProcess constructs a Process whose body will run on first
// dispatch. The process starts Idle; call Activate (or ActivateAt /
// ActivateDelay) to schedule it.
func NewProcess(sched *Scheduler, body func(*Process)) *Process {
	p := &Process{
		sched:     sched,
		state:     Idle,
		body:      body,
		resume:    make(chan struct{}),
		suspended: make(chan struct{}),
	}
	p.id = sched.register(p)
	return p
}

// ID returns the process's stable identity, assigned at construction.
func (p *Process) ID() int64 { return p.id }

// State returns the process's current state.
func (p *Process) State() State { return p.state }

// CurrentTime returns the scheduler's virtual clock. Always defined.
func (p *Process) CurrentTime() float64 { return p.sched.Now() }

func (p *Process) requireRunning(op string) {
	if p.sched.running != p || p.state != Running {
		desimerr.Raise(desimerr.InvalidState, op+" called outside the process's own running body", p.id, p.sched.now, nil)
	}
}

// Hold suspends the calling process (which must be Running) and
// schedules its resumption at now+dt. Requires dt >= 0.
func (p *Process) Hold(dt float64) {
	p.requireRunning("hold")
	if dt < 0 {
		desimerr.Raise(desimerr.InvalidParameter, "hold requires dt >= 0", p.id, p.sched.now, nil)
	}
	p.state = Scheduled
	p.sched.queue.insert(p, p.sched.now+dt)
	p.suspend()
}

// Passivate suspends the calling process (which must be Running) with
// no scheduled resumption; it resumes only via external activation,
// trigger, or interrupt.
func (p *Process) Passivate() {
	p.requireRunning("passivate")
	p.state = Waiting
	p.suspend()
}

// TerminateProcess removes any pending event record, marks the
// process Terminated, and unwinds its body goroutine. It never
// returns to the caller.
func (p *Process) TerminateProcess() {
	p.requireRunning("terminate_process")
	p.sched.queue.remove(p)
	panic(terminateSignal{})
}

// Activate schedules the process to run at the current time, if it is
// currently Idle or Waiting. No effect if already Scheduled or
// Running. Raises InvalidState if the process is Terminated.
func (p *Process) Activate() {
	if p.state == Terminated {
		desimerr.Raise(desimerr.InvalidState, "activate on a terminated process", p.id, p.sched.now, nil)
	}
	switch p.state {
	case Idle, Waiting:
		p.state = Scheduled
		p.sched.queue.insert(p, p.sched.now)
	}
}

// ActivateAt schedules the process to run at virtual time t, which
// must be >= the scheduler's current time. If the process already has
// a pending record, it is removed first.
func (p *Process) ActivateAt(t float64) {
	if t < p.sched.now {
		desimerr.Raise(desimerr.BackwardClock, "activate_at requires t >= now", p.id, p.sched.now, nil)
	}
	if p.state == Terminated {
		desimerr.Raise(desimerr.InvalidState, "activate_at on a terminated process", p.id, p.sched.now, nil)
	}
	if p.state == Scheduled {
		p.sched.queue.remove(p)
	}
	p.state = Scheduled
	p.sched.queue.insert(p, t)
}

// ActivateDelay is equivalent to ActivateAt(now + dt).
func (p *Process) ActivateDelay(dt float64) {
	p.ActivateAt(p.sched.now + dt)
}

// suspend hands control back to the scheduler and blocks until the
// scheduler next dispatches this process.
func (p *Process) suspend() {
	p.suspended <- struct{}{}
	<-p.resume
}

// dispatch is called only by the scheduler's run loop. It starts the
// body goroutine on first dispatch or resumes it thereafter, then
// blocks until the process next suspends or terminates.
func (p *Process) dispatch() {
	p.state = Running
	p.sched.running = p
	if !p.started {
		p.started = true
		go p.runBody()
	} else {
		p.resume <- struct{}{}
	}
	<-p.suspended
	p.sched.running = nil
	if p.panicValue != nil {
		pv := p.panicValue
		p.panicValue = nil
		panic(pv)
	}
}

func (p *Process) runBody() {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(terminateSignal); !ok {
				p.panicValue = r
			}
		}
		p.state = Terminated
		p.suspended <- struct{}{}
	}()
	p.body(p)
}
