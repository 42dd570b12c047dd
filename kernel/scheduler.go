package kernel

import "sync/atomic"

// Option configures a Scheduler at construction.
type Option func(*Scheduler)

// WithLogger attaches a Logger for scheduler/process lifecycle
// tracing. Defaults to a no-op logger.
func WithLogger(l Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithClockStart sets the scheduler's initial virtual time. Defaults
// to 0.
func WithClockStart(t float64) Option {
	return func(s *Scheduler) { s.now = t }
}

// Scheduler owns the virtual clock, the event queue, and the
// currently-running process reference for one simulation run. It is a
// singleton per run: construct once via NewScheduler, tear down via
// Terminate, and never nest runs on the same instance.
type Scheduler struct {
	now        float64
	queue      *eventQueue
	running    *Process
	logger     Logger
	nextPID    int64
	processes  map[int64]*Process
}

// NewScheduler constructs a Scheduler ready to have processes
// registered and activated against it.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		queue:     newEventQueue(),
		logger:    nopLogger{},
		processes: make(map[int64]*Process),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Debugf("scheduler created at time=%g", s.now)
	return s
}

// Now returns the scheduler's current virtual time.
func (s *Scheduler) Now() float64 { return s.now }

// Running returns the process currently dispatched, or nil if none.
func (s *Scheduler) Running() *Process { return s.running }

func (s *Scheduler) register(p *Process) int64 {
	id := atomic.AddInt64(&s.nextPID, 1)
	s.processes[id] = p
	return id
}

// Run repeatedly pops the earliest pending record, advances the clock
// to its wake time (never backward), and dispatches the corresponding
// process, until the queue is empty or (if until is given) the next
// record's time would exceed it. Implemented as a peek-then-pop to
// avoid an unnecessary round trip through the heap when the horizon is
// reached.
func (s *Scheduler) Run(until ...float64) {
	var limit float64
	hasLimit := len(until) > 0
	if hasLimit {
		limit = until[0]
	}
	for {
		rec, ok := s.queue.peekMin()
		if !ok {
			s.logger.Debugf("run halting: queue empty at time=%g", s.now)
			return
		}
		if hasLimit && rec.wakeTime > limit {
			s.logger.Debugf("run halting: next event at time=%g exceeds until=%g", rec.wakeTime, limit)
			return
		}
		rec = s.queue.popMin()
		s.now = rec.wakeTime
		p := rec.process
		s.logger.WithField("process", p.id).Debugf("dispatching at time=%g", s.now)
		p.dispatch()
	}
}

// Terminate resets the scheduler so a fresh run can begin cleanly: the
// event queue is cleared and the process registry forgotten. Processes
// already constructed against this scheduler must not be reused
// afterward.
func (s *Scheduler) Terminate() {
	s.logger.Debugf("scheduler terminating at time=%g", s.now)
	s.queue = newEventQueue()
	s.processes = make(map[int64]*Process)
	s.running = nil
	s.now = 0
}
