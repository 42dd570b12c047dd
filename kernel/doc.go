// Package kernel implements the discrete-event simulation kernel:
// a virtual-clock Scheduler, the Process/Entity cooperative-routine
// model, and the Semaphore/TriggerQueue synchronization primitives
// built on top of it. Exactly one Process is ever Running at a time;
// everything else is suspended waiting on a future event or an
// external wake.
package kernel
