package sheet

// EventClass groups host events whose deferred work coalesces: a newer event
// of a class replaces the older pending one.
type EventClass int

const (
	EventPointer EventClass = iota
	EventScroll
	EventResize
	eventClassCount
)

func (c EventClass) String() string {
	switch c {
	case EventPointer:
		return "pointer"
	case EventScroll:
		return "scroll"
	case EventResize:
		return "resize"
	}
	return "unknown"
}

// scheduledTask is a pending callback. A cancelled task is never run.
type scheduledTask struct {
	fn        func()
	cancelled bool
}

// Scheduler holds at most one pending task per event class until the next
// frame tick. It is single-threaded: Schedule and RunPending must be called
// from the host's event thread.
type Scheduler struct {
	pending [eventClassCount]*scheduledTask
	dropped uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule replaces any pending task of class with fn and returns a func that
// cancels it. Replaced tasks are discarded without running.
func (s *Scheduler) Schedule(class EventClass, fn func()) (cancel func()) {
	if class < 0 || class >= eventClassCount || fn == nil {
		return func() {}
	}
	if old := s.pending[class]; old != nil {
		old.cancelled = true
		s.dropped++
	}
	t := &scheduledTask{fn: fn}
	s.pending[class] = t
	return func() {
		t.cancelled = true
		if s.pending[class] == t {
			s.pending[class] = nil
		}
	}
}

// Pending reports whether a task of class is waiting.
func (s *Scheduler) Pending(class EventClass) bool {
	if class < 0 || class >= eventClassCount {
		return false
	}
	return s.pending[class] != nil
}

// Dropped returns how many tasks were superseded before they ran.
func (s *Scheduler) Dropped() uint64 { return s.dropped }

// RunPending runs the pending task of each class once, in class order, and
// returns how many ran. The queue is detached before running so tasks
// scheduled from inside a task wait for the next tick.
func (s *Scheduler) RunPending() int {
	tasks := s.pending
	s.pending = [eventClassCount]*scheduledTask{}
	ran := 0
	for _, t := range tasks {
		if t == nil || t.cancelled {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}
