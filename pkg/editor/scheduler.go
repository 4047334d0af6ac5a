package editor

// Scheduler is a cooperative task queue for layout-sensitive work. Defer
// schedules a task for the next Flush; one Flush corresponds to one
// rendering opportunity of the host. Tasks deferred while a flush is running
// land in the following flush.
//
// The scheduler runs on a single goroutine (the UI update loop) and carries
// no locking.
type Scheduler struct {
	pending []*Task
}

// Task is a cancellable unit of deferred work
type Task struct {
	fn        func()
	cancelled bool
	done      bool
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Defer schedules fn for the next flush and returns its cancellation handle
func (s *Scheduler) Defer(fn func()) *Task {
	t := &Task{fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Flush runs every live task scheduled before this call, in scheduling
// order, and returns how many ran. Tasks scheduled by running tasks wait for
// the next flush.
func (s *Scheduler) Flush() int {
	batch := s.pending
	s.pending = nil
	ran := 0
	for _, t := range batch {
		if t.cancelled {
			continue
		}
		t.fn()
		t.done = true
		ran++
	}
	return ran
}

// Pending reports how many live tasks are waiting for the next flush
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Cancel marks the task so the next flush skips it. Cancelling a task that
// already ran has no effect.
func (t *Task) Cancel() {
	t.cancelled = true
}

// Done reports whether the task has already run
func (t *Task) Done() bool {
	return t.done
}
