package launcher

import (
	"sort"
	"time"
)

// Scheduler runs fn once after d has passed. There is no cancellation;
// callers guard stale callbacks themselves.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type scheduledTask struct {
	due time.Duration
	seq uint64
	fn  func()
}

// TickScheduler is a Scheduler driven by the host's update loop instead of a
// wall clock, so callbacks always run on the game goroutine.
type TickScheduler struct {
	now   time.Duration
	seq   uint64
	tasks []scheduledTask
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

func (s *TickScheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.tasks = append(s.tasks, scheduledTask{due: s.now + d, seq: s.seq, fn: fn})
}

// Advance moves the clock forward by dt and runs every task that came due, in
// due order. Tasks scheduled by a running task wait for the next Advance.
func (s *TickScheduler) Advance(dt time.Duration) {
	s.now += dt

	var due, pending []scheduledTask
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	if len(due) == 0 {
		return
	}
	s.tasks = pending

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending is the number of tasks not yet run.
func (s *TickScheduler) Pending() int { return len(s.tasks) }

// Now is the scheduler clock.
func (s *TickScheduler) Now() time.Duration { return s.now }
