package main

import "time"

// ScheduledTask is a function that runs once, after a number of frames. It
// belongs to whoever scheduled it and must be cancelled when its owner goes
// away, otherwise it would run against state that no longer exists.
type ScheduledTask struct {
	NFramesLeft int64
	fn          func()
	cancelled   bool
	done        bool
}

// Cancel prevents the task from running. Cancelling a task that already ran
// or was already cancelled does nothing.
func (t *ScheduledTask) Cancel() {
	t.cancelled = true
}

// Pending reports whether the task will still run.
func (t *ScheduledTask) Pending() bool {
	return !t.cancelled && !t.done
}

// Scheduler runs deferred tasks on the update loop. Everything runs on the
// same goroutine as Update(), so a task never runs concurrently with input
// handling.
type Scheduler struct {
	tasks []*ScheduledTask
}

// DurationToFrames converts a delay to a number of update frames, rounding up
// so that a task never runs earlier than asked.
func DurationToFrames(d time.Duration) int64 {
	return int64((d*FramesPerSecond + time.Second - 1) / time.Second)
}

// After schedules fn to run on the first Step that follows nFrames other
// Steps. A delay of 0 runs it at the next Step.
func (s *Scheduler) After(nFrames int64, fn func()) *ScheduledTask {
	t := &ScheduledTask{NFramesLeft: nFrames, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Step counts down every task and runs the ones that are due.
func (s *Scheduler) Step() {
	// Collect the due tasks before running them so that a task can schedule
	// new tasks without disturbing the iteration.
	var due []*ScheduledTask
	n := 0
	for _, t := range s.tasks {
		if !t.Pending() {
			continue
		}
		if t.NFramesLeft <= 0 {
			due = append(due, t)
			continue
		}
		t.NFramesLeft--
		s.tasks[n] = t
		n++
	}
	s.tasks = s.tasks[:n]

	for _, t := range due {
		// A task that ran earlier in this loop may have cancelled this one.
		if !t.Pending() {
			continue
		}
		t.done = true
		t.fn()
	}
}

// CancelAll cancels every pending task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.tasks = nil
}

func (s *Scheduler) NPending() int64 {
	n := int64(0)
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}
