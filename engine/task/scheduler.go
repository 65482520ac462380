package task

import "time"

// Func is a per-frame task body; it returns true once finished
// dt is the time elapsed since the previous scheduler run
type Func func(now time.Time, dt time.Duration) bool

// Handle refers to one scheduled task
type Handle struct {
	canceled bool
	done     bool
}

// Cancel prevents any further run of the task
func (h *Handle) Cancel() {
	if h != nil {
		h.canceled = true
	}
}

// Active reports whether the task will still run
func (h *Handle) Active() bool {
	return h != nil && !h.canceled && !h.done
}

type entry struct {
	group  *Group
	handle *Handle

	// due is the earliest run time of a deferred entry; zero for per-frame entries
	due     time.Time
	deferFn func()
	frameFn Func
}

func (e *entry) dead() bool {
	return e.handle.canceled || e.handle.done || e.group.Canceled()
}

// Scheduler multiplexes deferred callbacks and per-frame tasks onto the frame loop
//
// Model:
//   - Single goroutine; Run is called once per frame by the owner of the game state
//   - Tasks run in registration order
//   - Tasks registered during Run first run on the next Run
//   - A cancelled task or a task of a cancelled group never runs again
type Scheduler struct {
	now     time.Time
	lastRun time.Time
	tasks   []*entry
	pending []*entry
	running bool
}

// NewScheduler creates a scheduler whose clock starts at start
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start, lastRun: start}
}

// Advance moves the scheduler clock; called at the start of every frame
func (s *Scheduler) Advance(now time.Time) {
	if now.After(s.now) {
		s.now = now
	}
}

// Now returns the scheduler clock
func (s *Scheduler) Now() time.Time {
	return s.now
}

// After runs fn once, at the first Run at or after now+delay
func (s *Scheduler) After(g *Group, delay time.Duration, fn func()) *Handle {
	h := &Handle{}
	s.add(&entry{group: g, handle: h, due: s.now.Add(delay), deferFn: fn})
	return h
}

// Every runs fn on each Run until it returns true
func (s *Scheduler) Every(g *Group, fn Func) *Handle {
	h := &Handle{}
	s.add(&entry{group: g, handle: h, frameFn: fn})
	return h
}

func (s *Scheduler) add(e *entry) {
	if s.running {
		s.pending = append(s.pending, e)
		return
	}
	s.tasks = append(s.tasks, e)
}

// Run executes due deferred callbacks and all per-frame tasks once
func (s *Scheduler) Run() {
	dt := s.now.Sub(s.lastRun)
	s.lastRun = s.now

	s.running = true
	kept := s.tasks[:0]
	for _, e := range s.tasks {
		if e.dead() {
			continue
		}
		if e.deferFn != nil {
			if s.now.Before(e.due) {
				kept = append(kept, e)
				continue
			}
			e.handle.done = true
			e.deferFn()
			continue
		}
		if e.frameFn(s.now, dt) {
			e.handle.done = true
			continue
		}
		kept = append(kept, e)
	}
	// Clear dangling pointers in the reused tail
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = append(kept, s.pending...)
	s.pending = s.pending[:0]
	s.running = false
}

// Len returns the number of tasks that may still run
func (s *Scheduler) Len() int {
	n := 0
	for _, e := range s.tasks {
		if !e.dead() {
			n++
		}
	}
	for _, e := range s.pending {
		if !e.dead() {
			n++
		}
	}
	return n
}
