package schedule

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by Advance instead of wall time.
// Callbacks run synchronously on the goroutine calling Advance.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	owner    *Manual
	seq      uint64
	due      time.Duration
	interval time.Duration
	fn       func()
	stopped  bool
}

// NewManual returns a scheduler whose clock starts at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every schedules fn every interval.
func (manual *Manual) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = time.Second
	}
	return manual.add(interval, interval, fn)
}

// After schedules fn once after delay.
func (manual *Manual) After(delay time.Duration, fn func()) Task {
	return manual.add(delay, 0, fn)
}

// Now returns the elapsed manual time.
func (manual *Manual) Now() time.Duration {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// Pending returns the number of tasks that have not been stopped or completed.
func (manual *Manual) Pending() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	count := 0
	for _, task := range manual.tasks {
		if !task.stopped {
			count++
		}
	}
	return count
}

// Advance moves the clock forward by delta, running every callback that falls due
// in order of due time and then creation order.
func (manual *Manual) Advance(delta time.Duration) {
	manual.mu.Lock()
	target := manual.now + delta
	manual.mu.Unlock()

	for {
		manual.mu.Lock()
		task := manual.nextDueLocked(target)
		if task == nil {
			manual.now = target
			manual.compactLocked()
			manual.mu.Unlock()
			return
		}
		manual.now = task.due
		if task.interval > 0 {
			task.due += task.interval
		} else {
			task.stopped = true
		}
		fn := task.fn
		manual.mu.Unlock()

		fn()
	}
}

func (manual *Manual) add(delay, interval time.Duration, fn func()) Task {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.seq++
	task := &manualTask{
		owner:    manual,
		seq:      manual.seq,
		due:      manual.now + delay,
		interval: interval,
		fn:       fn,
	}
	manual.tasks = append(manual.tasks, task)
	return task
}

func (manual *Manual) nextDueLocked(target time.Duration) *manualTask {
	var next *manualTask
	for _, task := range manual.tasks {
		if task.stopped || task.due > target {
			continue
		}
		if next == nil || task.due < next.due || (task.due == next.due && task.seq < next.seq) {
			next = task
		}
	}
	return next
}

func (manual *Manual) compactLocked() {
	live := manual.tasks[:0]
	for _, task := range manual.tasks {
		if !task.stopped {
			live = append(live, task)
		}
	}
	manual.tasks = live
}

func (task *manualTask) Stop() {
	task.owner.mu.Lock()
	task.stopped = true
	task.owner.mu.Unlock()
}
