// Package schedule runs cancellable timed callbacks.
package schedule

import (
	"sync"
	"time"
)

// Task is a pending callback that can be cancelled.
// Stop never waits for a callback that is already running.
type Task interface {
	Stop()
}

// Scheduler creates repeating and one-shot tasks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
	After(delay time.Duration, fn func()) Task
}

// Clock schedules callbacks against wall time.
type Clock struct{}

// NewClock returns a wall-clock scheduler.
func NewClock() Clock {
	return Clock{}
}

// Every runs fn on its own goroutine every interval until the task is stopped.
func (Clock) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = time.Second
	}
	task := &repeatingTask{stopCh: make(chan struct{})}
	go task.run(interval, fn)
	return task
}

// After runs fn once after delay unless the task is stopped first.
func (Clock) After(delay time.Duration, fn func()) Task {
	return &oneShotTask{timer: time.AfterFunc(delay, fn)}
}

type repeatingTask struct {
	once   sync.Once
	stopCh chan struct{}
}

func (task *repeatingTask) run(interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-task.stopCh:
			return
		case <-ticker.C:
			select {
			case <-task.stopCh:
				return
			default:
			}
			fn()
		}
	}
}

func (task *repeatingTask) Stop() {
	task.once.Do(func() {
		close(task.stopCh)
	})
}

type oneShotTask struct {
	timer *time.Timer
}

func (task *oneShotTask) Stop() {
	task.timer.Stop()
}
