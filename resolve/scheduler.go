// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve provides resolvers: live bindings from a data source
// to a visual effect, which are polled on every tick of a shared
// cooperative [Scheduler] for as long as their node is attached.
package resolve

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Task is a repeating task run on every tick of a [Scheduler].
type Task struct {

	// Func is the task function, which is run on every tick of the [Scheduler].
	// It receives the [Task] object so that it can reference things such as
	// [Task.Delta] and set things such as [Task.Done].
	Func func(t *Task)

	// Name is the name of the task owner, used for logging.
	Name string

	// Delta is the amount of time that has passed since the
	// last run of the task, or 0 on the first run.
	Delta time.Duration

	// Done can be set to true to permanently stop the task; it will never
	// run again, and it is removed from the [Scheduler] at the end of the
	// current or next tick.
	Done bool

	last time.Time
}

// Scheduler runs a set of repeating tasks once per tick. Ticks are
// cooperative: a tick never overlaps another tick, and a nested call
// to [Scheduler.Tick] from inside a task is a no-op.
type Scheduler struct {

	// Ticks is the number of ticks that have been run.
	Ticks int

	mu      sync.Mutex
	tasks   []*Task
	ticking bool
}

// NewScheduler returns a new empty [Scheduler].
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add adds a new [Task] with the given name and function. A task added
// during a tick first runs on the next tick.
func (s *Scheduler) Add(name string, f func(t *Task)) *Task {
	t := &Task{Name: name, Func: f}
	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	return t
}

// Len returns the number of tasks that are not done.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.Done {
			n++
		}
	}
	return n
}

// Tick runs every task that is not done once, in the order they were added.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	if s.ticking {
		s.mu.Unlock()
		return
	}
	s.ticking = true
	tasks := slices.Clone(s.tasks)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.tasks = slices.DeleteFunc(s.tasks, func(t *Task) bool { return t.Done })
		s.ticking = false
		s.Ticks++
		s.mu.Unlock()
	}()

	now := time.Now()
	for _, t := range tasks {
		if t.Done { // may be cancelled by an earlier task in this tick
			continue
		}
		if !t.last.IsZero() {
			t.Delta = now.Sub(t.last)
		}
		t.last = now
		t.Func(t)
	}
}

// Run runs [Scheduler.Tick] at the given interval until the context
// is done, for hosts that do not have their own frame loop.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C:
			s.Tick()
		}
	}
}
