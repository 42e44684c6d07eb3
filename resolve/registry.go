// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import (
	"log/slog"
)

// Registry is the collection of resolvers of one node. The first
// registration starts one repeating [Task] on the shared [Scheduler],
// which evaluates every resolver on each tick until [Registry.Cancel].
type Registry struct {

	// Name is the name of the owning node, used for logging.
	Name string

	sched     *Scheduler
	resolvers []*Resolver
	task      *Task
}

// NewRegistry returns a new [Registry] for the node with the given name,
// running on the given scheduler.
func NewRegistry(s *Scheduler, name string) *Registry {
	return &Registry{Name: name, sched: s}
}

// Register adds the given resolver, starting the repeating task if
// it is not already running. The resolver is also evaluated once
// immediately, so the effect is in place before the first tick.
// Registering on a cancelled registry restarts it.
func (r *Registry) Register(res *Resolver) {
	r.resolvers = append(r.resolvers, res)
	r.evaluate(res)
	if r.task == nil {
		r.task = r.sched.Add(r.Name, func(t *Task) {
			for _, res := range r.resolvers {
				if t.Done {
					return
				}
				r.evaluate(res)
			}
		})
	}
}

func (r *Registry) evaluate(res *Resolver) {
	if err := res.Evaluate(); err != nil {
		slog.Debug("skipping resolver", "node", r.Name, "err", err)
	}
}

// Len returns the number of registered resolvers.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.resolvers)
}

// Active returns whether the repeating task is running.
func (r *Registry) Active() bool {
	return r != nil && r.task != nil && !r.task.Done
}

// Cancel stops the repeating task and clears the resolvers.
// The task never runs again, even if it is cancelled from within
// a task of the current tick.
func (r *Registry) Cancel() {
	if r == nil {
		return
	}
	if r.task != nil {
		r.task.Done = true
		r.task = nil
	}
	r.resolvers = nil
}
