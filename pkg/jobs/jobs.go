// Package jobs holds the registry of periodic background jobs. Jobs
// register themselves in init and the server wires every registered job
// into the cron scheduler on startup.
package jobs

import (
	"context"
	"sync"
)

// Job is a registered background job.
type Job struct {
	ID     int
	Runner Runner
}

// Runner supplies a job's cron spec and work function. Both take a context
// so they can read configuration and reach the backend.
type Runner interface {
	Spec(context.Context) string
	Func(context.Context) func()
}

var (
	mtx      sync.Mutex
	registry = make(map[string]*Job)
)

// Register adds a job to the registry under the given name. Registering the
// same name twice replaces the earlier job.
func Register(name string, runner Runner) {
	mtx.Lock()
	defer mtx.Unlock()
	registry[name] = &Job{Runner: runner}
}

// List returns the registered jobs by name.
func List() map[string]*Job {
	mtx.Lock()
	defer mtx.Unlock()
	return registry
}
