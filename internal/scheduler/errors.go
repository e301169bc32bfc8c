// Package scheduler provides the cancellable periodic task that drives all
// polling in the console.
package scheduler

import "errors"

var (
	ErrSchedulerAlreadyRunning = errors.New("scheduler is already running")
	ErrSchedulerNotRunning     = errors.New("scheduler is not running")
)
