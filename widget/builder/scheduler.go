package builder

import "time"

// Scheduler is the timer port behind the autosave debounce. Injecting it
// lets tests advance virtual time instead of racing real timers.
type Scheduler interface {
	// Schedule runs fn once after d. The returned cancel stops the timer
	// if it has not fired yet.
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler is the production Scheduler on real timers.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
