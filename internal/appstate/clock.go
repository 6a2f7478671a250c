package appstate

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop reports whether the callback was prevented from running.
	Stop() bool
}

// Clock supplies time and deferred callbacks to the store.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns the wall clock.
func SystemClock() Clock { return realClock{} }
