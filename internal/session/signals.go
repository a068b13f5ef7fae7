package session

import (
	"sync"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Ticker runs fn every interval until the returned cancel func is called.
type Ticker interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TimeTicker is a Ticker backed by time.Ticker on its own goroutine.
type TimeTicker struct{}

// Every implements Ticker.
func (TimeTicker) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// Visibility reports when the host moves to the foreground or background.
type Visibility interface {
	Subscribe(fn func(visible bool)) (cancel func())
}

// AlwaysVisible is a Visibility that never reports changes.
type AlwaysVisible struct{}

// Subscribe implements Visibility.
func (AlwaysVisible) Subscribe(func(bool)) func() {
	return func() {}
}
