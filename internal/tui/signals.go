package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// callbackMsg carries a session callback onto the Bubble Tea event loop.
type callbackMsg func()

// loopTicker delivers ticks through a channel drained by the event loop, so
// session callbacks never run concurrently with key handling.
type loopTicker struct {
	ch chan func()
}

func newLoopTicker() *loopTicker {
	return &loopTicker{ch: make(chan func())}
}

// Every implements session.Ticker.
func (t *loopTicker) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				select {
				case t.ch <- fn:
				case <-done:
					return
				}
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

func (t *loopTicker) wait() tea.Cmd {
	return func() tea.Msg {
		return callbackMsg(<-t.ch)
	}
}

// focusSignal turns terminal focus reports into visibility notifications.
type focusSignal struct {
	next int
	subs map[int]func(bool)
}

func newFocusSignal() *focusSignal {
	return &focusSignal{subs: map[int]func(bool){}}
}

// Subscribe implements session.Visibility.
func (f *focusSignal) Subscribe(fn func(bool)) func() {
	id := f.next
	f.next++
	f.subs[id] = fn
	return func() { delete(f.subs, id) }
}

func (f *focusSignal) emit(visible bool) {
	fns := make([]func(bool), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(visible)
	}
}
