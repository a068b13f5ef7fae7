package session

import (
	"sync"
	"time"

	"github.com/verte-zerg/zitype/internal/translit"
	"github.com/verte-zerg/zitype/internal/typing"
)

const (
	// DefaultIdleThreshold is how long without input pauses a session.
	DefaultIdleThreshold = 3 * time.Second
	// DefaultCheckInterval is how often inactivity is checked.
	DefaultCheckInterval = 2 * time.Second
)

// Hooks are optional host callbacks. They run after the session lock is
// released, so they may call back into the session.
type Hooks struct {
	OnPause    func()
	OnResume   func()
	OnComplete func(typing.Results)
	OnRestart  func()
}

// Options configures a Session.
type Options struct {
	Transliterator translit.Transliterator
	Clock          Clock
	Ticker         Ticker
	Visibility     Visibility
	IdleThreshold  time.Duration
	CheckInterval  time.Duration
	Hooks          Hooks
}

// State is a snapshot of the session counters and timer.
type State struct {
	Text        string
	Phase       Phase
	StartedAt   time.Time
	LastInput   time.Time
	PausedTotal time.Duration
	Errors      int
	Judged      int
}

// Active reports whether the session accepts input.
func (s State) Active() bool {
	return s.Phase == Running || s.Phase == Paused
}

// Paused reports whether the session is paused.
func (s State) Paused() bool {
	return s.Phase == Paused
}

// Update is the result of feeding input to the session.
type Update struct {
	// Buffer and Cursor are the settled input; hosts rewrite their buffer
	// when Rewritten is set.
	Buffer    string
	Cursor    int
	Rewritten bool
	// Ignored is set when the session is not active or the input never settled.
	Ignored   bool
	Completed bool
	Results   *typing.Results
}

// Session owns one typing run at a time. All triggers (input, ticks,
// visibility changes) serialize on its lock.
type Session struct {
	mu sync.Mutex

	opts       Options
	normalizer *typing.Normalizer
	timer      *Timer

	// gen invalidates tick and visibility callbacks of torn-down runs.
	gen        uint64
	text       string
	engine     *typing.Engine
	results    *typing.Results
	cancelTick func()
	cancelVis  func()
}

// New returns an idle session.
func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Ticker == nil {
		opts.Ticker = TimeTicker{}
	}
	if opts.Visibility == nil {
		opts.Visibility = AlwaysVisible{}
	}
	if opts.IdleThreshold <= 0 {
		opts.IdleThreshold = DefaultIdleThreshold
	}
	if opts.CheckInterval <= 0 {
		opts.CheckInterval = DefaultCheckInterval
	}
	return &Session{
		opts:       opts,
		normalizer: typing.NewNormalizer(opts.Transliterator),
		timer:      NewTimer(opts.IdleThreshold),
	}
}

// Start tears down any previous run and begins a new one over text. Text
// with nothing to type completes immediately.
func (s *Session) Start(text string) Update {
	s.mu.Lock()
	s.teardown()
	s.gen++
	gen := s.gen
	s.text = text
	s.results = nil
	units := typing.Segment(text, s.opts.Transliterator)
	s.engine = typing.NewEngine(units, typing.Build(units))
	now := s.opts.Clock.Now()
	s.timer.Start(now)

	s.cancelTick = s.opts.Ticker.Every(s.opts.CheckInterval, func() { s.tick(gen) })
	s.cancelVis = s.opts.Visibility.Subscribe(func(visible bool) { s.visibility(gen, visible) })

	out := s.engine.Update("")
	upd := Update{}
	var after []func()
	if out.Completed {
		after = s.finish(now, &upd)
	}
	s.mu.Unlock()
	run(after)
	return upd
}

// Input feeds the raw content of the input buffer and its cursor position.
// The buffer is normalized to a fixed point before it is matched.
func (s *Session) Input(raw string, cursor int) Update {
	s.mu.Lock()
	upd := Update{Buffer: raw, Cursor: cursor}
	if !s.activeLocked() {
		s.mu.Unlock()
		upd.Ignored = true
		return upd
	}
	rw, ok := s.normalizer.Rewrite(raw, cursor)
	if !ok {
		s.mu.Unlock()
		upd.Ignored = true
		return upd
	}
	now := s.opts.Clock.Now()
	var after []func()
	if s.timer.Activity(now) && s.opts.Hooks.OnResume != nil {
		after = append(after, s.opts.Hooks.OnResume)
	}
	upd.Buffer, upd.Cursor, upd.Rewritten = rw.Text, rw.Cursor, rw.Changed
	if s.engine.Update(rw.Text).Completed {
		after = append(after, s.finish(now, &upd)...)
	}
	s.mu.Unlock()
	run(after)
	return upd
}

// Continue resumes a paused session.
func (s *Session) Continue() bool {
	s.mu.Lock()
	resumed := s.timer.Continue(s.opts.Clock.Now())
	s.mu.Unlock()
	if resumed && s.opts.Hooks.OnResume != nil {
		s.opts.Hooks.OnResume()
	}
	return resumed
}

// Restart tears down the current run and notifies the host.
func (s *Session) Restart() {
	s.Dispose()
	if s.opts.Hooks.OnRestart != nil {
		s.opts.Hooks.OnRestart()
	}
}

// Dispose tears down the current run without notifying the host.
func (s *Session) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardown()
	s.gen++
	s.engine = nil
	s.results = nil
	s.text = ""
	s.timer.Reset()
}

// Phase returns the timer phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.Phase()
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		Text:        s.text,
		Phase:       s.timer.Phase(),
		StartedAt:   s.timer.StartedAt(),
		LastInput:   s.timer.LastInput(),
		PausedTotal: s.timer.PausedTotal(),
	}
	if s.engine != nil {
		c := s.engine.Counters()
		st.Errors, st.Judged = c.Errors, c.Judged
	}
	return st
}

// Elapsed returns the active time so far.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.Elapsed(s.opts.Clock.Now())
}

// Units returns a copy of the classified units for rendering.
func (s *Session) Units() []typing.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return nil
	}
	src := s.engine.Units()
	out := make([]typing.Unit, len(src))
	for i, u := range src {
		out[i] = u
		out[i].Cells = append([]typing.Cell(nil), u.Cells...)
	}
	return out
}

// ActiveUnit returns the index of the active unit or -1.
func (s *Session) ActiveUnit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return -1
	}
	return s.engine.ActiveUnit()
}

// ExpectedLen returns the length of the canonical stream.
func (s *Session) ExpectedLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return 0
	}
	return s.engine.Stream().Len()
}

// Results returns the results of a completed run.
func (s *Session) Results() (typing.Results, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results == nil {
		return typing.Results{}, false
	}
	return *s.results, true
}

// Tick runs the liveness check for the current run, the way the ticker does.
func (s *Session) Tick() {
	s.tick(s.generation())
}

// SetVisible reports a visibility change for the current run.
func (s *Session) SetVisible(visible bool) {
	s.visibility(s.generation(), visible)
}

func (s *Session) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.activeLocked() {
		s.mu.Unlock()
		return
	}
	paused := s.timer.Check(s.opts.Clock.Now())
	s.mu.Unlock()
	if paused && s.opts.Hooks.OnPause != nil {
		s.opts.Hooks.OnPause()
	}
}

func (s *Session) visibility(gen uint64, visible bool) {
	if visible {
		return
	}
	s.mu.Lock()
	if gen != s.gen || !s.activeLocked() {
		s.mu.Unlock()
		return
	}
	paused := s.timer.Background(s.opts.Clock.Now())
	s.mu.Unlock()
	if paused && s.opts.Hooks.OnPause != nil {
		s.opts.Hooks.OnPause()
	}
}

func (s *Session) activeLocked() bool {
	if s.engine == nil {
		return false
	}
	phase := s.timer.Phase()
	return phase == Running || phase == Paused
}

// finish moves the run to Completed and returns the hooks to run once unlocked.
func (s *Session) finish(now time.Time, upd *Update) []func() {
	s.timer.Complete(now)
	s.teardown()
	res := typing.Compute(s.timer.Elapsed(now), s.engine.Stream().Len(), s.engine.Counters())
	s.results = &res
	upd.Completed = true
	upd.Results = &res
	if s.opts.Hooks.OnComplete == nil {
		return nil
	}
	return []func(){func() { s.opts.Hooks.OnComplete(res) }}
}

func (s *Session) teardown() {
	if s.cancelTick != nil {
		s.cancelTick()
		s.cancelTick = nil
	}
	if s.cancelVis != nil {
		s.cancelVis()
		s.cancelVis = nil
	}
}

func run(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}
