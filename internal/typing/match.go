package typing

// Counters holds character-level judgment totals.
type Counters struct {
	Judged int
	Errors int
}

// Outcome is the result of one Update pass.
type Outcome struct {
	Completed bool
	// ActiveUnit is the unit owning the cursor, or -1 when none does.
	ActiveUnit int
}

// Engine classifies units against the normalized input. Every Update
// re-derives all classifications from the input; only literal counters carry
// over between passes and are guarded by a judged watermark.
type Engine struct {
	units  []Unit
	stream Stream

	// Literal positions below watermark have already been counted.
	watermark      int
	literalJudged  int
	literalErrors  int
	phoneticJudged int
	phoneticErrors int

	active  int
	latched []rune
}

// NewEngine returns an engine over units and their canonical stream.
func NewEngine(units []Unit, stream Stream) *Engine {
	active := -1
	for i, u := range units {
		if u.Active {
			active = i
			break
		}
	}
	return &Engine{units: units, stream: stream, active: active}
}

// Units returns the classified units. Callers must treat them as read-only.
func (e *Engine) Units() []Unit {
	return e.units
}

// Stream returns the canonical stream.
func (e *Engine) Stream() Stream {
	return e.stream
}

// ActiveUnit returns the index of the active unit or -1.
func (e *Engine) ActiveUnit() int {
	return e.active
}

// Counters returns literal counters plus counters derived from resolved phonetic groups.
func (e *Engine) Counters() Counters {
	return Counters{
		Judged: e.literalJudged + e.phoneticJudged,
		Errors: e.literalErrors + e.phoneticErrors,
	}
}

// Update classifies every unit against input and reports completion.
func (e *Engine) Update(input string) Outcome {
	in := []rune(input)
	n := len(in)

	e.reset()

scan:
	for i, entry := range e.stream.Entries {
		u := &e.units[i]
		start, end := entry.Start, entry.End
		switch u.Kind {
		case PhoneticGroup:
			if n >= start && n < end {
				u.Active = true
				classify(u.Cells, in[start:n])
				u.Cells[n-start].Status = Active
				e.active = i
				break scan
			}
			if n >= end {
				wrong := classify(u.Cells, in[start:end])
				for j := range u.Cells {
					if u.Cells[j].Status == Correct {
						u.Cells[j].Typed = true
					}
				}
				e.phoneticJudged += len(u.Cells)
				e.phoneticErrors += wrong
			}
		case LiteralChar:
			if n == start {
				u.Active = true
				u.Cells[0].Status = Active
				e.active = i
				break scan
			}
			if n > start {
				cell := &u.Cells[0]
				ok := Equivalent(cell.Char, in[start])
				cell.Typed = true
				if ok {
					cell.Status = Correct
				} else {
					cell.Status = Incorrect
				}
				if start >= e.watermark {
					e.literalJudged++
					if !ok {
						e.literalErrors++
					}
				}
			}
		}
	}
	if n > e.watermark {
		e.watermark = n
	}

	return Outcome{Completed: e.complete(in), ActiveUnit: e.active}
}

func (e *Engine) reset() {
	e.active = -1
	e.phoneticJudged = 0
	e.phoneticErrors = 0
	for i := range e.units {
		e.units[i].Active = false
		for j := range e.units[i].Cells {
			e.units[i].Cells[j].Status = Untyped
			e.units[i].Cells[j].Typed = false
		}
	}
}

// complete latches the first completing input so longer inputs with the same
// prefix stay complete.
func (e *Engine) complete(in []rune) bool {
	if e.latched != nil && hasPrefix(in, e.latched) {
		return true
	}
	if !e.stream.Complete(in) {
		return false
	}
	if e.latched == nil {
		e.latched = append([]rune{}, in...)
	}
	return true
}

// classify marks cells against typed by exact comparison and returns the
// number of incorrect cells.
func classify(cells []Cell, typed []rune) int {
	wrong := 0
	for i := range typed {
		if i >= len(cells) {
			break
		}
		if typed[i] == cells[i].Char {
			cells[i].Status = Correct
			continue
		}
		cells[i].Status = Incorrect
		wrong++
	}
	return wrong
}

func hasPrefix(s, prefix []rune) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
