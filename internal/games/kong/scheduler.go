package kong

// TimerKind identifies a periodic game event.
type TimerKind int

const (
	TimerSpawn TimerKind = iota + 1
	TimerEscalate
)

func (k TimerKind) String() string {
	switch k {
	case TimerSpawn:
		return "spawn"
	case TimerEscalate:
		return "escalate"
	default:
		return "unknown"
	}
}

type timer struct {
	kind   TimerKind
	period float64
	due    float64
	seq    int
}

// Scheduler runs periodic timers on a simulated clock. Time only moves when
// Advance is called, so runs are reproducible regardless of frame timing.
type Scheduler struct {
	now    float64
	seq    int
	timers []*timer
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated clock in milliseconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Every arms a timer that fires every periodMs, first one period from now.
// An existing timer of the same kind is replaced.
func (s *Scheduler) Every(kind TimerKind, periodMs float64) {
	if periodMs < 1 {
		periodMs = 1
	}
	s.Cancel(kind)
	s.seq++
	s.timers = append(s.timers, &timer{
		kind:   kind,
		period: periodMs,
		due:    s.now + periodMs,
		seq:    s.seq,
	})
}

// Cancel disarms the timer of the given kind, if any.
func (s *Scheduler) Cancel(kind TimerKind) {
	for i, t := range s.timers {
		if t.kind == kind {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// CancelAll disarms every timer.
func (s *Scheduler) CancelAll() {
	s.timers = nil
}

// Active reports whether a timer of the given kind is armed.
func (s *Scheduler) Active(kind TimerKind) bool {
	for _, t := range s.timers {
		if t.kind == kind {
			return true
		}
	}
	return false
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Period returns the period of the timer of the given kind, or 0.
func (s *Scheduler) Period(kind TimerKind) float64 {
	for _, t := range s.timers {
		if t.kind == kind {
			return t.period
		}
	}
	return 0
}

// Advance moves the clock forward by dtMs and calls fire for every
// occurrence that falls due, ordered by due time and then by arming order.
// A timer that fell behind fires once per missed period. fire may arm or
// cancel timers; changes take effect at the time of the occurrence being
// handled.
func (s *Scheduler) Advance(dtMs float64, fire func(TimerKind)) {
	target := s.now + dtMs
	for {
		t := s.next(target)
		if t == nil {
			break
		}
		s.now = t.due
		t.due += t.period
		fire(t.kind)
	}
	s.now = target
}

// next returns the earliest timer due at or before limit.
func (s *Scheduler) next(limit float64) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
