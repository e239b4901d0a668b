package assessment

// Timer is the single-question countdown. Each Arm starts a fresh
// instance identified by a generation number; ticks carrying a stale
// generation are discarded, so a wake-up scheduled against a superseded
// question can never touch current state.
type Timer struct {
	gen       uint64
	remaining int
	running   bool
	fired     bool
}

// TickResult describes the outcome of applying one tick.
type TickResult struct {
	// Applied is false when the tick was stale or the timer idle.
	Applied bool

	// Remaining is the seconds left after the tick.
	Remaining int

	// TimedOut is true only on the tick that crossed zero. Timeout is
	// edge-triggered: later ticks at zero report false.
	TimedOut bool
}

// Arm starts a fresh countdown of limitSeconds and returns the new
// generation. Any previously scheduled tick is invalidated.
func (t *Timer) Arm(limitSeconds int) uint64 {
	t.gen++
	t.remaining = limitSeconds
	t.running = true
	t.fired = false
	return t.gen
}

// Disarm stops the countdown. Pending ticks for the old generation no
// longer apply.
func (t *Timer) Disarm() {
	t.gen++
	t.running = false
}

// Tick applies one elapsed second for the given generation.
func (t *Timer) Tick(gen uint64) TickResult {
	if gen != t.gen || !t.running {
		return TickResult{Remaining: t.remaining}
	}
	if t.remaining > 0 {
		t.remaining--
	}
	res := TickResult{Applied: true, Remaining: t.remaining}
	if t.remaining == 0 && !t.fired {
		t.fired = true
		res.TimedOut = true
	}
	return res
}

// Gen returns the current generation.
func (t *Timer) Gen() uint64 { return t.gen }

// Remaining returns the seconds left on the current instance.
func (t *Timer) Remaining() int { return t.remaining }

// Running reports whether a countdown is live.
func (t *Timer) Running() bool { return t.running }
