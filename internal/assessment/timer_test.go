package assessment

import "testing"

func TestTimerArmAndCountdown(t *testing.T) {
	var tm Timer
	gen := tm.Arm(3)

	res := tm.Tick(gen)
	if !res.Applied || res.Remaining != 2 || res.TimedOut {
		t.Errorf("tick 1 = %+v, want applied, remaining 2, no timeout", res)
	}

	tm.Tick(gen)
	res = tm.Tick(gen)
	if !res.TimedOut {
		t.Error("expected timeout on the tick crossing zero")
	}
}

func TestTimerTimeoutEdgeTriggered(t *testing.T) {
	var tm Timer
	gen := tm.Arm(1)

	res := tm.Tick(gen)
	if !res.TimedOut {
		t.Fatal("expected timeout on first zero crossing")
	}

	// Repeated ticks at zero must not re-fire.
	for i := 0; i < 3; i++ {
		res = tm.Tick(gen)
		if res.TimedOut {
			t.Fatalf("tick %d at zero re-fired timeout", i)
		}
	}
}

func TestTimerStaleGenerationDiscarded(t *testing.T) {
	var tm Timer
	old := tm.Arm(5)
	tm.Arm(5) // supersedes

	res := tm.Tick(old)
	if res.Applied {
		t.Error("stale tick was applied")
	}
	if tm.Remaining() != 5 {
		t.Errorf("Remaining = %d, want 5 (stale tick must not decrement)", tm.Remaining())
	}
}

func TestTimerDisarmStopsDelivery(t *testing.T) {
	var tm Timer
	gen := tm.Arm(2)
	tm.Disarm()

	res := tm.Tick(gen)
	if res.Applied || res.TimedOut {
		t.Errorf("tick after disarm = %+v, want discarded", res)
	}
}

func TestTimerRearmResetsFiredState(t *testing.T) {
	var tm Timer
	gen := tm.Arm(1)
	tm.Tick(gen) // fires

	gen = tm.Arm(1)
	res := tm.Tick(gen)
	if !res.TimedOut {
		t.Error("fresh instance should fire its own timeout")
	}
}
