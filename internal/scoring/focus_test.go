// ABOUTME: Tests for the distraction-penalty formula.
// ABOUTME: Checks clamping, saturation and the reason table default.
package scoring

import (
	"math"
	"testing"
)

func TestTimePenaltySaturates(t *testing.T) {
	if p := TimePenalty(0); p != 0 {
		t.Errorf("TimePenalty(0) = %v, want 0", p)
	}
	if p := TimePenalty(-10); p != 0 {
		t.Errorf("TimePenalty(-10) = %v, want 0", p)
	}

	// Penalty must grow with duration but never reach 50.
	prev := 0.0
	for m := 10.0; m <= 600; m += 10 {
		p := TimePenalty(m)
		if p <= prev {
			t.Fatalf("TimePenalty not increasing at %v minutes", m)
		}
		if p >= 50 {
			t.Fatalf("TimePenalty(%v) = %v, want < 50", m, p)
		}
		prev = p
	}
}

func TestTimePenaltyCurve(t *testing.T) {
	// 60 minutes sits at one time constant: 50·(1−e⁻¹).
	want := 50 * (1 - math.Exp(-1))
	if got := TimePenalty(60); math.Abs(got-want) > 1e-9 {
		t.Errorf("TimePenalty(60) = %v, want %v", got, want)
	}
}

func TestReasonPenalty(t *testing.T) {
	if p := ReasonPenalty("game"); p != 12 {
		t.Errorf("ReasonPenalty(game) = %d, want 12", p)
	}
	if p := ReasonPenalty("doomscrolling"); p != 8 {
		t.Errorf("unknown reason penalty = %d, want default 8", p)
	}
}

func TestDistractionScore(t *testing.T) {
	// Short harmless session stays high.
	if s := DistractionScore(5, "news"); s < 85 || s > 100 {
		t.Errorf("DistractionScore(5, news) = %d, want high", s)
	}
	// Marathon gaming session bottoms out near the floor but the
	// saturating curve keeps it above zero.
	if s := DistractionScore(600, "game"); s < 0 || s > 45 {
		t.Errorf("DistractionScore(600, game) = %d out of range", s)
	}
	// Always within [0, 100].
	for m := 0.0; m <= 1000; m += 50 {
		if s := DistractionScore(m, "video"); s < 0 || s > 100 {
			t.Fatalf("DistractionScore(%v) = %d out of [0,100]", m, s)
		}
	}
}
