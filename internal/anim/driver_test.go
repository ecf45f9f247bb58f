package anim

import (
	"math"
	"testing"
)

func TestDriverOscillates(t *testing.T) {
	d := DefaultDriver()

	flippedDown := false
	flippedUp := false
	prevSign := d.Sign

	for i := 0; i < 1000; i++ {
		d.Tick()
		if d.Time < d.Lower-d.Rate-1e-9 || d.Time > d.Upper+d.Rate+1e-9 {
			t.Fatalf("tick %d: time %v escaped [%v, %v]", i, d.Time, d.Lower-d.Rate, d.Upper+d.Rate)
		}
		if prevSign == 1 && d.Sign == -1 {
			if d.Time < d.Upper {
				t.Fatalf("tick %d: flipped down at %v below upper bound", i, d.Time)
			}
			flippedDown = true
		}
		if prevSign == -1 && d.Sign == 1 {
			if !flippedDown {
				t.Fatalf("tick %d: flipped up before reaching the upper bound", i)
			}
			if d.Time >= d.Lower {
				t.Fatalf("tick %d: flipped up at %v above lower bound", i, d.Time)
			}
			flippedUp = true
		}
		prevSign = d.Sign
	}

	if !flippedDown || !flippedUp {
		t.Errorf("expected both reversals, down=%v up=%v", flippedDown, flippedUp)
	}
}

func TestDriverFirstReversal(t *testing.T) {
	d := DefaultDriver()

	ticks := 0
	for d.Sign == 1 {
		d.Tick()
		ticks++
		if ticks > 100 {
			t.Fatal("sign never flipped")
		}
	}
	// -1 to 2 in steps of 0.05
	if ticks < 59 || ticks > 61 {
		t.Errorf("first reversal after %d ticks, want ~60", ticks)
	}
	if d.Time < 2-1e-9 {
		t.Errorf("reversed at time %v, want >= 2", d.Time)
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		time float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.8, 1},
	}
	for _, tt := range tests {
		d := &Driver{Time: tt.time}
		if got := d.Blend(); got != tt.want {
			t.Errorf("Blend(%v) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestReset(t *testing.T) {
	d := DefaultDriver()
	for i := 0; i < 70; i++ {
		d.Tick()
	}
	d.Reset(DefaultStart)
	if d.Time != DefaultStart || d.Sign != 1 {
		t.Errorf("reset to (%v, %v)", d.Time, d.Sign)
	}
}

func TestSmootherConverges(t *testing.T) {
	s := NewSmoother(30, 6.0, 1.0)
	for i := 0; i < 300; i++ {
		s.Step(1)
	}
	if math.Abs(s.Value()-1) > 1e-3 {
		t.Errorf("smoother settled at %v, want 1", s.Value())
	}
}
