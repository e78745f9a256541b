package param

import (
	"math"
	"sync"
	"testing"
)

func TestNewSetDefaults(t *testing.T) {
	s := NewSet()
	want := map[ID]float64{Mix: 0.25, Gain: 1, Attack: 10, Release: 100, Mode: 0}

	for id, v := range want {
		if got := s.Value(id); got != v {
			t.Fatalf("%s = %v, want %v", id, got, v)
		}
	}
	if s.Snapshot() != Defaults() {
		t.Fatal("Snapshot of a fresh set should equal Defaults")
	}
}

func TestSetValueClamps(t *testing.T) {
	tests := []struct {
		id   ID
		in   float64
		want float64
	}{
		{Mix, -1, 0},
		{Mix, 2, 1},
		{Gain, 10, 4},
		{Attack, 0, 1},
		{Attack, 1e6, 500},
		{Release, -5, 1},
		{Release, 2500, 2000},
		{Mode, 1.4, 1},
		{Mode, 1.6, 2},
		{Mode, 9, 2},
		{Mode, math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			s := NewSet()
			if err := s.SetValue(tt.id, tt.in); err != nil {
				t.Fatalf("SetValue() error = %v", err)
			}
			if got := s.Value(tt.id); got != tt.want {
				t.Fatalf("SetValue(%v) stored %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetValueRejectsNaNAndUnknown(t *testing.T) {
	s := NewSet()
	if err := s.SetValue(Gain, math.NaN()); err == nil {
		t.Fatal("expected error for NaN")
	}
	if s.Value(Gain) != 1 {
		t.Fatalf("NaN write changed the cell: %v", s.Value(Gain))
	}
	if err := s.SetValue(Count, 1); err == nil {
		t.Fatal("expected error for unknown id")
	}
	if s.Value(ID(-1)) != 0 {
		t.Fatal("unknown id should read 0")
	}
}

func TestNudgeAndReset(t *testing.T) {
	s := NewSet()

	v, err := s.Nudge(Mix, 0.9)
	if err != nil {
		t.Fatalf("Nudge() error = %v", err)
	}
	if v != 1 {
		t.Fatalf("Nudge() = %v, want clamp to 1", v)
	}

	s.Apply(Values{Mix: 0.5, Gain: math.NaN(), Attack: 20, Release: 200, Mode: 2})
	if s.Value(Gain) != 1 || s.Value(Attack) != 20 || s.Value(Mode) != 2 {
		t.Fatalf("Apply stored unexpected values: %v", s.Snapshot())
	}

	s.Reset()
	if s.Snapshot() != Defaults() {
		t.Fatal("Reset should restore defaults")
	}
}

func TestConcurrentReadersSeeValidValues(t *testing.T) {
	s := NewSet()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 2000 {
			_ = s.SetValue(Release, float64(i))
		}
	}()

	for range 2000 {
		if v := s.Value(Release); v < 1 || v > 2000 {
			t.Fatalf("reader observed out-of-range value %v", v)
		}
	}
	wg.Wait()
}
