package bearing

import "testing"

func TestNewGridLengthMismatch(t *testing.T) {
	if _, err := NewGrid([]float64{10, 20}, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestNewGridEmpty(t *testing.T) {
	grid, err := NewGrid(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if grid.Len() != 0 {
		t.Fatalf("empty grid has %d conditions", grid.Len())
	}
}

func TestGridOrderAndLookup(t *testing.T) {
	grid, err := NewGrid([]float64{10, 20, 30}, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}

	if grid.Len() != 3 {
		t.Fatalf("grid has %d conditions, want 3", grid.Len())
	}

	if got := grid.At(1); got != (Condition{SpeedHz: 20, LoadKN: 2}) {
		t.Fatalf("unexpected condition at index 1: %+v", got)
	}

	idx, ok := grid.Index(Condition{SpeedHz: 30, LoadKN: 3})
	if !ok || idx != 2 {
		t.Fatalf("lookup failed: idx=%d ok=%v", idx, ok)
	}

	if _, ok := grid.Index(Condition{SpeedHz: 30, LoadKN: 4}); ok {
		t.Fatal("lookup must require exact load match")
	}
}

func TestGridConditionsIsCopy(t *testing.T) {
	grid, err := NewGrid([]float64{10}, []float64{1})
	if err != nil {
		t.Fatal(err)
	}

	conds := grid.Conditions()
	conds[0].SpeedHz = 99

	if grid.At(0).SpeedHz != 10 {
		t.Fatal("grid mutated through Conditions copy")
	}
}
