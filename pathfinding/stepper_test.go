package pathfinding

import (
	"reflect"
	"testing"

	"gridnav/core"
)

func TestStepper_MatchesFindPath(t *testing.T) {
	grid := `
......
.XX.X.
.X....
.X.XX.
......`
	start, dest := core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 4}

	pf := newFinder(t, grid, start, dest)
	want, err := pf.FindPath(Unbounded)
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}

	pf = newFinder(t, grid, start, dest)
	st, err := pf.NewStepper(Unbounded)
	if err != nil {
		t.Fatalf("NewStepper failed: %v", err)
	}

	var snap Snapshot
	steps := 0
	for {
		snap = st.Step()
		steps++
		if steps > 1000 {
			t.Fatal("stepper did not terminate")
		}
		if snap.Done {
			break
		}
	}

	if !snap.Found {
		t.Fatal("stepped search found no path")
	}
	if !reflect.DeepEqual(snap.Path, want) {
		t.Errorf("stepped path %v differs from FindPath %v", snap.Path.Points, want.Points)
	}

	// Further steps return the final snapshot unchanged.
	if again := st.Step(); !reflect.DeepEqual(again, snap) {
		t.Error("Step() after completion changed the snapshot")
	}
}

func TestStepper_Budget(t *testing.T) {
	grid := `
.....
.....
.....
.....
.....`
	pf := newFinder(t, grid, core.Point{X: 0, Y: 0}, core.Point{X: 4, Y: 4})
	st, err := pf.NewStepper(1)
	if err != nil {
		t.Fatalf("NewStepper failed: %v", err)
	}

	snap := st.Run()
	if !snap.Done || snap.Found {
		t.Errorf("budget of 1 should exhaust without a path, got done=%v found=%v", snap.Done, snap.Found)
	}
	if !snap.Path.IsEmpty() {
		t.Errorf("exhausted search carries a path: %v", snap.Path.Points)
	}
}

func TestStepper_ExhaustedOpenSet(t *testing.T) {
	pf := newFinder(t, `.X.`, core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 0})
	st, err := pf.NewStepper(Unbounded)
	if err != nil {
		t.Fatalf("NewStepper failed: %v", err)
	}

	snap := st.Run()
	if !snap.Done || snap.Found {
		t.Errorf("unreachable destination: done=%v found=%v, want done without found", snap.Done, snap.Found)
	}
	if snap.OpenCount != 0 {
		t.Errorf("open count = %d after exhaustion, want 0", snap.OpenCount)
	}
	if snap.ClosedCount == 0 {
		t.Error("closed count = 0, the start node was explored")
	}
}

func TestStepper_InvalidEndpoints(t *testing.T) {
	pf, err := NewPathFinder(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := pf.LoadMap([][]bool{{true, true}, {true, true}}); err != nil {
		t.Fatal(err)
	}
	if _, err := pf.NewStepper(Unbounded); err == nil {
		t.Error("NewStepper without endpoints should fail")
	}
}
