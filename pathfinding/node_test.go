package pathfinding

import (
	"math"
	"testing"
)

func TestGridNode_OpenClose(t *testing.T) {
	n := &GridNode{Parent: NoParent}

	if n.IsOpen() || n.IsClosed() {
		t.Fatal("new node must be in neither set")
	}

	n.Open()
	if !n.IsOpen() || n.IsClosed() {
		t.Error("Open() must set open and clear closed")
	}
	n.Open() // idempotent
	if !n.IsOpen() || n.IsClosed() {
		t.Error("repeated Open() changed state")
	}

	n.Close()
	if n.IsOpen() || !n.IsClosed() {
		t.Error("Close() must set closed and clear open")
	}
	n.Close() // idempotent
	if n.IsOpen() || !n.IsClosed() {
		t.Error("repeated Close() changed state")
	}

	n.Open()
	if !n.IsOpen() || n.IsClosed() {
		t.Error("node must be able to reopen after closing")
	}
}

func TestGridNode_F(t *testing.T) {
	tests := []struct {
		g, h float64
		want int
	}{
		{0, 0, 0},
		{10, 30, 40},
		{14.142, 28.284, 42},
		{10.4, 0.2, 11}, // 10.6 rounds up
		{10.2, 0.2, 10}, // 10.4 rounds down
	}
	for _, tt := range tests {
		n := &GridNode{G: tt.g, H: tt.h}
		if got := n.F(); got != tt.want {
			t.Errorf("F() with g=%v h=%v = %d, want %d", tt.g, tt.h, got, tt.want)
		}
	}
}

func TestGridNode_DistanceTo(t *testing.T) {
	tests := []struct {
		a, b *GridNode
		want float64
	}{
		{&GridNode{X: 0, Y: 0}, &GridNode{X: 0, Y: 0}, 0},
		{&GridNode{X: 0, Y: 0}, &GridNode{X: 3, Y: 4}, 5},
		{&GridNode{X: 2, Y: 2}, &GridNode{X: 1, Y: 1}, math.Sqrt2},
		{&GridNode{X: 5, Y: 1}, &GridNode{X: 1, Y: 1}, 4},
	}
	for _, tt := range tests {
		if got := tt.a.DistanceTo(tt.b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DistanceTo(%v,%v -> %v,%v) = %v, want %v",
				tt.a.X, tt.a.Y, tt.b.X, tt.b.Y, got, tt.want)
		}
		// Distance is symmetric.
		if got := tt.b.DistanceTo(tt.a); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DistanceTo reversed = %v, want %v", got, tt.want)
		}
	}
}
