package core

import (
	"reflect"
	"testing"
)

func TestPathReverse(t *testing.T) {
	tests := []struct {
		name string
		in   []Point
		want []Point
	}{
		{
			name: "empty",
			in:   nil,
			want: []Point{},
		},
		{
			name: "single point",
			in:   []Point{{1, 2}},
			want: []Point{{1, 2}},
		},
		{
			name: "diagonal run",
			in:   []Point{{2, 2}, {1, 1}, {0, 0}},
			want: []Point{{0, 0}, {1, 1}, {2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Path{Points: tt.in, Cost: 42}.Reverse()
			if !reflect.DeepEqual(got.Points, tt.want) {
				t.Errorf("Reverse() = %v, want %v", got.Points, tt.want)
			}
			if got.Cost != 42 {
				t.Errorf("Reverse() dropped cost: got %v", got.Cost)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Min: Point{0, 0}, Max: Point{3, 2}}

	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("bounds dimensions = %dx%d, want 3x2", b.Width(), b.Height())
	}

	inside := []Point{{0, 0}, {2, 1}}
	outside := []Point{{3, 0}, {0, 2}, {-1, 0}}

	for _, p := range inside {
		if !b.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range outside {
		if b.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestPointString(t *testing.T) {
	if got := (Point{4, 7}).String(); got != "(4,7)" {
		t.Errorf("String() = %q, want %q", got, "(4,7)")
	}
}
