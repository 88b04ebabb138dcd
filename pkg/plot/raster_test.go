package plot

import (
	"slices"
	"testing"
)

func collectLine(p0, p1 Cell) []Cell {
	var cells []Cell
	for c := range Line(p0, p1) {
		cells = append(cells, c)
	}
	return cells
}

func TestLineHorizontal(t *testing.T) {
	got := collectLine(Cell{0, 0}, Cell{4, 0})
	want := []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("Line((0,0)->(4,0)) = %v, want %v", got, want)
	}
}

func TestLineDiagonal(t *testing.T) {
	got := collectLine(Cell{0, 0}, Cell{3, 3})
	want := []Cell{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("Line((0,0)->(3,3)) = %v, want %v", got, want)
	}
}

func TestLineDegenerate(t *testing.T) {
	got := collectLine(Cell{7, 7}, Cell{7, 7})
	want := []Cell{{7, 7}}
	if !slices.Equal(got, want) {
		t.Errorf("Line((7,7)->(7,7)) = %v, want %v", got, want)
	}
}

func TestLineEndpointsAndLength(t *testing.T) {
	tests := []struct {
		p0, p1 Cell
	}{
		{Cell{0, 0}, Cell{5, 1}},
		{Cell{0, 0}, Cell{1, 5}},
		{Cell{4, 0}, Cell{0, 0}},
		{Cell{3, 3}, Cell{0, 0}},
		{Cell{-2, 5}, Cell{4, -3}},
		{Cell{0, 0}, Cell{7, 0}},
		{Cell{0, 9}, Cell{0, 0}},
	}

	for _, tt := range tests {
		got := collectLine(tt.p0, tt.p1)
		if got[0] != tt.p0 || got[len(got)-1] != tt.p1 {
			t.Errorf("Line(%v->%v) endpoints = %v..%v", tt.p0, tt.p1, got[0], got[len(got)-1])
		}
		wantLen := max(abs(tt.p1.X-tt.p0.X), abs(tt.p1.Y-tt.p0.Y)) + 1
		if len(got) != wantLen {
			t.Errorf("Line(%v->%v) has %d cells, want %d", tt.p0, tt.p1, len(got), wantLen)
		}
		for i := 1; i < len(got); i++ {
			dx := abs(got[i].X - got[i-1].X)
			dy := abs(got[i].Y - got[i-1].Y)
			if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
				t.Errorf("Line(%v->%v) step %d: %v -> %v is not a single-cell move",
					tt.p0, tt.p1, i, got[i-1], got[i])
			}
		}
	}
}

func TestLineRestartable(t *testing.T) {
	seq := Line(Cell{0, 0}, Cell{6, 2})
	var first, second []Cell
	for c := range seq {
		first = append(first, c)
	}
	for c := range seq {
		second = append(second, c)
	}
	if !slices.Equal(first, second) {
		t.Errorf("second walk %v differs from first %v", second, first)
	}
}

func TestLineEarlyStop(t *testing.T) {
	n := 0
	for range Line(Cell{0, 0}, Cell{100, 0}) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("stopped after %d cells, want 3", n)
	}
}
