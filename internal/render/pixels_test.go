package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false, true}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 255, G: 200, B: 10, A: 255}
	off := color.RGBA{R: 0, G: 0, B: 40, A: 255}
	fillBinaryRGBA(buf, cells, on, off)

	for i, lit := range cells {
		want := off
		if lit {
			want = on
		}
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("pixel %d = %v, expected %v", i, got, want)
		}
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{47, 47, 0, 0, true},
		{48, 0, 0, 1, true},
		{100, 200, 4, 2, true},
		{239, 239, 4, 4, true},
		{240, 10, 0, 0, false},
		{10, 240, 0, 0, false},
		{-1, 5, 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := CellAt(tc.x, tc.y, 48, 5, 5)
		if ok != tc.ok || row != tc.row || col != tc.col {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), expected (%d,%d,%v)", tc.x, tc.y, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
	if _, _, ok := CellAt(1, 1, 0, 5, 5); ok {
		t.Fatal("zero scale should never hit a cell")
	}
}
