package core

import "testing"

func classicGeometry() Geometry {
	return NewGeometry(Size{Width: 80, Height: 80}, 16, 11, 2, 14, 14, 6)
}

func TestNewGeometry(t *testing.T) {
	g := classicGeometry()

	if g.Width() != 880 || g.Height() != 1280 {
		t.Errorf("surface = %dx%d, expected 880x1280", g.Width(), g.Height())
	}
	if g.Rows[3] != 240 || g.Columns[10] != 800 {
		t.Errorf("pixel tables wrong: rows[3]=%d columns[10]=%d", g.Rows[3], g.Columns[10])
	}
	want := Bounds{Left: 0, Right: 800, Top: 160, Bottom: 1120}
	if g.Bounds != want {
		t.Errorf("Bounds = %+v, expected %+v", g.Bounds, want)
	}
	if g.MinRow() != 2 || g.MaxRow() != 14 {
		t.Errorf("row range = [%d, %d], expected [2, 14]", g.MinRow(), g.MaxRow())
	}
}

func TestGeometryRowTopPanicsOutsideBoard(t *testing.T) {
	g := classicGeometry()

	defer func() {
		if recover() == nil {
			t.Error("RowTop(16) should panic")
		}
	}()
	g.RowTop(16)
}

func TestGeometryRowOf(t *testing.T) {
	g := classicGeometry()

	tests := []struct{ top, row int }{
		{0, 0},
		{160, 2},
		{1119, 13},
		{1120, 14},
	}
	for _, tc := range tests {
		if got := g.RowOf(tc.top); got != tc.row {
			t.Errorf("RowOf(%d) = %d, expected %d", tc.top, got, tc.row)
		}
		if tc.top%80 == 0 && g.RowTop(tc.row) != tc.top {
			t.Errorf("RowTop(%d) = %d, expected %d", tc.row, g.RowTop(tc.row), tc.top)
		}
	}
}
