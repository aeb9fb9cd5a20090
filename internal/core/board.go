package core

import "fmt"

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// Bounds limits the character's top-left corner, in pixels.
type Bounds struct {
	Left, Right, Top, Bottom int
}

// Geometry is the immutable grid description of the playing field.
// It is computed once at startup and shared read-only by every component.
type Geometry struct {
	NumRows    int
	NumColumns int
	Grid       Size
	Rows       []int // top pixel of each row, top to bottom
	Columns    []int // left pixel of each column
	Bounds     Bounds
	StartRow   int
	StartCol   int
}

// NewGeometry builds the row/column pixel tables for a grid.
// Character bounds are given as row and column indices.
func NewGeometry(grid Size, numRows, numColumns, topRow, bottomRow, startRow, startCol int) Geometry {
	g := Geometry{
		NumRows:    numRows,
		NumColumns: numColumns,
		Grid:       grid,
		Rows:       make([]int, numRows),
		Columns:    make([]int, numColumns),
		StartRow:   startRow,
		StartCol:   startCol,
	}
	for i := range g.Rows {
		g.Rows[i] = i * grid.Height
	}
	for i := range g.Columns {
		g.Columns[i] = i * grid.Width
	}
	g.Bounds = Bounds{
		Left:   0,
		Right:  (numColumns - 1) * grid.Width,
		Top:    topRow * grid.Height,
		Bottom: bottomRow * grid.Height,
	}
	return g
}

// Width returns the drawing surface width in pixels.
func (g Geometry) Width() int {
	return g.NumColumns * g.Grid.Width
}

// Height returns the drawing surface height in pixels.
func (g Geometry) Height() int {
	return g.NumRows * g.Grid.Height
}

// RowTop returns the top pixel of a row. Rows outside the board are a
// programming error.
func (g Geometry) RowTop(row int) int {
	if row < 0 || row >= g.NumRows {
		panic(fmt.Sprintf("core: row %d outside board of %d rows", row, g.NumRows))
	}
	return g.Rows[row]
}

// RowOf returns the row whose band contains the top pixel. The result is not
// range-checked.
func (g Geometry) RowOf(top int) int {
	return top / g.Grid.Height
}

// ColumnLeft returns the left pixel of a column.
func (g Geometry) ColumnLeft(col int) int {
	if col < 0 || col >= g.NumColumns {
		panic(fmt.Sprintf("core: column %d outside board of %d columns", col, g.NumColumns))
	}
	return g.Columns[col]
}

// MinRow is the highest row (smallest index) the character may reach.
func (g Geometry) MinRow() int {
	return g.Bounds.Top / g.Grid.Height
}

// MaxRow is the lowest row the character may reach.
func (g Geometry) MaxRow() int {
	return g.Bounds.Bottom / g.Grid.Height
}
