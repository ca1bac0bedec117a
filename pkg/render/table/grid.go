package table

// Kind is the type of value a cell holds.
type Kind uint8

const (
	Blank Kind = iota
	Number
	Text
)

// Cell is one grid cell.
//
// Span is 1 for an ordinary cell and k > 1 for the top cell of a vertical
// merge covering k rows. Cells inside a merge below its top cell have Span 0
// and are always blank.
type Cell struct {
	Column Column
	Kind   Kind
	Number int
	Text   string
	Span   int
}

// Covered reports whether the cell lies inside a merged region below its
// top cell.
func (c Cell) Covered() bool { return c.Span == 0 }

// Value returns the cell's value as an int, a string or nil for blank cells.
func (c Cell) Value() any {
	switch c.Kind {
	case Number:
		return c.Number
	case Text:
		return c.Text
	}
	return nil
}

// Row holds one cell per column.
type Row [NumColumns]Cell

// Grid is a header row followed by data rows.
type Grid struct {
	Rows []Row
}

// Merge is a vertical merged region in one column, rows inclusive.
type Merge struct {
	Column Column
	First  int
	Last   int
}

// Header returns the header row, or a blank row for an empty grid.
func (g Grid) Header() Row {
	if len(g.Rows) == 0 {
		return blankRow()
	}
	return g.Rows[0]
}

// DataRows returns the number of rows below the header.
func (g Grid) DataRows() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows) - 1
}

// Merges returns every merged region, ordered by first row then column.
func (g Grid) Merges() []Merge {
	var merges []Merge
	for r, row := range g.Rows {
		for _, cell := range row {
			if cell.Span > 1 {
				merges = append(merges, Merge{Column: cell.Column, First: r, Last: r + cell.Span - 1})
			}
		}
	}
	return merges
}

func blankRow() Row {
	var row Row
	for i := range row {
		row[i] = Cell{Column: Column(i), Span: 1}
	}
	return row
}

func textCell(col Column, s string) Cell {
	return Cell{Column: col, Kind: Text, Text: s, Span: 1}
}
