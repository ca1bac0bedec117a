package table

import (
	"fmt"
	"strings"
)

// Column identifies one of the nine grid columns.
type Column int

// Columns in display order.
const (
	ColNo Column = iota
	ColPrimary
	ColSecondary
	ColTertiary
	ColOperator
	ColResult
	ColOperations
	ColConfirmations
	ColRemarks

	// NumColumns is the number of columns in every row.
	NumColumns = int(ColRemarks) + 1
)

var columnNames = [NumColumns]string{
	ColNo:            "no",
	ColPrimary:       "primary",
	ColSecondary:     "secondary",
	ColTertiary:      "tertiary",
	ColOperator:      "operator",
	ColResult:        "result",
	ColOperations:    "operations",
	ColConfirmations: "confirmations",
	ColRemarks:       "remarks",
}

// String returns the column's configuration key, e.g. "secondary".
func (c Column) String() string {
	if c < 0 || int(c) >= NumColumns {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnNames[c]
}

// IsText reports whether the column holds one of the multi-line lists.
func (c Column) IsText() bool {
	return c == ColOperations || c == ColConfirmations || c == ColRemarks
}

// AllColumns returns every column in display order.
func AllColumns() []Column {
	cols := make([]Column, NumColumns)
	for i := range cols {
		cols[i] = Column(i)
	}
	return cols
}

// ParseColumn returns the column for a configuration key.
// Matching is case-insensitive and accepts '-' or '_' suffixes like
// "primary-item" or "primary_item".
func ParseColumn(name string) (Column, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(strings.TrimSuffix(key, "-item"), "_item")
	for i, n := range columnNames {
		if n == key {
			return Column(i), nil
		}
	}
	return 0, fmt.Errorf("unknown column %q", name)
}

// ColumnConfig holds the header text and width of one column.
type ColumnConfig struct {
	Header string  `json:"header,omitempty" toml:"header"`
	Width  float64 `json:"width,omitempty" toml:"width"`
}

// Columns holds the configuration of every column, indexed by [Column].
type Columns [NumColumns]ColumnConfig

// DefaultColumns returns the default header texts and widths.
func DefaultColumns() Columns {
	return Columns{
		ColNo:            {Header: "No.", Width: 10},
		ColPrimary:       {Header: "Primary Item", Width: 30},
		ColSecondary:     {Header: "Secondary Item", Width: 30},
		ColTertiary:      {Header: "Tertiary Item", Width: 30},
		ColOperator:      {Header: "Operator", Width: 15},
		ColResult:        {Header: "Result", Width: 10},
		ColOperations:    {Header: "Operations", Width: 40},
		ColConfirmations: {Header: "Confirmations", Width: 40},
		ColRemarks:       {Header: "Remarks", Width: 40},
	}
}

// WithDefaults returns a copy of c where empty headers and zero widths are
// replaced by the defaults.
func (c Columns) WithDefaults() Columns {
	defaults := DefaultColumns()
	for i := range c {
		if c[i].Header == "" {
			c[i].Header = defaults[i].Header
		}
		if c[i].Width == 0 {
			c[i].Width = defaults[i].Width
		}
	}
	return c
}

// Headers returns the header texts in display order.
func (c Columns) Headers() []string {
	headers := make([]string, NumColumns)
	for i := range c {
		headers[i] = c[i].Header
	}
	return headers
}
