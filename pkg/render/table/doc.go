// Package table lays a test specification out as a grid of cells.
//
// # Overview
//
// [Layout] walks the tree depth first and produces a [Grid]: a header row
// followed by one data row per tertiary item. The grid is independent of any
// spreadsheet library; [github.com/matzehuels/testspec/pkg/render/xlsx]
// turns it into a workbook.
//
// # Columns
//
// The nine columns are a closed enumeration in a fixed order:
//
//	No. | Primary | Secondary | Tertiary | Operator | Result | Operations | Confirmations | Remarks
//
// Per-column settings live in [Columns], an array indexed by [Column], so
// column order is a compile-time property rather than something assembled
// at run time.
//
// # Rows
//
// Leaves drive rows. Each tertiary item yields one row holding the running
// row number, its title, two blank cells (operator and result are filled in
// by hand when the test is executed) and the three text lists joined with
// newlines. A secondary item without tertiary children, or a primary item
// without secondary children, still yields exactly one row so that empty
// branches stay visible in the printed plan.
//
// Row numbers start at 1, never reset, and equal the row's index in
// [Grid.Rows].
//
// # Merged Regions
//
// Parent titles are not repeated on every row. When a secondary item covers
// a single row its title is written into that row; when it covers several,
// the first row carries the title with [Cell.Span] set to the number of
// rows and the rows below hold covered cells (Span 0). Primary items follow
// the same rule in their own column.
package table
