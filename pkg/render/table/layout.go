package table

import (
	"strconv"
	"strings"

	"github.com/matzehuels/testspec/pkg/testspec"
)

// Layout lays s out as a grid. Row 0 holds the header texts from cols;
// empty headers fall back to the defaults.
func Layout(s *testspec.Spec, cols Columns) Grid {
	cols = cols.WithDefaults()

	header := blankRow()
	for i, c := range cols {
		header[i] = textCell(Column(i), c.Header)
	}
	rows := []Row{header}

	for _, primary := range s.Cases {
		primaryStart := len(rows)

		if len(primary.Children) == 0 {
			rows = append(rows, numberedRow(len(rows)))
		}
		for _, secondary := range primary.Children {
			secondaryStart := len(rows)

			if len(secondary.Children) == 0 {
				rows = append(rows, numberedRow(len(rows)))
			}
			for _, tertiary := range secondary.Children {
				rows = append(rows, leafRow(len(rows), tertiary))
			}

			span(rows, secondaryStart, len(rows)-1, ColSecondary, secondary.Title)
		}

		span(rows, primaryStart, len(rows)-1, ColPrimary, primary.Title)
	}

	return Grid{Rows: rows}
}

// span writes text into col for the rows start..end. A single row gets an
// ordinary cell; several rows become one merged region anchored at start.
func span(rows []Row, start, end int, col Column, text string) {
	n := end - start + 1
	rows[start][col] = Cell{Column: col, Kind: Text, Text: text, Span: n}
	for r := start + 1; r <= end; r++ {
		rows[r][col] = Cell{Column: col, Span: 0}
	}
}

func numberedRow(n int) Row {
	row := blankRow()
	row[ColNo] = Cell{Column: ColNo, Kind: Number, Number: n, Span: 1}
	return row
}

func leafRow(n int, t testspec.TertiaryItem) Row {
	row := numberedRow(n)
	row[ColTertiary] = textCell(ColTertiary, t.Title)
	row[ColOperations] = textCell(ColOperations, JoinNumbered(t.Operations))
	row[ColConfirmations] = textCell(ColConfirmations, JoinBulleted(t.Confirmations))
	row[ColRemarks] = textCell(ColRemarks, JoinBulleted(t.Remarks))
	return row
}

// JoinNumbered formats items as "1. a\n2. b".
func JoinNumbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(item)
	}
	return b.String()
}

// JoinBulleted formats items as "- a\n- b".
func JoinBulleted(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}
