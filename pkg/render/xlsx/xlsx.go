// Package xlsx writes a laid-out grid to an XLSX workbook.
//
// The workbook has a single sheet. Column widths come from
// [table.Columns]; font and colors come from [Style]. The header row is
// bold and centered on the header background. Body cells wrap their text;
// the number, title, operator and result columns are centered, the three
// list columns are aligned left and top so multi-line text reads naturally.
// Every cell, including covered cells of merged regions, gets a medium
// border in the border color.
//
// The workbook is assembled and encoded in memory; no temporary file is
// involved.
package xlsx

import (
	"github.com/xuri/excelize/v2"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/render/table"
)

// defaultSheet is the name excelize gives the first sheet of a new file.
const defaultSheet = "Sheet1"

// borderMedium is excelize's border style index for a medium line.
const borderMedium = 2

// Option configures workbook rendering.
type Option func(*renderer)

type renderer struct {
	sheet   string
	columns table.Columns
	style   Style
}

// WithSheetName names the sheet. An empty name keeps "Sheet1".
func WithSheetName(name string) Option {
	return func(r *renderer) { r.sheet = name }
}

// WithColumns sets column widths. Zero widths take the defaults.
func WithColumns(cols table.Columns) Option {
	return func(r *renderer) { r.columns = cols }
}

// WithStyle sets the font and colors. Empty fields take the defaults.
func WithStyle(s Style) Option {
	return func(r *renderer) { r.style = s }
}

// styles holds the excelize style IDs used by one workbook.
type styles struct {
	header     int
	bodyCenter int
	bodyText   int
}

// Render encodes g as an XLSX workbook.
//
// Failures from the container library, such as a sheet name excelize
// rejects, are returned with [sterrors.ErrCodeSerialize].
func Render(g table.Grid, opts ...Option) ([]byte, error) {
	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}
	r.columns = r.columns.WithDefaults()
	r.style = r.style.WithDefaults()

	f := excelize.NewFile()
	defer f.Close()

	sheet := defaultSheet
	if r.sheet != "" && r.sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, r.sheet); err != nil {
			return nil, sterrors.Wrap(sterrors.ErrCodeSerialize, err, "sheet name %q", r.sheet)
		}
		sheet = r.sheet
	}

	if err := r.setupColumns(f, sheet); err != nil {
		return nil, err
	}
	st, err := r.newStyles(f)
	if err != nil {
		return nil, err
	}
	if err := writeCells(f, sheet, g, st); err != nil {
		return nil, err
	}
	if err := writeMerges(f, sheet, g); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, sterrors.Wrap(sterrors.ErrCodeSerialize, err, "encode workbook")
	}
	return buf.Bytes(), nil
}

func (r *renderer) setupColumns(f *excelize.File, sheet string) error {
	for i, c := range r.columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return sterrors.Wrap(sterrors.ErrCodeSerialize, err, "column %d", i)
		}
		if err := f.SetColWidth(sheet, name, name, c.Width); err != nil {
			return sterrors.Wrap(sterrors.ErrCodeSerialize, err, "width of column %s", table.Column(i))
		}
	}
	return nil
}

func (r *renderer) newStyles(f *excelize.File) (styles, error) {
	s := r.style
	borders := []excelize.Border{
		{Type: "left", Color: s.Border, Style: borderMedium},
		{Type: "top", Color: s.Border, Style: borderMedium},
		{Type: "right", Color: s.Border, Style: borderMedium},
		{Type: "bottom", Color: s.Border, Style: borderMedium},
	}
	newStyle := func(font *excelize.Font, background, horizontal, vertical string) (int, error) {
		id, err := f.NewStyle(&excelize.Style{
			Font:      font,
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{background}},
			Border:    borders,
			Alignment: &excelize.Alignment{Horizontal: horizontal, Vertical: vertical, WrapText: true},
		})
		if err != nil {
			return 0, sterrors.Wrap(sterrors.ErrCodeSerialize, err, "create style")
		}
		return id, nil
	}

	var (
		st  styles
		err error
	)
	headerFont := &excelize.Font{Bold: true, Family: s.Font, Color: s.HeaderText}
	bodyFont := &excelize.Font{Family: s.Font, Color: s.BodyText}

	if st.header, err = newStyle(headerFont, s.HeaderBackground, "center", "center"); err != nil {
		return styles{}, err
	}
	if st.bodyCenter, err = newStyle(bodyFont, s.BodyBackground, "center", "center"); err != nil {
		return styles{}, err
	}
	if st.bodyText, err = newStyle(bodyFont, s.BodyBackground, "left", "top"); err != nil {
		return styles{}, err
	}
	return st, nil
}

func writeCells(f *excelize.File, sheet string, g table.Grid, st styles) error {
	for r, row := range g.Rows {
		for _, cell := range row {
			name, err := excelize.CoordinatesToCellName(int(cell.Column)+1, r+1)
			if err != nil {
				return sterrors.Wrap(sterrors.ErrCodeSerialize, err, "cell %d/%d", r, cell.Column)
			}

			styleID := st.bodyCenter
			switch {
			case r == 0:
				styleID = st.header
			case cell.Column.IsText():
				styleID = st.bodyText
			}
			if err := f.SetCellStyle(sheet, name, name, styleID); err != nil {
				return sterrors.Wrap(sterrors.ErrCodeSerialize, err, "style %s", name)
			}

			if v := cell.Value(); v != nil {
				if err := f.SetCellValue(sheet, name, v); err != nil {
					return sterrors.Wrap(sterrors.ErrCodeSerialize, err, "value %s", name)
				}
			}
		}
	}
	return nil
}

func writeMerges(f *excelize.File, sheet string, g table.Grid) error {
	for _, m := range g.Merges() {
		top, err := excelize.CoordinatesToCellName(int(m.Column)+1, m.First+1)
		if err != nil {
			return sterrors.Wrap(sterrors.ErrCodeSerialize, err, "merge start")
		}
		bottom, err := excelize.CoordinatesToCellName(int(m.Column)+1, m.Last+1)
		if err != nil {
			return sterrors.Wrap(sterrors.ErrCodeSerialize, err, "merge end")
		}
		if err := f.MergeCell(sheet, top, bottom); err != nil {
			return sterrors.Wrap(sterrors.ErrCodeSerialize, err, "merge %s:%s", top, bottom)
		}
	}
	return nil
}
