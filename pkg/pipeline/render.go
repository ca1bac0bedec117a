package pipeline

import (
	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/render/html"
	"github.com/matzehuels/testspec/pkg/render/markdown"
	"github.com/matzehuels/testspec/pkg/render/table"
	"github.com/matzehuels/testspec/pkg/render/xlsx"
	"github.com/matzehuels/testspec/pkg/testspec"
)

// Render emits s in opts.Format. It does no caching and does not modify s.
func Render(s *testspec.Spec, opts Options) ([]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	switch opts.Format {
	case FormatMarkdown:
		md, err := markdown.Render(s)
		if err != nil {
			return nil, err
		}
		return []byte(md), nil
	case FormatHTML:
		return html.Render(s)
	case FormatExcel:
		grid := table.Layout(s, opts.Columns)
		return xlsx.Render(grid,
			xlsx.WithSheetName(s.Title),
			xlsx.WithColumns(opts.Columns),
			xlsx.WithStyle(opts.Style),
		)
	}
	return nil, sterrors.New(sterrors.ErrCodeInternal, "no renderer for format %q", opts.Format)
}

// Summarize counts the items of s. Rows is the number of workbook data
// rows, which is also the last row number.
func Summarize(s *testspec.Spec) Stats {
	var st Stats
	for _, p := range s.Cases {
		st.Primary++
		if len(p.Children) == 0 {
			st.Rows++
		}
		for _, sec := range p.Children {
			st.Secondary++
			st.Tertiary += len(sec.Children)
			if len(sec.Children) == 0 {
				st.Rows++
			} else {
				st.Rows += len(sec.Children)
			}
		}
	}
	return st
}
