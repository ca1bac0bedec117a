// Package render holds the output sinks for test specifications.
//
// # Overview
//
// A parsed [testspec.Spec] can be emitted in three ways:
//
//   - [markdown]: a heading outline with numbered operations and bulleted
//     confirmations and remarks
//   - [html]: the same outline converted to HTML
//   - [xlsx]: a single-sheet workbook built from the [table] grid
//
// The [table] subpackage is the layout engine. It turns the four-level tree
// into rows and columns and records the vertical merges the primary and
// secondary columns need. Sinks return bytes (or write to an [io.Writer]);
// choosing a sink and caching its result is the job of the pipeline package.
//
//	grid := table.Layout(spec, table.Columns{})
//	data, err := xlsx.Render(grid, xlsx.WithSheetName(spec.Title))
//
// [testspec.Spec]: github.com/matzehuels/testspec/pkg/testspec.Spec
// [markdown]: github.com/matzehuels/testspec/pkg/render/markdown
// [html]: github.com/matzehuels/testspec/pkg/render/html
// [xlsx]: github.com/matzehuels/testspec/pkg/render/xlsx
// [table]: github.com/matzehuels/testspec/pkg/render/table
package render
