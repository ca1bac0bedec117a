// Package pkg holds the libraries behind the testspec command.
//
// # Overview
//
// testspec turns a four-level YAML test specification into a Markdown
// outline, an HTML page or an XLSX test sheet. The packages are:
//
//  1. [testspec] - the specification tree
//  2. [io] - YAML decoding and artifact writing
//  3. [render] - Markdown, HTML and workbook sinks plus the table layout
//  4. [pipeline] - options, format dispatch and the cached runner
//  5. [cache], [config], [errors], [observability], [buildinfo] - support
//
// # Data flow
//
//	YAML document
//	     ↓
//	[io] package (strict decode)
//	     ↓
//	[testspec] tree
//	     ↓
//	[render/markdown] · [render/html] · [render/table] → [render/xlsx]
//	     ↓
//	artifact bytes
//
// # Quick Start
//
//	spec, err := io.ImportSpec("login.yaml")
//	if err != nil {
//	    return err
//	}
//	data, err := pipeline.Render(spec, pipeline.Options{Format: "excel"})
//
// [testspec]: github.com/matzehuels/testspec/pkg/testspec
// [io]: github.com/matzehuels/testspec/pkg/io
// [render]: github.com/matzehuels/testspec/pkg/render
// [render/markdown]: github.com/matzehuels/testspec/pkg/render/markdown
// [render/html]: github.com/matzehuels/testspec/pkg/render/html
// [render/table]: github.com/matzehuels/testspec/pkg/render/table
// [render/xlsx]: github.com/matzehuels/testspec/pkg/render/xlsx
// [pipeline]: github.com/matzehuels/testspec/pkg/pipeline
// [cache]: github.com/matzehuels/testspec/pkg/cache
// [config]: github.com/matzehuels/testspec/pkg/config
// [errors]: github.com/matzehuels/testspec/pkg/errors
// [observability]: github.com/matzehuels/testspec/pkg/observability
// [buildinfo]: github.com/matzehuels/testspec/pkg/buildinfo
package pkg
