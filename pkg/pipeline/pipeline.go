// Package pipeline turns YAML test specifications into rendered artifacts.
//
// This package is shared by the CLI and the HTTP service so both entry points
// apply the same defaults, validation and caching.
//
// # Architecture
//
// A run has two stages:
//
//  1. Parse: decode the YAML document into a [testspec.Spec]
//  2. Render: emit Markdown, HTML or an XLSX workbook
//
// Rendering is deterministic, so the [Runner] caches artifacts keyed by the
// hash of the input bytes and every option that changes the output.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Format: pipeline.FormatExcel}
//	result, err := runner.Execute(ctx, input, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("spec.xlsx", result.Artifact, 0644)
//
// [Render] is the uncached render stage on an already parsed spec.
//
// [testspec.Spec]: github.com/matzehuels/testspec/pkg/testspec.Spec
package pipeline

import (
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/testspec/pkg/cache"
	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/render/table"
	"github.com/matzehuels/testspec/pkg/render/xlsx"
	"github.com/matzehuels/testspec/pkg/testspec"
)

// Format constants for output formats.
const (
	FormatMarkdown = "markdown"
	FormatExcel    = "excel"
	FormatHTML     = "html"
)

// DefaultFormat is used when no format is given.
const DefaultFormat = FormatMarkdown

// ValidFormats is the set of canonical output formats.
var ValidFormats = map[string]bool{
	FormatMarkdown: true,
	FormatExcel:    true,
	FormatHTML:     true,
}

// formatAliases maps accepted spellings to canonical format names.
var formatAliases = map[string]string{
	"markdown": FormatMarkdown,
	"md":       FormatMarkdown,
	"excel":    FormatExcel,
	"xlsx":     FormatExcel,
	"html":     FormatHTML,
}

// Content types and file extensions per canonical format.
var (
	contentTypes = map[string]string{
		FormatMarkdown: "text/markdown; charset=utf-8",
		FormatExcel:    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		FormatHTML:     "text/html; charset=utf-8",
	}
	extensions = map[string]string{
		FormatMarkdown: ".md",
		FormatExcel:    ".xlsx",
		FormatHTML:     ".html",
	}
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a render.
type Options struct {
	Format  string        `json:"format,omitempty"`
	Columns table.Columns `json:"columns,omitempty"`
	Style   xlsx.Style    `json:"style,omitempty"`

	// Refresh skips the cache lookup but still stores the new artifact.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the parsed specification.
	Spec *testspec.Spec

	// SpecHash is the SHA-256 of the input bytes.
	SpecHash string

	// Format is the canonical format that was rendered.
	Format string

	// Artifact holds the rendered bytes.
	Artifact []byte

	Stats Stats

	// CacheHit reports whether Artifact came from the cache.
	CacheHit bool
}

// Stats contains item counts and timings for a run.
type Stats struct {
	Primary    int
	Secondary  int
	Tertiary   int
	Rows       int
	ParseTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ParseFormat returns the canonical name for a format or alias.
// Matching ignores case and surrounding space.
func ParseFormat(s string) (string, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", sterrors.New(sterrors.ErrCodeInvalidFormat,
		"invalid format %q (must be one of: %s)", s, strings.Join(FormatNames(), ", "))
}

// ValidateFormat checks that format is a canonical format name.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return sterrors.New(sterrors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// FormatNames returns the canonical format names, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// ContentType returns the MIME type of a canonical format.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Extension returns the file extension of a canonical format, with the dot.
func Extension(format string) string {
	return extensions[format]
}

// =============================================================================
// Options Methods
// =============================================================================

// SetRenderDefaults fills the format, columns, style and logger.
// Formats given as aliases are canonicalized.
func (o *Options) SetRenderDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if f, err := ParseFormat(o.Format); err == nil {
		o.Format = f
	}
	o.Columns = o.Columns.WithDefaults()
	o.Style = o.Style.WithDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender applies defaults and validates the format, widths,
// font and colors.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	for i, c := range o.Columns {
		if err := sterrors.ValidateWidth(table.Column(i).String()+"-width", c.Width); err != nil {
			return err
		}
	}
	return o.Style.Validate()
}

// ArtifactKeyOpts returns the cache key options for the artifact.
// Column and style settings only affect workbooks; other formats share
// one entry regardless of them.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: o.Format}
	if o.Format != FormatExcel {
		return opts
	}
	opts.Headers = o.Columns.Headers()
	opts.Widths = make([]float64, table.NumColumns)
	for i, c := range o.Columns {
		opts.Widths[i] = c.Width
	}
	opts.Font = o.Style.Font
	opts.Colors = []string{
		o.Style.HeaderText,
		o.Style.HeaderBackground,
		o.Style.BodyText,
		o.Style.BodyBackground,
		o.Style.Border,
	}
	return opts
}
