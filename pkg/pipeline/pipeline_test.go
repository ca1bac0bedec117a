package pipeline

import (
	"testing"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/render/table"
	"github.com/matzehuels/testspec/pkg/render/xlsx"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"markdown", FormatMarkdown, false},
		{"Markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"EXCEL", FormatExcel, false},
		{"xlsx", FormatExcel, false},
		{" html ", FormatHTML, false},
		{"pdf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !sterrors.Is(err, sterrors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) code = %v, want %v", tt.in, sterrors.GetCode(err), sterrors.ErrCodeInvalidFormat)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"markdown", false},
		{"excel", false},
		{"html", false},
		{"md", true}, // aliases are not canonical
		{"Excel", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestFormatNames(t *testing.T) {
	got := FormatNames()
	want := []string{"excel", "html", "markdown"}
	if len(got) != len(want) {
		t.Fatalf("FormatNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FormatNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestContentTypeAndExtension(t *testing.T) {
	tests := []struct {
		format string
		ct     string
		ext    string
	}{
		{FormatMarkdown, "text/markdown; charset=utf-8", ".md"},
		{FormatHTML, "text/html; charset=utf-8", ".html"},
		{FormatExcel, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx"},
		{"other", "application/octet-stream", ""},
	}

	for _, tt := range tests {
		if got := ContentType(tt.format); got != tt.ct {
			t.Errorf("ContentType(%q) = %q, want %q", tt.format, got, tt.ct)
		}
		if got := Extension(tt.format); got != tt.ext {
			t.Errorf("Extension(%q) = %q, want %q", tt.format, got, tt.ext)
		}
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{Format: "XLSX"}
	opts.Columns[table.ColRemarks].Header = "Notes"
	opts.Style.Border = "#abcdef"
	opts.SetRenderDefaults()

	if opts.Format != FormatExcel {
		t.Errorf("Format = %q, want %q", opts.Format, FormatExcel)
	}
	if opts.Columns[table.ColRemarks].Header != "Notes" {
		t.Errorf("custom header lost: %q", opts.Columns[table.ColRemarks].Header)
	}
	if opts.Columns[table.ColNo].Header != "No." || opts.Columns[table.ColNo].Width != 10 {
		t.Errorf("No. column = %+v, want defaults", opts.Columns[table.ColNo])
	}
	if opts.Style.Font != xlsx.DefaultFont {
		t.Errorf("Font = %q, want %q", opts.Style.Font, xlsx.DefaultFont)
	}
	if opts.Style.Border != "ABCDEF" {
		t.Errorf("Border = %q, want ABCDEF", opts.Style.Border)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}

	var empty Options
	empty.SetRenderDefaults()
	if empty.Format != DefaultFormat {
		t.Errorf("default Format = %q, want %q", empty.Format, DefaultFormat)
	}
}

func TestValidateForRender(t *testing.T) {
	tests := []struct {
		name     string
		opts     func() Options
		wantCode sterrors.Code
	}{
		{"defaults", func() Options { return Options{} }, ""},
		{"alias", func() Options { return Options{Format: "md"} }, ""},
		{"bad format", func() Options { return Options{Format: "pdf"} }, sterrors.ErrCodeInvalidFormat},
		{"bad color", func() Options {
			return Options{Style: xlsx.Style{HeaderBackground: "blue"}}
		}, sterrors.ErrCodeInvalidColor},
		{"negative width", func() Options {
			o := Options{}
			o.Columns[table.ColOperator].Width = -1
			return o
		}, sterrors.ErrCodeInvalidWidth},
		{"huge width", func() Options {
			o := Options{}
			o.Columns[table.ColRemarks].Width = 1000
			return o
		}, sterrors.ErrCodeInvalidWidth},
		{"bad font", func() Options {
			return Options{Style: xlsx.Style{Font: "bad\nfont"}}
		}, sterrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts()
			err := opts.ValidateForRender()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateForRender() error: %v", err)
				}
				return
			}
			if !sterrors.Is(err, tt.wantCode) {
				t.Errorf("ValidateForRender() = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	md := Options{Format: FormatMarkdown}
	md.Columns[table.ColNo].Header = "#"
	md.SetRenderDefaults()
	if k := md.ArtifactKeyOpts(); k.Headers != nil || k.Widths != nil || k.Font != "" || k.Colors != nil {
		t.Errorf("markdown key should ignore workbook settings: %+v", k)
	}

	xl := Options{Format: FormatExcel}
	xl.Columns[table.ColNo].Header = "#"
	xl.SetRenderDefaults()
	k := xl.ArtifactKeyOpts()
	if k.Format != FormatExcel {
		t.Errorf("Format = %q", k.Format)
	}
	if len(k.Headers) != table.NumColumns || k.Headers[0] != "#" {
		t.Errorf("Headers = %v", k.Headers)
	}
	if len(k.Widths) != table.NumColumns || k.Widths[8] != 40 {
		t.Errorf("Widths = %v", k.Widths)
	}
	if k.Font != xlsx.DefaultFont || len(k.Colors) != 5 {
		t.Errorf("Font = %q, Colors = %v", k.Font, k.Colors)
	}
}
