package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/pipeline"
	"github.com/matzehuels/testspec/pkg/render/table"
)

const fullConfig = `
format = "xlsx"
font = "Meiryo"

[columns.primary]
header = "Feature"
width = 25

[columns.remarks-item]
header = "Notes"

[colors]
header_text = "#ffffff"
border = "000000"

[cache]
disabled = true
redis_url = "redis://localhost:6379/0"
`

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("missing file should give empty config (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(fullConfig), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := &Config{
		Format: "xlsx",
		Font:   "Meiryo",
		Columns: map[string]table.ColumnConfig{
			"primary":      {Header: "Feature", Width: 25},
			"remarks-item": {Header: "Notes"},
		},
		Colors: Colors{HeaderText: "#ffffff", Border: "000000"},
		Cache:  CacheConfig{Disabled: true, RedisURL: "redis://localhost:6379/0"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code sterrors.Code
	}{
		{"syntax", "format = ", sterrors.ErrCodeInvalidInput},
		{"unknown key", "colour = \"red\"", sterrors.ErrCodeInvalidInput},
		{"unknown column", "[columns.owner]\nheader = \"x\"", sterrors.ErrCodeInvalidInput},
		{"bad format", "format = \"pdf\"", sterrors.ErrCodeInvalidFormat},
		{"bad width", "[columns.no]\nwidth = -3", sterrors.ErrCodeInvalidWidth},
		{"bad color", "[colors]\nborder = \"blue\"", sterrors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "test.toml")
			if !sterrors.Is(err, tt.code) {
				t.Errorf("Parse() = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestApply(t *testing.T) {
	cfg, err := Parse([]byte(fullConfig), "test.toml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	var opts pipeline.Options
	opts.Columns[table.ColNo].Header = "#"
	cfg.Apply(&opts)

	if opts.Format != "xlsx" {
		t.Errorf("Format = %q", opts.Format)
	}
	if opts.Columns[table.ColPrimary] != (table.ColumnConfig{Header: "Feature", Width: 25}) {
		t.Errorf("primary column = %+v", opts.Columns[table.ColPrimary])
	}
	if opts.Columns[table.ColRemarks].Header != "Notes" {
		t.Errorf("remarks header = %q", opts.Columns[table.ColRemarks].Header)
	}
	if opts.Columns[table.ColNo].Header != "#" {
		t.Error("Apply should keep values the file does not set")
	}
	if opts.Style.Font != "Meiryo" || opts.Style.HeaderText != "#ffffff" || opts.Style.BodyText != "" {
		t.Errorf("Style = %+v", opts.Style)
	}

	if err := opts.ValidateForRender(); err != nil {
		t.Fatalf("applied options should validate: %v", err)
	}
	if opts.Format != pipeline.FormatExcel || opts.Style.HeaderText != "FFFFFF" {
		t.Errorf("after defaults: Format = %q, HeaderText = %q", opts.Format, opts.Style.HeaderText)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "testspec", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
