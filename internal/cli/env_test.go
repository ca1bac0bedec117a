package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestEnvName(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"format", "TESTSPEC_FORMAT"},
		{"no-column", "TESTSPEC_NO_COLUMN"},
		{"header-bg-color", "TESTSPEC_HEADER_BG_COLOR"},
	}
	for _, tt := range tests {
		if got := envName(tt.flag); got != tt.want {
			t.Errorf("envName(%q) = %q, want %q", tt.flag, got, tt.want)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	format := fs.String("format", "", "")
	font := fs.String("font", "", "")
	width := fs.Float64("no-width", 0, "")
	if err := fs.Parse([]string{"--font", "Meiryo"}); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TESTSPEC_FORMAT", "excel")
	t.Setenv("TESTSPEC_FONT", "Arial")
	t.Setenv("TESTSPEC_NO_WIDTH", "12")

	if err := applyEnv(fs); err != nil {
		t.Fatalf("applyEnv() error: %v", err)
	}
	if *format != "excel" {
		t.Errorf("format = %q, want excel from env", *format)
	}
	if *font != "Meiryo" {
		t.Errorf("font = %q, command line should win over env", *font)
	}
	if *width != 12 {
		t.Errorf("no-width = %v, want 12", *width)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64("no-width", 0, "")
	t.Setenv("TESTSPEC_NO_WIDTH", "wide")

	if err := applyEnv(fs); err == nil {
		t.Error("non-numeric width should fail")
	}
}
