package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"

	got := Template()
	for _, want := range []string{"{{.Name}} version v1.2.3", "commit: abc123", "built: 2026-01-02"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, missing %q", got, want)
		}
	}
	if !strings.HasPrefix(String(), "version: v1.2.3\n") {
		t.Errorf("String() = %q", String())
	}
}
