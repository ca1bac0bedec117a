package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
)

func TestWriteArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	if err := WriteArtifact(path, []byte("# Spec\n")); err != nil {
		t.Fatalf("WriteArtifact() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("# Spec\n")) {
		t.Errorf("content = %q, want %q", got, "# Spec\n")
	}

	// Overwrite replaces the content and leaves no temp files behind.
	if err := WriteArtifact(path, []byte("# Other\n")); err != nil {
		t.Fatalf("WriteArtifact() overwrite error: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestWriteArtifactMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.xlsx")
	err := WriteArtifact(path, []byte("x"))
	if !sterrors.Is(err, sterrors.ErrCodeIO) {
		t.Errorf("WriteArtifact() code = %v, want %v", sterrors.GetCode(err), sterrors.ErrCodeIO)
	}
}
