package io

import (
	"os"
	"path/filepath"

	sterrors "github.com/matzehuels/testspec/pkg/errors"
)

// WriteArtifact writes data to path atomically.
//
// The bytes go to a temporary file next to path, which is synced and renamed
// over the destination. On any failure the temporary file is removed and the
// destination is left untouched. Errors carry [sterrors.ErrCodeIO].
func WriteArtifact(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return sterrors.Wrap(sterrors.ErrCodeIO, err, "create %s", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return sterrors.Wrap(sterrors.ErrCodeIO, err, "write %s", path)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return sterrors.Wrap(sterrors.ErrCodeIO, err, "sync %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return sterrors.Wrap(sterrors.ErrCodeIO, err, "close %s", path)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return sterrors.Wrap(sterrors.ErrCodeIO, err, "chmod %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return sterrors.Wrap(sterrors.ErrCodeIO, err, "rename %s", path)
	}
	return nil
}
