package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ReadJSON reads the file at path and decodes it into out. A missing file is
// an error: callers load configuration they cannot run without.
func ReadJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}

// WriteJSON writes v as indented JSON via a temp file, then renames it over path.
func WriteJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, append(b, '\n'), mode)
}

// writeFile stages b in a sibling temp file, syncs it to disk and renames it
// over path, so readers see either the old file or the complete new one. The
// temp file is removed on any failure.
func writeFile(path string, b []byte, mode os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "stage %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(b); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err = f.Chmod(mode); err != nil {
		return errors.Wrapf(err, "chmod %s", tmp)
	}
	if err = f.Sync(); err != nil {
		return errors.Wrapf(err, "sync %s", tmp)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}
