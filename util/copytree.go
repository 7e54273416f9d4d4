package util

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFileFrom copies one file out of an fs.FS to dst, overwriting any
// existing file.
func WriteFileFrom(src fs.FS, name, dst string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return errors.Wrapf(err, "reading bundled file %s", name)
	}
	if err := os.WriteFile(dst, data, 0666); err != nil {
		return errors.Wrapf(err, "writing %s", dst)
	}
	return nil
}

// CopyTree recursively copies the contents of src to the directory dst.
// The destination must not exist; CopyTree does not merge into or overwrite
// an existing tree.
func CopyTree(src fs.FS, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return errors.Errorf("destination directory %s already exists", dst)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "stat %s", dst)
	}
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0777)
		}
		return WriteFileFrom(src, path, target)
	})
}
