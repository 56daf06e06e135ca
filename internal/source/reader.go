// Package source reads the file named by a Config.
package source

import (
	"os"

	"minigrep/internal/errors"

	"github.com/spf13/afero"
)

// Reader reads whole files from a filesystem.
type Reader struct {
	fs afero.Fs
}

// NewReader creates a Reader over fs.
func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// ReadString blocks until the whole file at path has been read and returns
// its contents. Failures come back as *errors.FileError carrying the path.
func (r *Reader) ReadString(path string) (string, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", classify(path, err)
	}
	return string(data), nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return errors.NewFileError("file not found", path, errors.FileNotFound, err)
	case os.IsPermission(err):
		return errors.NewFileError("file access denied", path, errors.FileAccessDenied, err)
	default:
		return errors.NewFileError("cannot read file", path, errors.FileReadFailed, err)
	}
}
