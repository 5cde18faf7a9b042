// Package fileutil writes output files so that a failed write never leaves
// a truncated file behind.
package fileutil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"

	"github.com/srlehn/imgscale/internal/errors"
)

const defaultPerm fs.FileMode = 0o644

// WriteFileAtomic streams write into a temp file in the directory of path
// and renames it to path on success. An existing file keeps its
// permissions. The number of bytes written is returned.
func WriteFileAtomic(path string, write func(w io.Writer) error) (int64, error) {
	if write == nil {
		return 0, errors.NilParam()
	}
	perm := defaultPerm
	if fi, err := os.Stat(path); err == nil {
		if !fi.Mode().IsRegular() {
			return 0, errors.New(`not a regular file: ` + path)
		}
		perm = fi.Mode().Perm()
	}
	id, err := uuid.NewV4()
	if err != nil {
		return 0, errors.New(err)
	}
	tmp := filepath.Join(filepath.Dir(path), `.`+filepath.Base(path)+`.`+id.String()+`.tmp`)
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return 0, errors.New(err)
	}
	cw := &countingWriter{w: f}
	errWrite := write(cw)
	errClose := f.Close()
	if err := errors.Join(errWrite, errClose); err != nil {
		_ = os.Remove(tmp)
		return 0, err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, errors.New(err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
