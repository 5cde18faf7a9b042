package fileutil_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgscale/internal/fileutil"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `out.bin`)

	n, err := fileutil.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write([]byte(`hello`))
		return err
	})
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `hello`, string(b))
	assertOnlyFiles(t, dir, `out.bin`)
}

func TestWriteFileAtomicFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `out.bin`)
	require.NoError(t, os.WriteFile(path, []byte(`original`), 0o600))

	errBoom := errors.New(`boom`)
	_, err := fileutil.WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte(`partial`))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `original`, string(b))
	assertOnlyFiles(t, dir, `out.bin`)
}

func TestWriteFileAtomicKeepsPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `out.bin`)
	require.NoError(t, os.WriteFile(path, []byte(`original`), 0o600))

	_, err := fileutil.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write([]byte(`new`))
		return err
	})
	require.NoError(t, err)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), `missing`, `out.bin`)
	_, err := fileutil.WriteFileAtomic(path, func(w io.Writer) error { return nil })
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func assertOnlyFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	assert.ElementsMatch(t, names, got)
}
