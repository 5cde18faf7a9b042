package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgscale/internal/config"
	"github.com/srlehn/imgscale/scale"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet(`test`, pflag.ContinueOnError)
	fs.IntP(config.KeyFactor, `f`, scale.DefaultFactor, ``)
	fs.StringP(config.KeyResizer, `r`, `default`, ``)
	fs.Float64(config.KeyAmount, 150, ``)
	return fs
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	c, err := config.Load(newFlags(), ``)
	require.NoError(t, err)
	assert.Equal(t, scale.DefaultFactor, c.Factor)
	assert.Equal(t, `default`, c.Resizer)
	assert.Equal(t, scale.Lanczos, c.Filter)
	assert.Equal(t, scale.DefaultUnsharpMask, c.Mask)
	assert.Empty(t, c.File)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, `imgscale.toml`),
		[]byte("factor = 3\nresizer = \"imaging\"\nthreshold = 7\n"), 0o644))

	c, err := config.Load(newFlags(), ``)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Factor)
	assert.Equal(t, `imaging`, c.Resizer)
	assert.EqualValues(t, 7, c.Mask.Threshold)

	t.Setenv(`IMGSCALE_FACTOR`, `4`)
	c, err = config.Load(newFlags(), ``)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Factor)

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{`--factor`, `2`}))
	c, err = config.Load(fs, ``)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Factor)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := config.Load(newFlags(), filepath.Join(t.TempDir(), `nope.toml`))
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	t.Chdir(t.TempDir())
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{`--factor`, `0`}))
	_, err := config.Load(fs, ``)
	require.Error(t, err)
}

func TestLoadFilter(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(`IMGSCALE_FILTER`, `Seam`)
	c, err := config.Load(newFlags(), ``)
	require.NoError(t, err)
	assert.Equal(t, scale.SeamCarving, c.Filter)

	t.Setenv(`IMGSCALE_FILTER`, `bicubic`)
	_, err = config.Load(newFlags(), ``)
	require.ErrorIs(t, err, scale.ErrUnknownFilter)
}
