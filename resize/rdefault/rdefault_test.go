package rdefault_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgscale/internal/testutil"
	"github.com/srlehn/imgscale/resize/nfnt"
	"github.com/srlehn/imgscale/resize/rdefault"
	"github.com/srlehn/imgscale/resize/rez"
	"github.com/srlehn/imgscale/scale"
)

func TestDefaultChain(t *testing.T) {
	rsz := rdefault.New()
	assert.ElementsMatch(t, []scale.Filter{scale.Nearest, scale.Lanczos, scale.SeamCarving}, rsz.Filters())

	src := testutil.Pattern(20, 16)
	m, err := rsz.Resize(src, image.Pt(100, 80), scale.Nearest)
	require.NoError(t, err)
	p, ok := testutil.NearestExact(src, m, 5)
	assert.True(t, ok, `nearest neighbor blends at %v`, p)

	m, err = rsz.Resize(src, image.Pt(100, 80), scale.Lanczos)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(100, 80), m.Bounds().Size())

	sharp, err := rsz.Sharpen(m, scale.DefaultUnsharpMask)
	require.NoError(t, err)
	assert.False(t, testutil.SameRGBA(testutil.ConvertNRGBA(m), testutil.ConvertNRGBA(sharp)))
}

func TestChainFallsThrough(t *testing.T) {
	rsz := rdefault.New(&rez.Resizer{}, &nfnt.Resizer{})
	m, err := rsz.Resize(testutil.Pattern(4, 4), image.Pt(8, 8), scale.Nearest)
	require.NoError(t, err, `rez has no nearest neighbor, nfnt has`)
	assert.Equal(t, image.Pt(8, 8), m.Bounds().Size())

	_, err = rsz.Resize(testutil.Pattern(4, 4), image.Pt(8, 8), scale.SeamCarving)
	assert.ErrorIs(t, err, scale.ErrUnsupported)

	_, err = rsz.Sharpen(testutil.Pattern(4, 4), scale.DefaultUnsharpMask)
	assert.ErrorIs(t, err, scale.ErrUnsupported)
}

func TestRegistry(t *testing.T) {
	names := scale.ResizerNames()
	for _, name := range []string{rdefault.Name, `gift`, `imaging`, `xdraw`, `caire`} {
		assert.Contains(t, names, name)
	}
}

func TestWithFallback(t *testing.T) {
	src := testutil.Pattern(10, 8)
	for _, rsz := range []scale.Resizer{&nfnt.Resizer{}, &rez.Resizer{}} {
		name := scale.ResizerName(rsz)
		t.Run(name, func(t *testing.T) {
			fb := rdefault.WithFallback(rsz)
			assert.Equal(t, name, fb.Name())
			assert.ElementsMatch(t, []scale.Filter{scale.Nearest, scale.Lanczos, scale.SeamCarving}, fb.Filters())

			m, err := fb.Resize(src, image.Pt(50, 40), scale.Nearest)
			require.NoError(t, err)
			p, ok := testutil.NearestExact(src, m, 5)
			assert.True(t, ok, `nearest neighbor blends at %v`, p)

			up, err := fb.Resize(src, image.Pt(50, 40), scale.Lanczos)
			require.NoError(t, err)
			sharp, err := fb.Sharpen(up, scale.DefaultUnsharpMask)
			require.NoError(t, err)
			assert.False(t, testutil.SameRGBA(testutil.ConvertNRGBA(up), testutil.ConvertNRGBA(sharp)))
		})
	}

	chain := rdefault.New()
	assert.Same(t, chain, rdefault.WithFallback(chain))
}
