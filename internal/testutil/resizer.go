package testutil

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgscale/scale"
)

// ResizerCase configures CheckResizer.
type ResizerCase struct {
	Filters      []scale.Filter // filters the resizer must support
	ExactNearest bool           // nearest neighbor copies block origins
	Sharpens     bool
}

// CheckResizer runs the behavior every backend shares: sizes for up and
// downscaling, ErrUnsupported for other filters, pixel exact nearest
// neighbor and a visible unsharp mask where claimed.
func CheckResizer(t *testing.T, rsz scale.Resizer, c ResizerCase) {
	t.Helper()
	src := Pattern(20, 16)

	if fl, ok := rsz.(scale.FilterLister); ok {
		assert.ElementsMatch(t, c.Filters, fl.Filters())
	}

	for _, f := range c.Filters {
		t.Run(f.String(), func(t *testing.T) {
			for _, size := range []image.Point{{X: 100, Y: 80}, {X: 20, Y: 16}, {X: 10, Y: 8}} {
				m, err := rsz.Resize(src, size, f)
				require.NoError(t, err)
				require.NotNil(t, m)
				assert.Equal(t, size, m.Bounds().Size(), `target %v`, size)
			}
		})
	}

	for _, f := range []scale.Filter{scale.Nearest, scale.Lanczos, scale.SeamCarving} {
		supported := false
		for _, g := range c.Filters {
			supported = supported || f == g
		}
		if supported {
			continue
		}
		_, err := rsz.Resize(src, image.Pt(40, 32), f)
		assert.ErrorIs(t, err, scale.ErrUnsupported, f.String())
	}

	_, err := rsz.Resize(nil, image.Pt(4, 4), c.Filters[0])
	assert.Error(t, err, `nil image`)

	if c.ExactNearest {
		m, err := rsz.Resize(src, image.Pt(100, 80), scale.Nearest)
		require.NoError(t, err)
		p, ok := NearestExact(src, m, 5)
		assert.True(t, ok, `nearest neighbor blends at %v`, p)
	}

	sh, ok := rsz.(scale.Sharpener)
	assert.Equal(t, c.Sharpens, ok, `sharpener`)
	if !ok {
		return
	}
	up, err := rsz.Resize(src, image.Pt(100, 80), scale.Lanczos)
	require.NoError(t, err)
	sharp, err := sh.Sharpen(up, scale.DefaultUnsharpMask)
	require.NoError(t, err)
	assert.Equal(t, up.Bounds().Size(), sharp.Bounds().Size())
	assert.False(t, SameRGBA(ConvertNRGBA(up), ConvertNRGBA(sharp)), `unsharp mask without effect`)

	_, err = sh.Sharpen(up, scale.UnsharpMask{})
	assert.Error(t, err, `invalid mask`)
}

// ConvertNRGBA copies img into an NRGBA buffer anchored at the origin.
func ConvertNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			m.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return m
}
