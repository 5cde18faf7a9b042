package imaging_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgscale/internal/testutil"
	"github.com/srlehn/imgscale/resize/imaging"
	"github.com/srlehn/imgscale/scale"
)

func TestResizer(t *testing.T) {
	testutil.CheckResizer(t, &imaging.Resizer{}, testutil.ResizerCase{
		Filters:      []scale.Filter{scale.Nearest, scale.Lanczos},
		ExactNearest: true,
		Sharpens:     true,
	})
}

func TestSharpenThreshold(t *testing.T) {
	// a step of 2 levels stays below the threshold of 3
	m := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := uint8(100)
			if x >= 4 {
				v = 102
			}
			m.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	rsz := &imaging.Resizer{}
	out, err := rsz.Sharpen(m, scale.DefaultUnsharpMask)
	require.NoError(t, err)
	assert.True(t, testutil.SameRGBA(m, out))

	noThreshold := scale.DefaultUnsharpMask
	noThreshold.Threshold = 0
	out, err = rsz.Sharpen(m, noThreshold)
	require.NoError(t, err)
	assert.False(t, testutil.SameRGBA(m, out))
}

func TestSharpenKeepsAlpha(t *testing.T) {
	m := testutil.Pattern(8, 8)
	m.Pix[3] = 17
	out, err := (&imaging.Resizer{}).Sharpen(m, scale.DefaultUnsharpMask)
	require.NoError(t, err)
	nrgba, ok := out.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, uint8(17), nrgba.Pix[3])
	assert.Equal(t, uint8(255), nrgba.Pix[7])
}
