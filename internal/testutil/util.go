// Package testutil generates image fixtures for tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Pattern returns an opaque image with hard edges: 4x4 pixel checker
// squares tinted by position.
func Pattern(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: uint8(x * 255 / max(w-1, 1)), G: uint8(y * 255 / max(h-1, 1)), B: 40, A: 255}
			if (x/4+y/4)%2 == 0 {
				c.B = 220
			}
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

// GrayPattern is the gray counterpart of Pattern.
func GrayPattern(w, h int) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(30)
			if (x/4+y/4)%2 == 0 {
				v = 200
			}
			m.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return m
}

// WritePNG encodes img to dir/name and returns the path.
func WritePNG(t testing.TB, dir, name string, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

// ReadPNG decodes the png at path.
func ReadPNG(t testing.TB, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

// SameRGBA reports whether a and b have the same bounds and 8 bit colors.
func SameRGBA(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !sameColor(a.At(x, y), b.At(x, y)) {
				return false
			}
		}
	}
	return true
}

func sameColor(a, b color.Color) bool {
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)
	return ca == cb
}

// NearestExact reports the first pixel of dst that differs from the source
// pixel at its block origin for an integer factor, ok is true if there is none.
func NearestExact(src, dst image.Image, factor int) (p image.Point, ok bool) {
	sb, db := src.Bounds(), dst.Bounds()
	for y := 0; y < db.Dy(); y++ {
		for x := 0; x < db.Dx(); x++ {
			s := src.At(sb.Min.X+x/factor, sb.Min.Y+y/factor)
			d := dst.At(db.Min.X+x, db.Min.Y+y)
			if !sameColor(s, d) {
				return image.Point{X: x, Y: y}, false
			}
		}
	}
	return image.Point{}, true
}
