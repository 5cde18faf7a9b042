package scale

import (
	"image"
	"image/color"
	"image/draw"
)

// PixelFormat is the class of a pixel buffer. Backends return whatever
// buffer type their library produces, outputs are converted back to the
// class of the source. The class says nothing about precision: only the
// gift backend resamples 16 bit sources in 16 bits, the other libraries
// work in 8 bits and a 16 bit output of theirs has lost its low byte.
type PixelFormat uint8

const (
	Color8 PixelFormat = iota
	Color16
	Gray8
	Gray16
)

func (p PixelFormat) String() string {
	switch p {
	case Color16:
		return `color16`
	case Gray8:
		return `gray8`
	case Gray16:
		return `gray16`
	}
	return `color8`
}

// FormatOf classifies img. Paletted and YCbCr images count as Color8.
func FormatOf(img image.Image) PixelFormat {
	switch img.(type) {
	case *image.Gray:
		return Gray8
	case *image.Gray16:
		return Gray16
	case *image.RGBA64, *image.NRGBA64:
		return Color16
	case *image.RGBA, *image.NRGBA, *image.YCbCr, *image.NYCbCrA, *image.Paletted:
		return Color8
	}
	switch img.ColorModel() {
	case color.GrayModel:
		return Gray8
	case color.Gray16Model:
		return Gray16
	case color.RGBA64Model, color.NRGBA64Model:
		return Color16
	}
	return Color8
}

// ConvertFormat returns img unchanged if it already has the class pf,
// otherwise a copy in the canonical buffer type of pf.
func ConvertFormat(img image.Image, pf PixelFormat) image.Image {
	if img == nil {
		return nil
	}
	var dst draw.Image
	b := img.Bounds()
	switch pf {
	case Gray8:
		if _, ok := img.(*image.Gray); ok {
			return img
		}
		dst = image.NewGray(b)
	case Gray16:
		if _, ok := img.(*image.Gray16); ok {
			return img
		}
		dst = image.NewGray16(b)
	case Color16:
		switch img.(type) {
		case *image.RGBA64, *image.NRGBA64:
			return img
		}
		dst = image.NewNRGBA64(b)
	default:
		switch img.(type) {
		case *image.RGBA, *image.NRGBA:
			return img
		}
		dst = image.NewNRGBA(b)
	}
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
