// Package gift resamples and sharpens with "github.com/disintegration/gift".
package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/scale"
)

const Name = `gift`

func init() { scale.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/disintegration/gift"
type Resizer struct{}

var (
	_ scale.Resizer      = (*Resizer)(nil)
	_ scale.Sharpener    = (*Resizer)(nil)
	_ scale.FilterLister = (*Resizer)(nil)
)

func (r *Resizer) Name() string { return Name }

func (r *Resizer) Filters() []scale.Filter { return []scale.Filter{scale.Nearest, scale.Lanczos} }

func (r *Resizer) Resize(img image.Image, size image.Point, f scale.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	var rs gift.Resampling
	switch f {
	case scale.Nearest:
		rs = gift.NearestNeighborResampling
	case scale.Lanczos:
		rs = gift.LanczosResampling
	default:
		return nil, scale.Unsupported(Name, f)
	}
	return apply(img, gift.Resize(size.X, size.Y, rs)), nil
}

// Sharpen uses the gift unsharp mask, which takes the threshold as a
// fraction of the full intensity range.
func (r *Resizer) Sharpen(img image.Image, m scale.UnsharpMask) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	flt := gift.UnsharpMask(float32(m.Radius), float32(m.Amount), float32(m.Threshold)/255)
	return apply(img, flt), nil
}

// apply keeps 16 bit sources in a 16 bit buffer, gift computes in float32.
func apply(img image.Image, filters ...gift.Filter) image.Image {
	g := gift.New(filters...)
	b := g.Bounds(img.Bounds())
	switch scale.FormatOf(img) {
	case scale.Color16, scale.Gray16:
		m := image.NewNRGBA64(b)
		g.Draw(m, img)
		return m
	}
	m := image.NewNRGBA(b)
	g.Draw(m, img)
	return m
}
