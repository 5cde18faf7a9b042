// Package imaging resamples and sharpens with "github.com/disintegration/imaging".
package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/scale"
)

const Name = `imaging`

func init() { scale.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/disintegration/imaging"
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
	var rf imaging.ResampleFilter
	switch f {
	case scale.Nearest:
		rf = imaging.NearestNeighbor
	case scale.Lanczos:
		rf = imaging.Lanczos
	default:
		return nil, scale.Unsupported(Name, f)
	}
	return imaging.Resize(img, size.X, size.Y, rf), nil
}

// Sharpen adds Amount times the difference to a gaussian blurred copy to
// every color channel whose difference reaches Threshold. Alpha is kept.
// imaging.Sharpen has no amount or threshold, so the mask is built from
// imaging.Blur.
func (r *Resizer) Sharpen(img image.Image, m scale.UnsharpMask) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	src := imaging.Clone(img)
	blurred := imaging.Blur(src, m.Radius)
	dst := image.NewNRGBA(src.Rect)
	thr := int(m.Threshold)
	for i := 0; i+3 < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := int(src.Pix[i+c])
			diff := v - int(blurred.Pix[i+c])
			if diff < thr && -diff < thr {
				dst.Pix[i+c] = uint8(v)
				continue
			}
			dst.Pix[i+c] = clamp(float64(v) + m.Amount*float64(diff))
		}
		dst.Pix[i+3] = src.Pix[i+3]
	}
	return dst, nil
}

func clamp(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
