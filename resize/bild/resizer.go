// Package bild resamples and sharpens with "github.com/anthonynsimon/bild".
package bild

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/scale"
)

const Name = `bild`

func init() { scale.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/anthonynsimon/bild/transform"
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
	var rf transform.ResampleFilter
	switch f {
	case scale.Nearest:
		rf = transform.NearestNeighbor
	case scale.Lanczos:
		rf = transform.Lanczos
	default:
		return nil, scale.Unsupported(Name, f)
	}
	return transform.Resize(img, size.X, size.Y, rf), nil
}

// Sharpen ignores the threshold, bild's unsharp mask sharpens every pixel.
func (r *Resizer) Sharpen(img image.Image, m scale.UnsharpMask) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return effect.UnsharpMask(img, m.Radius, m.Amount), nil
}
