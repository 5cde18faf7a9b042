package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/scale"
)

const Name = `nfnt`

func init() { scale.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var (
	_ scale.Resizer      = (*Resizer)(nil)
	_ scale.FilterLister = (*Resizer)(nil)
)

func (r *Resizer) Name() string { return Name }

func (r *Resizer) Filters() []scale.Filter { return []scale.Filter{scale.Nearest, scale.Lanczos} }

func (r *Resizer) Resize(img image.Image, size image.Point, f scale.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	var interp resize.InterpolationFunction
	switch f {
	case scale.Nearest:
		interp = resize.NearestNeighbor
	case scale.Lanczos:
		interp = resize.Lanczos3
	default:
		return nil, scale.Unsupported(Name, f)
	}
	return resize.Resize(uint(size.X), uint(size.Y), img, interp), nil
}
