package rez

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/scale"
)

const Name = `rez`

// lanczosTaps is the number of lobes of the Lanczos window.
const lanczosTaps = 3

func init() { scale.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/bamiaux/rez". rez has no nearest neighbor
// filter and only converts between buffers of the same type, sources
// other than *image.Gray are resampled as *image.RGBA.
type Resizer struct{}

var (
	_ scale.Resizer      = (*Resizer)(nil)
	_ scale.FilterLister = (*Resizer)(nil)
)

func (r *Resizer) Name() string { return Name }

func (r *Resizer) Filters() []scale.Filter { return []scale.Filter{scale.Lanczos} }

func (r *Resizer) Resize(img image.Image, size image.Point, f scale.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if f != scale.Lanczos {
		return nil, scale.Unsupported(Name, f)
	}
	rect := image.Rect(0, 0, size.X, size.Y)
	var src, dst image.Image
	switch it := img.(type) {
	case *image.Gray:
		src, dst = it, image.NewGray(rect)
	case *image.RGBA:
		src, dst = it, image.NewRGBA(rect)
	default:
		b := img.Bounds()
		m := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
		src, dst = m, image.NewRGBA(rect)
	}
	if err := rez.Convert(dst, src, rez.NewLanczosFilter(lanczosTaps)); err != nil {
		return nil, errors.New(err)
	}
	return dst, nil
}
