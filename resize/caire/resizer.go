// Seam Carving for Content-Aware Image Resizing
package caire

import (
	"image"
	"image/draw"

	"github.com/esimov/caire"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/scale"
)

const Name = `caire`

func init() { scale.RegisterResizer(Name, &Resizer{}) }

// Resizer inserts or removes low energy seams instead of interpolating.
// Face detection is off, it needs a cascade file.
// The caire processor keeps package level state, calls must not overlap.
type Resizer struct {
	BlurRadius     int // 0 means 1
	SobelThreshold int // 0 means 4
}

var (
	_ scale.Resizer      = (*Resizer)(nil)
	_ scale.FilterLister = (*Resizer)(nil)
)

func (r *Resizer) Name() string { return Name }

func (r *Resizer) Filters() []scale.Filter { return []scale.Filter{scale.SeamCarving} }

// Resize carves the width first and the height second. Each axis gets its
// own processor run with the other dimension left at 0, a single run over
// both axes only lands on the exact size when started from caire's Process.
func (r *Resizer) Resize(img image.Image, size image.Point, f scale.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if f != scale.SeamCarving {
		return nil, scale.Unsupported(Name, f)
	}
	if size.X < 2 || size.Y < 2 {
		return nil, errors.Errorf(`%s: target %dx%d too small for seams`, Name, size.X, size.Y)
	}
	m := toNRGBA(img)
	var err error
	if m.Rect.Dx() != size.X {
		if m, err = r.carve(m, size.X, 0); err != nil {
			return nil, err
		}
	}
	if m.Rect.Dy() != size.Y {
		if m, err = r.carve(m, 0, size.Y); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (r *Resizer) carve(img *image.NRGBA, width, height int) (*image.NRGBA, error) {
	p := &caire.Processor{
		BlurRadius:     1,
		SobelThreshold: 4,
		NewWidth:       width,
		NewHeight:      height,
	}
	if r.BlurRadius > 0 {
		p.BlurRadius = r.BlurRadius
	}
	if r.SobelThreshold > 0 {
		p.SobelThreshold = r.SobelThreshold
	}
	m, err := p.Resize(img)
	if err != nil {
		return nil, errors.New(err)
	}
	if m == nil {
		return nil, errors.New(scale.ErrNilImage)
	}
	return toNRGBA(m), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := img.Bounds()
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
	return m
}
