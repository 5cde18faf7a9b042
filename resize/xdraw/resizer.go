// Package xdraw provides a resizer implementation using golang.org/x/image/draw.
// x/image/draw has no Lanczos scaler, a three lobed Lanczos kernel is
// provided as a draw.Kernel.
package xdraw

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/scale"
)

const Name = `xdraw`

func init() { scale.RegisterResizer(Name, New()) }

// Lanczos3 is sinc(t)·sinc(t/3) on [0, 3).
var Lanczos3 = &draw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		if t == 0 {
			return 1
		}
		if t >= 3 {
			return 0
		}
		return sinc(t) * sinc(t/3)
	},
}

func sinc(x float64) float64 {
	x *= math.Pi
	return math.Sin(x) / x
}

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	nearest draw.Scaler
	lanczos draw.Scaler
}

var (
	_ scale.Resizer      = (*resizer)(nil)
	_ scale.FilterLister = (*resizer)(nil)
)

// New creates a resizer with pixel exact nearest neighbor and Lanczos3 scaling.
func New() scale.Resizer {
	return &resizer{nearest: draw.NearestNeighbor, lanczos: Lanczos3}
}

func (r *resizer) Name() string { return Name }

func (r *resizer) Filters() []scale.Filter { return []scale.Filter{scale.Nearest, scale.Lanczos} }

// Resize scales an image to the target size using the configured scaler.
func (r *resizer) Resize(img image.Image, size image.Point, f scale.Filter) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	var s draw.Scaler
	switch f {
	case scale.Nearest:
		s = r.nearest
	case scale.Lanczos:
		s = r.lanczos
	default:
		return nil, scale.Unsupported(Name, f)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	s.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
