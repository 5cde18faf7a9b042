// Package imgscale enlarges image files by an integer factor.
//
//	imgscale.ResizeInPlace(`wic.png`, 5) // wic.png is replaced by a 5x Lanczos upscale
//	imgscale.Variants(`wic.png`, 5)      // writes wic_nearest.png and wic_sharpened.png
package imgscale

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/srlehn/imgscale/internal/encoder/encmulti"
	"github.com/srlehn/imgscale/resize/rdefault"
	"github.com/srlehn/imgscale/scale"
)

var (
	// chosen defaults
	resizer scale.Resizer      = rdefault.New()
	encoder scale.ImageEncoder = &encmulti.MultiEncoder{}
	report  io.Writer          = os.Stdout
)

const (
	DefaultSource = `wic.png`
	DefaultFactor = scale.DefaultFactor
)

var (
	DefaultConfig = scale.Options{
		scale.SetResizer(resizer),
		scale.SetEncoder(encoder),
		scale.SetReport(report),
		scale.SetFactor(DefaultFactor),
	}
)

// NewRescaler applies opts on top of DefaultConfig.
func NewRescaler(opts ...scale.Option) (*scale.Rescaler, error) {
	return scale.NewRescaler(append([]scale.Option{DefaultConfig}, opts...)...)
}

// ResizeInPlace overwrites path with a Lanczos upscale by factor.
func ResizeInPlace(path string, factor int) (scale.Result, error) {
	r, err := NewRescaler(scale.SetFactor(factor))
	if err != nil {
		return scale.Result{}, err
	}
	return r.ResizeInPlace(path)
}

// Variants writes the nearest neighbor and the sharpened Lanczos upscale
// of path next to it.
func Variants(path string, factor int) ([]scale.Result, error) {
	r, err := NewRescaler(scale.SetFactor(factor))
	if err != nil {
		return nil, err
	}
	return r.Variants(path)
}
