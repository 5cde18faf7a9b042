// Package rdefault chains resizers, the first one supporting a filter wins.
package rdefault

import (
	"image"
	"slices"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/resize/caire"
	"github.com/srlehn/imgscale/resize/gift"
	"github.com/srlehn/imgscale/resize/imaging"
	"github.com/srlehn/imgscale/resize/xdraw"
	"github.com/srlehn/imgscale/scale"
)

const Name = `default`

func init() { scale.RegisterResizer(Name, New()) }

type Resizer struct {
	name  string
	chain []scale.Resizer
}

var (
	_ scale.Resizer      = (*Resizer)(nil)
	_ scale.Sharpener    = (*Resizer)(nil)
	_ scale.FilterLister = (*Resizer)(nil)
)

// New returns a chain of rs or, without arguments, gift, imaging, xdraw and caire.
func New(rs ...scale.Resizer) *Resizer {
	if len(rs) == 0 {
		rs = []scale.Resizer{&gift.Resizer{}, &imaging.Resizer{}, xdraw.New(), &caire.Resizer{}}
	}
	return &Resizer{chain: rs}
}

// WithFallback puts rsz in front of the default chain. Filters rsz lacks
// and sharpening, if rsz can't sharpen, are served by the default chain.
// The result carries the name of rsz.
func WithFallback(rsz scale.Resizer) *Resizer {
	if r, ok := rsz.(*Resizer); ok {
		return r
	}
	return &Resizer{
		name:  scale.ResizerName(rsz),
		chain: []scale.Resizer{rsz, New()},
	}
}

func (r *Resizer) Name() string {
	if r == nil || len(r.name) == 0 {
		return Name
	}
	return r.name
}

func (r *Resizer) Filters() []scale.Filter {
	var fs []scale.Filter
	for _, rsz := range r.chain {
		fl, ok := rsz.(scale.FilterLister)
		if !ok {
			continue
		}
		for _, f := range fl.Filters() {
			if !slices.Contains(fs, f) {
				fs = append(fs, f)
			}
		}
	}
	return fs
}

// Resize falls through to the next resizer only if a resizer doesn't
// support the filter. Other errors are returned.
func (r *Resizer) Resize(img image.Image, size image.Point, f scale.Filter) (image.Image, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	for _, rsz := range r.chain {
		if rsz == nil || !scale.SupportsFilter(rsz, f) {
			continue
		}
		m, err := rsz.Resize(img, size, f)
		if errors.Is(err, scale.ErrUnsupported) {
			continue
		}
		return m, err
	}
	return nil, scale.Unsupported(r.Name(), f)
}

// Sharpen uses the first resizer of the chain that can sharpen.
func (r *Resizer) Sharpen(img image.Image, m scale.UnsharpMask) (image.Image, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	for _, rsz := range r.chain {
		if sh, ok := rsz.(scale.Sharpener); ok {
			return sh.Sharpen(img, m)
		}
	}
	return nil, errors.Wrap(scale.ErrUnsupported, 0)
}
