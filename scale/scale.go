// Package scale enlarges or shrinks raster images by an integer factor
// through pluggable resampling backends.
//
// A Rescaler decodes one source image, computes the target size and either
// overwrites the source with a Lanczos resampled copy (ResizeInPlace) or
// writes several independently resampled copies next to it (Variants).
package scale

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFactor  = errors.New(`scale factor must be a positive integer`)
	ErrInvalidSize    = errors.New(`invalid image size`)
	ErrNotImage       = errors.New(`not an image`)
	ErrNilImage       = errors.New(`nil image`)
	ErrUnsupported    = errors.New(`unsupported`)
	ErrUnknownResizer = errors.New(`unknown resizer`)
	ErrUnknownFilter  = errors.New(`unknown filter`)
)

// Filter is the interpolation used for resampling.
type Filter uint8

const (
	Nearest Filter = iota + 1
	Lanczos
	SeamCarving // content aware
)

var filterNames = map[Filter]string{
	Nearest:     `nearest`,
	Lanczos:     `lanczos`,
	SeamCarving: `seam`,
}

func (f Filter) String() string {
	if s, ok := filterNames[f]; ok {
		return s
	}
	return `unknown`
}

// ParseFilter is case insensitive.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range filterNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf(`%w: %q`, ErrUnknownFilter, s)
}
