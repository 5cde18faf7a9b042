package scale

import (
	"fmt"
	"image"
	"io"
	"slices"
	"sync"

	"github.com/srlehn/imgscale/internal/errors"
)

// Resizer resamples img to size with the interpolation f.
// Implementations return an error wrapping ErrUnsupported for filters they lack.
type Resizer interface {
	Resize(img image.Image, size image.Point, f Filter) (image.Image, error)
}

// Sharpener applies an unsharp mask.
type Sharpener interface {
	Sharpen(img image.Image, m UnsharpMask) (image.Image, error)
}

// FilterLister is implemented by resizers that can name their filters.
type FilterLister interface {
	Filters() []Filter
}

// ResizerName returns the name a resizer reports about itself, or its type.
func ResizerName(rsz Resizer) string {
	if n, ok := rsz.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf(`%T`, rsz)
}

// ImageEncoder encodes img in the format named by the extension of fileExt.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image, fileExt string) error
}

// UnsharpMask parameters. Radius is the gaussian sigma in pixels,
// Amount the strength as a fraction (1.5 is 150%), Threshold the minimum
// difference in 8 bit levels between a pixel and its blurred value for
// the pixel to be sharpened.
type UnsharpMask struct {
	Radius    float64
	Amount    float64
	Threshold uint8
}

// DefaultUnsharpMask counteracts the softening of a Lanczos upscale.
var DefaultUnsharpMask = UnsharpMask{Radius: 2, Amount: 1.5, Threshold: 3}

func (m UnsharpMask) Validate() error {
	if m.Radius <= 0 {
		return errors.Errorf(`unsharp mask: radius must be positive, got %v`, m.Radius)
	}
	if m.Amount < 0 {
		return errors.Errorf(`unsharp mask: amount must not be negative, got %v`, m.Amount)
	}
	return nil
}

// Unsupported returns the error for a filter the named backend can't do.
func Unsupported(backend string, f Filter) error {
	return errors.Wrap(fmt.Errorf(`%w: %s can't resample with filter %s`, ErrUnsupported, backend, f), 1)
}

// SupportsFilter reports whether rsz lists f. Resizers that don't list
// their filters are assumed to support f.
func SupportsFilter(rsz Resizer, f Filter) bool {
	fl, ok := rsz.(FilterLister)
	if !ok {
		return true
	}
	return slices.Contains(fl.Filters(), f)
}

var (
	resizersMu         sync.RWMutex
	resizersRegistered = make(map[string]Resizer)
)

// RegisterResizer makes a backend available by name. It is meant to be
// called from init functions. Registering a name twice panics.
func RegisterResizer(name string, rsz Resizer) {
	if rsz == nil {
		panic(`scale: RegisterResizer with nil resizer ` + name)
	}
	resizersMu.Lock()
	defer resizersMu.Unlock()
	if _, dup := resizersRegistered[name]; dup {
		panic(`scale: RegisterResizer called twice for ` + name)
	}
	resizersRegistered[name] = rsz
}

// ResizerByName returns a registered backend.
func ResizerByName(name string) (Resizer, error) {
	resizersMu.RLock()
	defer resizersMu.RUnlock()
	rsz, ok := resizersRegistered[name]
	if !ok {
		return nil, errors.New(fmt.Errorf(`%w: %q`, ErrUnknownResizer, name))
	}
	return rsz, nil
}

// ResizerNames returns the sorted names of the registered backends.
func ResizerNames() []string {
	resizersMu.RLock()
	defer resizersMu.RUnlock()
	names := make([]string, 0, len(resizersRegistered))
	for name := range resizersRegistered {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
