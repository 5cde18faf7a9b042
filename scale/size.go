package scale

import (
	"fmt"
	"image"
	"math"

	"github.com/srlehn/imgscale/internal/errors"
)

// maxTargetPixels bounds the area of a target so that a 4 byte per pixel
// buffer stays addressable on 32 bit platforms.
const maxTargetPixels = math.MaxInt32 / 4

// TargetSize multiplies both sides of bounds by factor.
func TargetSize(bounds image.Rectangle, factor int) (image.Point, error) {
	if factor < 1 {
		return image.Point{}, errors.New(fmt.Errorf(`%w: %d`, ErrInvalidFactor, factor))
	}
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return image.Point{}, errors.New(fmt.Errorf(`%w: source %dx%d`, ErrInvalidSize, w, h))
	}
	if w > math.MaxInt32/factor || h > math.MaxInt32/factor ||
		int64(w)*int64(h)*int64(factor)*int64(factor) > maxTargetPixels {
		return image.Point{}, errors.New(fmt.Errorf(`%w: %dx%d times %d is too large`, ErrInvalidSize, w, h, factor))
	}
	return image.Point{X: w * factor, Y: h * factor}, nil
}
