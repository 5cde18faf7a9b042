package scale

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/internal/fileutil"
	"github.com/srlehn/imgscale/internal/logx"
)

// DefaultFactor is used when no factor option is given.
const DefaultFactor = 5

// Rescaler resizes image files by an integer factor.
// It holds no state between calls.
type Rescaler struct {
	resizer   Resizer
	sharpener Sharpener
	encoder   ImageEncoder
	filter    Filter
	factor    int
	report    io.Writer
	logger    *slog.Logger
}

var _ logx.LoggerProvider = (*Rescaler)(nil)

// Result describes one written file.
type Result struct {
	Name   string // variant name, empty for in place resizes
	Path   string
	Size   image.Point
	Format PixelFormat
	Bytes  int64
}

func NewRescaler(opts ...Option) (*Rescaler, error) {
	r := &Rescaler{
		filter: Lanczos,
		factor: DefaultFactor,
		report: io.Discard,
	}
	if err := r.SetOptions(opts...); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rescaler) Logger() *slog.Logger {
	if r == nil {
		return nil
	}
	return r.logger
}

func (r *Rescaler) Factor() int { return r.factor }

// Filter is the interpolation ResizeInPlace uses.
func (r *Rescaler) Filter() Filter { return r.filter }

// ResizeInPlace replaces the image file at path with a copy resampled by
// the factor, Lanczos unless SetFilter chose another filter. No backup is
// kept. The file is only replaced once the new content has been encoded
// completely.
func (r *Rescaler) ResizeInPlace(path string) (Result, error) {
	if err := r.check(); err != nil {
		return Result{}, err
	}
	if !SupportsFilter(r.resizer, r.filter) {
		return Result{}, Unsupported(ResizerName(r.resizer), r.filter)
	}
	src, size, err := r.load(path)
	if err != nil {
		return Result{}, err
	}
	resized, err := r.resample(src, size, r.filter)
	if err != nil {
		return Result{}, err
	}
	res, err := r.write(path, ConvertFormat(resized, FormatOf(src)))
	if err != nil {
		return Result{}, err
	}
	r.reportf("resized to: %dx%d\n", res.Size.X, res.Size.Y)
	r.reportf("saved successfully\n")
	return res, nil
}

// Variants writes one resampled copy of the image at path per variant.
// Every copy is derived from the same decoded source, the source file is
// never written. Without variants, DefaultVariants(path) are produced.
func (r *Rescaler) Variants(path string, variants ...Variant) ([]Result, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		variants = DefaultVariants(path)
	}
	if err := r.checkVariants(path, variants); err != nil {
		return nil, err
	}
	src, size, err := r.load(path)
	if err != nil {
		return nil, err
	}
	pf := FormatOf(src)
	results := make([]Result, 0, len(variants))
	for _, v := range variants {
		img, err := r.resample(src, size, v.Filter)
		if err != nil {
			return results, err
		}
		if v.Sharpen != nil {
			img, err = r.sharpen(img, *v.Sharpen)
			if err != nil {
				return results, err
			}
		}
		res, err := r.write(v.Path, ConvertFormat(img, pf))
		if err != nil {
			return results, err
		}
		res.Name = v.Name
		r.reportf("saved %s: %dx%d\n", v.Path, res.Size.X, res.Size.Y)
		results = append(results, res)
	}
	return results, nil
}

func (r *Rescaler) check() error {
	if r == nil {
		return errors.NilReceiver()
	}
	if r.resizer == nil || r.encoder == nil {
		return errors.New(`rescaler without resizer or encoder`)
	}
	if r.factor < 1 {
		return errors.New(fmt.Errorf(`%w: %d`, ErrInvalidFactor, r.factor))
	}
	return nil
}

// checkVariants runs before anything is decoded or written.
func (r *Rescaler) checkVariants(src string, variants []Variant) error {
	srcAbs, err := filepath.Abs(src)
	if err != nil {
		return errors.New(err)
	}
	seen := make(map[string]string, len(variants))
	for _, v := range variants {
		if len(v.Path) == 0 {
			return errors.Errorf(`variant %q: no output path`, v.Name)
		}
		p, err := filepath.Abs(v.Path)
		if err != nil {
			return errors.New(err)
		}
		if p == srcAbs {
			return errors.Errorf(`variant %q: output path is the source %s`, v.Name, src)
		}
		if other, dup := seen[p]; dup {
			return errors.Errorf(`variants %q and %q write to the same path %s`, other, v.Name, v.Path)
		}
		seen[p] = v.Name
		if !SupportsFilter(r.resizer, v.Filter) {
			return Unsupported(ResizerName(r.resizer), v.Filter)
		}
		if v.Sharpen != nil {
			if err := v.Sharpen.Validate(); err != nil {
				return err
			}
			if r.sharpenerFor() == nil {
				return errors.New(fmt.Errorf(`variant %q: %w: no sharpener available`, v.Name, ErrUnsupported))
			}
		}
	}
	return nil
}

func (r *Rescaler) load(path string) (image.Image, image.Point, error) {
	src, err := NewImageFileName(path).Image()
	if err != nil {
		logx.IsErr(err, r, slog.LevelError, `path`, path)
		return nil, image.Point{}, err
	}
	b := src.Bounds()
	r.reportf("original size: %dx%d\n", b.Dx(), b.Dy())
	logx.Info(`decoded source`, r, `path`, path, `size`, b.Size(), `format`, FormatOf(src).String())
	size, err := TargetSize(b, r.factor)
	if err != nil {
		return nil, image.Point{}, err
	}
	return src, size, nil
}

func (r *Rescaler) resample(src image.Image, size image.Point, f Filter) (image.Image, error) {
	img, err := logx.TimeIt2(func() (image.Image, error) {
		return r.resizer.Resize(src, size, f)
	}, `resampled`, r, `filter`, f.String(), `size`, size)
	if err != nil {
		return nil, errors.New(err)
	}
	if img == nil {
		return nil, errors.New(ErrNilImage)
	}
	if got := img.Bounds().Size(); got != size {
		return nil, errors.New(fmt.Errorf(`%w: resampled to %dx%d instead of %dx%d`, ErrInvalidSize, got.X, got.Y, size.X, size.Y))
	}
	return img, nil
}

func (r *Rescaler) sharpenerFor() Sharpener {
	if r.sharpener != nil {
		return r.sharpener
	}
	if sh, ok := r.resizer.(Sharpener); ok {
		return sh
	}
	return nil
}

func (r *Rescaler) sharpen(img image.Image, m UnsharpMask) (image.Image, error) {
	sh := r.sharpenerFor()
	if sh == nil {
		return nil, errors.New(fmt.Errorf(`%w: no sharpener available`, ErrUnsupported))
	}
	out, err := logx.TimeIt2(func() (image.Image, error) {
		return sh.Sharpen(img, m)
	}, `sharpened`, r, `radius`, m.Radius, `amount`, m.Amount, `threshold`, m.Threshold)
	if err != nil {
		return nil, errors.New(err)
	}
	if out == nil {
		return nil, errors.New(ErrNilImage)
	}
	return out, nil
}

func (r *Rescaler) write(path string, img image.Image) (Result, error) {
	n, err := fileutil.WriteFileAtomic(path, func(w io.Writer) error {
		return r.encoder.Encode(w, img, filepath.Ext(path))
	})
	if err != nil {
		logx.IsErr(err, r, slog.LevelError, `path`, path)
		return Result{}, err
	}
	res := Result{
		Path:   path,
		Size:   img.Bounds().Size(),
		Format: FormatOf(img),
		Bytes:  n,
	}
	logx.Info(`wrote image`, r, `path`, path, `size`, res.Size, `bytes`, humanize.Bytes(uint64(n)))
	return res, nil
}

func (r *Rescaler) reportf(format string, a ...any) {
	if r.report == nil {
		return
	}
	_, _ = fmt.Fprintf(r.report, format, a...)
}
