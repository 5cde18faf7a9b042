package scale

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/srlehn/imgscale/internal/errors"
)

type Option interface {
	ApplyOption(r *Rescaler) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Rescaler) error

func (o OptFunc) ApplyOption(r *Rescaler) error { return o(r) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(r *Rescaler) error { return r.SetOptions([]Option(o)...) }

func (r *Rescaler) SetOptions(opts ...Option) error {
	if r == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(r); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func SetResizer(rsz Resizer) Option {
	return OptFunc(func(r *Rescaler) error { r.resizer = rsz; return nil })
}

// SetResizerName looks the backend up in the registry.
func SetResizerName(name string) Option {
	return OptFunc(func(r *Rescaler) error {
		rsz, err := ResizerByName(name)
		if err != nil {
			return err
		}
		r.resizer = rsz
		return nil
	})
}

// SetFilter sets the interpolation of ResizeInPlace, Lanczos by default.
func SetFilter(f Filter) Option {
	return OptFunc(func(r *Rescaler) error {
		if f < Nearest || f > SeamCarving {
			return errors.New(fmt.Errorf(`%w: %d`, ErrUnknownFilter, int(f)))
		}
		r.filter = f
		return nil
	})
}

// SetSharpener overrides the sharpener. By default the resizer is used
// if it implements Sharpener.
func SetSharpener(sh Sharpener) Option {
	return OptFunc(func(r *Rescaler) error { r.sharpener = sh; return nil })
}

func SetEncoder(enc ImageEncoder) Option {
	return OptFunc(func(r *Rescaler) error { r.encoder = enc; return nil })
}

func SetFactor(factor int) Option {
	return OptFunc(func(r *Rescaler) error {
		if factor < 1 {
			return errors.New(ErrInvalidFactor)
		}
		r.factor = factor
		return nil
	})
}

// SetReport sets the writer for the human readable progress lines.
// A nil writer silences them.
func SetReport(w io.Writer) Option {
	return OptFunc(func(r *Rescaler) error {
		if w == nil {
			w = io.Discard
		}
		r.report = w
		return nil
	})
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(r *Rescaler) error {
		if enable {
			if h == nil {
				r.logger = slog.Default()
			} else {
				r.logger = slog.New(h)
			}
		} else {
			r.logger = nil
		}
		return nil
	})
}

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(r *Rescaler) error { r.logger = logger; return nil })
}
