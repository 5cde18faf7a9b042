package encmulti

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/srlehn/imgscale/internal/errors"
	"github.com/srlehn/imgscale/scale"
)

var _ scale.ImageEncoder = (*MultiEncoder)(nil)

// MultiEncoder picks the codec from the file extension.
// The zero value encodes png with the default compression and jpeg with quality 90.
type MultiEncoder struct {
	PNGCompression png.CompressionLevel
	JPEGQuality    int
}

// Formats lists the accepted extensions.
func Formats() []string { return []string{`bmp`, `gif`, `jpeg`, `jpg`, `png`, `tif`, `tiff`} }

// ParsePNGCompression accepts "default", "none", "speed" and "best".
func ParsePNGCompression(s string) (png.CompressionLevel, error) {
	switch strings.ToLower(s) {
	case ``, `default`:
		return png.DefaultCompression, nil
	case `none`:
		return png.NoCompression, nil
	case `speed`, `fast`:
		return png.BestSpeed, nil
	case `best`:
		return png.BestCompression, nil
	}
	return png.DefaultCompression, errors.New(`unknown png compression level: "` + s + `"`)
}

func (e *MultiEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if w == nil || img == nil {
		return errors.NilParam()
	}
	fmtStr := formatFromName(fileExt)
	if len(fmtStr) == 0 {
		return errors.New(`no file format specified`)
	}
	var err error
	switch fmtStr {
	case `bmp`:
		err = bmp.Encode(w, img)
	case `gif`:
		err = gif.Encode(w, img, nil)
	case `png`:
		enc := &png.Encoder{}
		if e != nil {
			enc.CompressionLevel = e.PNGCompression
		}
		err = enc.Encode(w, img)
	case `tiff`, `tif`:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case `jpg`, `jpeg`:
		q := 90
		if e != nil && e.JPEGQuality > 0 {
			q = e.JPEGQuality
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	default:
		return errors.WrapPrefix(scale.ErrUnsupported, `file format "`+fmtStr+`"`, 0)
	}
	if err != nil {
		return errors.New(err)
	}
	return nil
}

// allow passing whole filename
func formatFromName(fileExt string) string {
	fileExtParts := strings.Split(fileExt, `.`)
	fileExt = fileExtParts[len(fileExtParts)-1]
	return strings.ToLower(strings.TrimPrefix(fileExt, `.`))
}
