package scale

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/srlehn/imgscale/internal/errors"
)

// Image is a lazily decoded source image.
type Image struct {
	Original image.Image
	FileName string // lazily loaded
	Encoded  []byte // lazily loaded
	MIME     string // sniffed from the encoded data
	Format   string // name of the decoder that was used
}

// NewImage wraps an already decoded image.
func NewImage(img image.Image) *Image {
	if m, ok := img.(*Image); ok {
		return m
	}
	return &Image{Original: img}
}

// NewImageFileName - for lazy loading the file
func NewImageFileName(imgFile string) *Image {
	if imgFilenameAbs, err := filepath.Abs(imgFile); err == nil {
		imgFile = imgFilenameAbs
	}
	return &Image{FileName: imgFile}
}

// NewImageBytes - for lazy loading the encoded data
func NewImageBytes(imgBytes []byte) *Image {
	return &Image{Encoded: imgBytes}
}

// Decode decodes and stores the image in the struct.
// Data that doesn't sniff as an image is rejected before a decoder runs.
//
// Decode requires registration of image decoders.
func (i *Image) Decode() error {
	if i == nil {
		return errors.NilReceiver()
	}
	if i.Original != nil {
		return nil
	}
	data := i.Encoded
	if len(data) > 0 {
		if len(i.FileName) > 0 {
			return errors.New(`image contains 2 sources`)
		}
	} else if len(i.FileName) > 0 {
		b, err := os.ReadFile(i.FileName)
		if err != nil {
			return errors.New(err)
		}
		data = b
	} else {
		return errors.New(`image has no source`)
	}
	mt := mimetype.Detect(data)
	i.MIME = mt.String()
	if !strings.HasPrefix(i.MIME, `image/`) {
		return errors.New(fmt.Errorf(`%w: %s (%s)`, ErrNotImage, i.name(), i.MIME))
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return errors.New(fmt.Errorf(`decode %s: %w`, i.name(), err))
	}
	i.Original = img
	i.Format = format
	return nil
}

var _ image.Image = (*Image)(nil)

// ColorModel decodes lazily. Decoding errors are reported by Image.
func (i *Image) ColorModel() color.Model {
	if i == nil || i.Decode() != nil {
		return color.NRGBAModel
	}
	return i.Original.ColorModel()
}

func (i *Image) Bounds() image.Rectangle {
	if i == nil || i.Decode() != nil {
		return image.Rectangle{}
	}
	return i.Original.Bounds()
}

func (i *Image) At(x, y int) color.Color {
	if i == nil || i.Decode() != nil {
		return color.NRGBA{}
	}
	return i.Original.At(x, y)
}

// Image returns the decoded image.
func (i *Image) Image() (image.Image, error) {
	if i == nil {
		return nil, errors.NilReceiver()
	}
	if err := i.Decode(); err != nil {
		return nil, err
	}
	if i.Original == nil {
		return nil, errors.New(ErrNilImage)
	}
	return i.Original, nil
}

// Size of the decoded image.
func (i *Image) Size() (image.Point, error) {
	img, err := i.Image()
	if err != nil {
		return image.Point{}, err
	}
	return img.Bounds().Size(), nil
}

func (i *Image) name() string {
	if len(i.FileName) > 0 {
		return i.FileName
	}
	return `image data`
}
