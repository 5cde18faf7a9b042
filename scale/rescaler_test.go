package scale_test

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgscale/internal/encoder/encmulti"
	"github.com/srlehn/imgscale/internal/testutil"
	"github.com/srlehn/imgscale/resize/gift"
	"github.com/srlehn/imgscale/scale"
)

func newRescaler(t *testing.T, opts ...scale.Option) (*scale.Rescaler, *bytes.Buffer) {
	t.Helper()
	var report bytes.Buffer
	base := []scale.Option{
		scale.SetResizer(&gift.Resizer{}),
		scale.SetEncoder(&encmulti.MultiEncoder{}),
		scale.SetReport(&report),
	}
	r, err := scale.NewRescaler(append(base, opts...)...)
	require.NoError(t, err)
	return r, &report
}

func TestResizeInPlace(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WritePNG(t, dir, `wic.png`, testutil.Pattern(100, 80))
	r, report := newRescaler(t)
	assert.Equal(t, scale.DefaultFactor, r.Factor())

	res, err := r.ResizeInPlace(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(500, 400), res.Size)
	assert.Equal(t, path, res.Path)
	assert.Positive(t, res.Bytes)

	out := testutil.ReadPNG(t, path)
	assert.Equal(t, image.Rect(0, 0, 500, 400), out.Bounds())
	assert.Equal(t, scale.Color8, scale.FormatOf(out))
	assert.Equal(t, "original size: 100x80\nresized to: 500x400\nsaved successfully\n", report.String())
	assertDirFiles(t, dir, `wic.png`)
}

func TestResizeInPlaceKeepsGray(t *testing.T) {
	path := testutil.WritePNG(t, t.TempDir(), `gray.png`, testutil.GrayPattern(6, 4))
	r, _ := newRescaler(t, scale.SetFactor(3))
	res, err := r.ResizeInPlace(path)
	require.NoError(t, err)
	assert.Equal(t, scale.Gray8, res.Format)

	out := testutil.ReadPNG(t, path)
	assert.Equal(t, image.Rect(0, 0, 18, 12), out.Bounds())
	assert.Equal(t, scale.Gray8, scale.FormatOf(out))
}

func TestResizeInPlaceKeeps16BitPrecision(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 6, 4))
	for i := 0; i < len(src.Pix); i += 2 {
		src.Pix[i], src.Pix[i+1] = 0x12, 0x34
	}
	path := testutil.WritePNG(t, t.TempDir(), `deep.png`, src)
	r, _ := newRescaler(t, scale.SetFactor(2))
	res, err := r.ResizeInPlace(path)
	require.NoError(t, err)
	assert.Equal(t, scale.Gray16, res.Format)

	out, ok := testutil.ReadPNG(t, path).(*image.Gray16)
	require.True(t, ok)
	require.Equal(t, image.Rect(0, 0, 12, 8), out.Bounds())
	for _, p := range []image.Point{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 11, Y: 7}} {
		assert.InDelta(t, 0x1234, int(out.Gray16At(p.X, p.Y).Y), 1, `at %v`, p)
	}
}

func TestResizeInPlaceFactorOne(t *testing.T) {
	path := testutil.WritePNG(t, t.TempDir(), `wic.png`, testutil.Pattern(7, 5))
	r, _ := newRescaler(t, scale.SetFactor(1))
	res, err := r.ResizeInPlace(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(7, 5), res.Size)
	assert.Equal(t, image.Rect(0, 0, 7, 5), testutil.ReadPNG(t, path).Bounds())
}

func TestResizeInPlaceUnsupportedOutputKeepsSource(t *testing.T) {
	dir := t.TempDir()
	png := testutil.WritePNG(t, dir, `tmp.png`, testutil.Pattern(4, 4))
	// png data behind an extension the encoder doesn't write
	path := filepath.Join(dir, `wic.webp`)
	require.NoError(t, os.Rename(png, path))
	before := mustRead(t, path)

	r, _ := newRescaler(t)
	_, err := r.ResizeInPlace(path)
	require.ErrorIs(t, err, scale.ErrUnsupported)
	assert.Equal(t, before, mustRead(t, path))
	assertDirFiles(t, dir, `wic.webp`)
}

func TestVariants(t *testing.T) {
	dir := t.TempDir()
	src := testutil.Pattern(100, 80)
	path := testutil.WritePNG(t, dir, `wic.png`, src)
	before := mustRead(t, path)
	r, report := newRescaler(t)

	results, err := r.Variants(path)
	require.NoError(t, err)
	require.Len(t, results, 2)

	nearestPath := filepath.Join(dir, `wic_nearest.png`)
	sharpenedPath := filepath.Join(dir, `wic_sharpened.png`)
	assert.Equal(t, scale.VariantNearest, results[0].Name)
	assert.Equal(t, nearestPath, results[0].Path)
	assert.Equal(t, scale.VariantSharpened, results[1].Name)
	assert.Equal(t, sharpenedPath, results[1].Path)

	nearest := testutil.ReadPNG(t, nearestPath)
	sharpened := testutil.ReadPNG(t, sharpenedPath)
	assert.Equal(t, image.Rect(0, 0, 500, 400), nearest.Bounds())
	assert.Equal(t, image.Rect(0, 0, 500, 400), sharpened.Bounds())
	if p, ok := testutil.NearestExact(src, nearest, 5); !ok {
		t.Errorf(`nearest neighbor output blends at %v`, p)
	}

	assert.Equal(t, before, mustRead(t, path), `source must stay untouched`)
	assert.Equal(t, fmt.Sprintf("original size: 100x80\nsaved %s: 500x400\nsaved %s: 500x400\n", nearestPath, sharpenedPath), report.String())
	assertDirFiles(t, dir, `wic.png`, `wic_nearest.png`, `wic_sharpened.png`)
}

func TestVariantsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WritePNG(t, dir, `wic.png`, testutil.Pattern(20, 16))
	r, _ := newRescaler(t)

	first, err := r.Variants(path)
	require.NoError(t, err)
	var contents [][]byte
	for _, res := range first {
		contents = append(contents, mustRead(t, res.Path))
	}
	second, err := r.Variants(path)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i, res := range second {
		assert.Equal(t, contents[i], mustRead(t, res.Path), res.Path)
	}
}

func TestVariantsSharpeningChangesLanczos(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WritePNG(t, dir, `wic.png`, testutil.Pattern(20, 16))
	mask := scale.DefaultUnsharpMask
	r, _ := newRescaler(t)

	results, err := r.Variants(path,
		scale.Variant{Name: `lanczos`, Filter: scale.Lanczos, Path: filepath.Join(dir, `lanczos.png`)},
		scale.Variant{Name: `sharpened`, Filter: scale.Lanczos, Sharpen: &mask, Path: filepath.Join(dir, `sharpened.png`)},
	)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, results[0].Size, results[1].Size)

	plain := testutil.ReadPNG(t, results[0].Path)
	sharp := testutil.ReadPNG(t, results[1].Path)
	assert.Equal(t, plain.Bounds(), sharp.Bounds())
	assert.False(t, testutil.SameRGBA(plain, sharp), `sharpening must change the Lanczos output`)
}

func TestVariantsMissingSource(t *testing.T) {
	dir := t.TempDir()
	r, report := newRescaler(t)
	_, err := r.Variants(filepath.Join(dir, `missing.png`))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, report.String())
	assertDirFiles(t, dir)
}

func TestVariantsRejectsBadVariants(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WritePNG(t, dir, `wic.png`, testutil.Pattern(4, 4))
	out := filepath.Join(dir, `out.png`)
	r, _ := newRescaler(t)

	tests := []struct {
		name     string
		variants []scale.Variant
	}{
		{name: `overwrites source`, variants: []scale.Variant{{Name: `a`, Filter: scale.Nearest, Path: path}}},
		{name: `no path`, variants: []scale.Variant{{Name: `a`, Filter: scale.Nearest}}},
		{name: `same path`, variants: []scale.Variant{
			{Name: `a`, Filter: scale.Nearest, Path: out},
			{Name: `b`, Filter: scale.Lanczos, Path: out},
		}},
		{name: `unsupported filter`, variants: []scale.Variant{{Name: `a`, Filter: scale.SeamCarving, Path: out}}},
		{name: `bad mask`, variants: []scale.Variant{{Name: `a`, Filter: scale.Lanczos, Path: out, Sharpen: &scale.UnsharpMask{}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Variants(path, tc.variants...)
			require.Error(t, err)
			assertDirFiles(t, dir, `wic.png`)
		})
	}
}

type plainResizer struct{ scale.Resizer }

func TestVariantsWithoutSharpener(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WritePNG(t, dir, `wic.png`, testutil.Pattern(4, 4))

	r, _ := newRescaler(t, scale.SetResizer(plainResizer{&gift.Resizer{}}))
	_, err := r.Variants(path)
	require.ErrorIs(t, err, scale.ErrUnsupported)
	assertDirFiles(t, dir, `wic.png`)

	r, _ = newRescaler(t, scale.SetResizer(plainResizer{&gift.Resizer{}}), scale.SetSharpener(&gift.Resizer{}))
	_, err = r.Variants(path)
	require.NoError(t, err)
}

// recordingResizer remembers the filter it was asked for.
type recordingResizer struct{ got []scale.Filter }

func (rr *recordingResizer) Resize(img image.Image, size image.Point, f scale.Filter) (image.Image, error) {
	rr.got = append(rr.got, f)
	return (&gift.Resizer{}).Resize(img, size, scale.Nearest)
}

func TestResizeInPlaceFilter(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WritePNG(t, dir, `wic.png`, testutil.Pattern(6, 4))

	rr := &recordingResizer{}
	r, _ := newRescaler(t, scale.SetResizer(rr), scale.SetFactor(2))
	assert.Equal(t, scale.Lanczos, r.Filter())
	_, err := r.ResizeInPlace(path)
	require.NoError(t, err)

	require.NoError(t, r.SetOptions(scale.SetFilter(scale.SeamCarving)))
	res, err := r.ResizeInPlace(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(24, 16), res.Size)
	assert.Equal(t, []scale.Filter{scale.Lanczos, scale.SeamCarving}, rr.got)
}

func TestResizeInPlaceUnsupportedFilter(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WritePNG(t, dir, `wic.png`, testutil.Pattern(4, 4))
	before := mustRead(t, path)
	var report bytes.Buffer
	r, err := scale.NewRescaler(
		scale.SetResizer(&gift.Resizer{}),
		scale.SetEncoder(&encmulti.MultiEncoder{}),
		scale.SetReport(&report),
		scale.SetFilter(scale.SeamCarving),
	)
	require.NoError(t, err)
	_, err = r.ResizeInPlace(path)
	require.ErrorIs(t, err, scale.ErrUnsupported)
	assert.Empty(t, report.String(), `nothing decoded`)
	assert.Equal(t, before, mustRead(t, path))

	_, err = scale.NewRescaler(scale.SetFilter(scale.Filter(0)))
	require.ErrorIs(t, err, scale.ErrUnknownFilter)
}

type wrongSizeResizer struct{}

func (wrongSizeResizer) Resize(img image.Image, size image.Point, f scale.Filter) (image.Image, error) {
	return image.NewNRGBA(image.Rect(0, 0, size.X-1, size.Y)), nil
}

func TestResizeInPlaceChecksResizerOutput(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WritePNG(t, dir, `wic.png`, testutil.Pattern(4, 4))
	before := mustRead(t, path)
	r, _ := newRescaler(t, scale.SetResizer(wrongSizeResizer{}))
	_, err := r.ResizeInPlace(path)
	require.ErrorIs(t, err, scale.ErrInvalidSize)
	assert.Equal(t, before, mustRead(t, path))
}

func TestNewRescalerOptions(t *testing.T) {
	_, err := scale.NewRescaler(scale.SetFactor(0))
	require.ErrorIs(t, err, scale.ErrInvalidFactor)

	_, err = scale.NewRescaler(scale.SetResizerName(`no such backend`))
	require.ErrorIs(t, err, scale.ErrUnknownResizer)

	r, err := scale.NewRescaler(scale.SetResizerName(gift.Name))
	require.NoError(t, err)
	_, err = r.ResizeInPlace(`wic.png`)
	require.Error(t, err, `no encoder set`)

	var nilRescaler *scale.Rescaler
	_, err = nilRescaler.Variants(`wic.png`)
	require.Error(t, err)
}

func assertDirFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	got := []string{}
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if names == nil {
		names = []string{}
	}
	assert.ElementsMatch(t, names, got)
}
