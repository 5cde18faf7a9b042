package scale

import (
	"path/filepath"
	"strings"
)

// Variant is one resampled copy written by Rescaler.Variants.
type Variant struct {
	Name    string
	Filter  Filter
	Sharpen *UnsharpMask // applied after resampling if set
	Path    string
}

const (
	VariantNearest   = `nearest`
	VariantSharpened = `sharpened`
)

// DefaultVariants returns a blocky nearest neighbor copy and a sharpened
// Lanczos copy, written as png next to src.
func DefaultVariants(src string) []Variant {
	m := DefaultUnsharpMask
	return []Variant{
		{Name: VariantNearest, Filter: Nearest, Path: VariantPath(src, VariantNearest)},
		{Name: VariantSharpened, Filter: Lanczos, Sharpen: &m, Path: VariantPath(src, VariantSharpened)},
	}
}

// VariantPath derives "<dir>/<stem>_<suffix>.png" from src.
func VariantPath(src, suffix string) string {
	base := filepath.Base(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(src), stem+`_`+suffix+`.png`)
}
